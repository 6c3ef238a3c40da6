package timing

// FutureEvent is the engine-facing wrapper for deferred work. The payload is
// a plain callback; the metadata is what the engine needs to order and
// report dispatches.
type FutureEvent struct {
	// ID identifies the event in hooks and traces.
	ID string

	// Time is the timeline position at which the event becomes due.
	Time VTime

	// Run is the callback to execute when the event is dispatched. A nil
	// Run is dispatched as a no-op.
	Run func()
}
