// Package timing provides the scheduling primitives that presence
// controllers run on: a deterministic virtual-clock engine for tests and
// headless drivers, and a wall-clock scheduler for real applications.
package timing

import "time"

// VTime is a timestamp on a scheduler's timeline. Virtual schedulers start
// at zero; wall-clock schedulers measure from their creation.
type VTime = time.Duration

// TimeTeller exposes the current time of a scheduler's timeline.
type TimeTeller interface {
	CurrentTime() VTime
}

// Task is a handle to scheduled work. Cancel is idempotent. After Cancel
// returns, the task's callback will not run.
type Task interface {
	Cancel()
}

// Scheduler abstracts the deferred-callback capabilities a presence
// controller needs. Callbacks may be delivered on arbitrary goroutines;
// consumers serialize access to their own state.
type Scheduler interface {
	// ScheduleAfter runs f once, no earlier than d from now. Durations are
	// best-effort lower bounds.
	ScheduleAfter(d time.Duration, f func()) Task

	// ScheduleNextFrame runs f after the next frame boundary, once pending
	// style work has been committed. Implementations that cannot defer to a
	// frame boundary may return nil; callers must then fall back to running
	// f at the next synchronous opportunity.
	ScheduleNextFrame(f func()) Task
}

// LayoutFlusher is an optional capability of a Scheduler. Schedulers bound
// to a real layout system flush pending style work synchronously so that a
// transition starting on the next frame animates from the committed
// pre-transition state.
type LayoutFlusher interface {
	FlushLayout()
}
