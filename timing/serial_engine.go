package timing

import (
	"fmt"
	"sync"

	"github.com/motionkit/presence/hooking"
)

// HookPosBeforeDispatch is triggered right before an event's callback runs.
var HookPosBeforeDispatch = &hooking.HookPos{Name: "BeforeDispatch"}

// HookPosAfterDispatch is triggered right after an event's callback returns.
var HookPosAfterDispatch = &hooking.HookPos{Name: "AfterDispatch"}

// SerialEngine dispatches scheduled events one at a time in due-time order
// on a virtual clock. The clock only moves when events are dispatched, so a
// run over the same schedule always produces the same interleaving.
type SerialEngine struct {
	*hooking.HookableBase

	mu    sync.Mutex
	now   VTime
	queue *eventQueue

	runLock sync.Mutex
}

// NewSerialEngine creates a SerialEngine with its clock at zero.
func NewSerialEngine() *SerialEngine {
	return &SerialEngine{
		HookableBase: hooking.NewHookableBase(),
		queue:        newEventQueue(),
	}
}

// Schedule registers an event to be dispatched when the clock reaches its
// due time. Scheduling into the past is a programming error.
func (e *SerialEngine) Schedule(evt FutureEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if evt.Time < e.now {
		panic(fmt.Sprintf(
			"timing: cannot schedule event in the past, evt %s @ %s, now %s",
			evt.ID, evt.Time, e.now,
		))
	}

	eventCopy := evt
	e.queue.push(&eventCopy)
}

// Run dispatches events until the queue is empty. Callbacks may schedule
// further events; those are dispatched in the same run.
func (e *SerialEngine) Run() error {
	e.runLock.Lock()
	defer e.runLock.Unlock()

	for {
		evt := e.takeNext(nil)
		if evt == nil {
			return nil
		}
		e.dispatch(evt)
	}
}

// RunUntil dispatches every event due at or before t, then advances the
// clock to t. Events scheduled beyond t stay queued.
func (e *SerialEngine) RunUntil(t VTime) error {
	e.runLock.Lock()
	defer e.runLock.Unlock()

	for {
		evt := e.takeNext(&t)
		if evt == nil {
			break
		}
		e.dispatch(evt)
	}

	e.mu.Lock()
	if t > e.now {
		e.now = t
	}
	e.mu.Unlock()

	return nil
}

// takeNext pops the earliest due event, advancing the clock to it. A non-nil
// limit leaves events due after the limit in the queue.
func (e *SerialEngine) takeNext(limit *VTime) *FutureEvent {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.queue.peek()
	if next == nil {
		return nil
	}
	if limit != nil && next.Time > *limit {
		return nil
	}

	evt := e.queue.pop()
	if evt.Time < e.now {
		panic(fmt.Sprintf(
			"timing: cannot dispatch event in the past, evt %s @ %s, now %s",
			evt.ID, evt.Time, e.now,
		))
	}
	e.now = evt.Time

	return evt
}

func (e *SerialEngine) dispatch(evt *FutureEvent) {
	hookCtx := hooking.HookCtx{
		Domain: e,
		Pos:    HookPosBeforeDispatch,
		Item:   evt,
	}
	e.InvokeHook(hookCtx)

	if evt.Run != nil {
		evt.Run()
	}

	hookCtx.Pos = HookPosAfterDispatch
	e.InvokeHook(hookCtx)
}

// EventCount returns the number of events still queued.
func (e *SerialEngine) EventCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.queue.len()
}

// CurrentTime returns the due time of the most recently dispatched event, or
// the time RunUntil last advanced to.
func (e *SerialEngine) CurrentTime() VTime {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.now
}

var _ TimeTeller = (*SerialEngine)(nil)
