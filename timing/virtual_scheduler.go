package timing

import (
	"sync/atomic"
	"time"

	"github.com/rs/xid"

	"github.com/motionkit/presence/hooking"
)

// HookPosLayoutFlush is triggered when a scheduler is asked to flush layout.
var HookPosLayoutFlush = &hooking.HookPos{Name: "LayoutFlush"}

// VirtualScheduler adapts a SerialEngine into a Scheduler. Frame-aligned
// callbacks land on the next FrameRate boundary of the engine's clock, so a
// test or headless driver can step through transitions deterministically.
type VirtualScheduler struct {
	*hooking.HookableBase

	engine *SerialEngine
	frame  FrameRate
}

// NewVirtualScheduler creates a VirtualScheduler on the given engine,
// placing frame boundaries at the default 60fps cadence.
func NewVirtualScheduler(engine *SerialEngine) *VirtualScheduler {
	return &VirtualScheduler{
		HookableBase: hooking.NewHookableBase(),
		engine:       engine,
		frame:        DefaultFrameRate,
	}
}

// WithFrameRate changes the frame boundary cadence.
func (s *VirtualScheduler) WithFrameRate(f FrameRate) *VirtualScheduler {
	s.frame = f
	return s
}

// ScheduleAfter schedules f at now+d on the engine's clock.
func (s *VirtualScheduler) ScheduleAfter(d time.Duration, f func()) Task {
	return s.scheduleAt(s.engine.CurrentTime()+d, f)
}

// ScheduleNextFrame schedules f at the next frame boundary.
func (s *VirtualScheduler) ScheduleNextFrame(f func()) Task {
	return s.scheduleAt(s.frame.NextFrame(s.engine.CurrentTime()), f)
}

// FlushLayout raises the layout-flush hook. The virtual timeline has no real
// style system; hooks let tests assert the flush was requested before the
// frame callback was scheduled.
func (s *VirtualScheduler) FlushLayout() {
	s.InvokeHook(hooking.HookCtx{
		Domain: s,
		Pos:    HookPosLayoutFlush,
	})
}

func (s *VirtualScheduler) scheduleAt(t VTime, f func()) Task {
	task := &virtualTask{}
	s.engine.Schedule(FutureEvent{
		ID:   xid.New().String(),
		Time: t,
		Run: func() {
			if task.cancelled.Load() {
				return
			}
			f()
		},
	})
	return task
}

// virtualTask marks its event cancelled. The engine drops the callback at
// dispatch time; the event itself stays queued until due, which is harmless
// on a virtual timeline.
type virtualTask struct {
	cancelled atomic.Bool
}

func (t *virtualTask) Cancel() {
	t.cancelled.Store(true)
}

var (
	_ Scheduler     = (*VirtualScheduler)(nil)
	_ LayoutFlusher = (*VirtualScheduler)(nil)
)
