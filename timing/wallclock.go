package timing

import (
	"sync"
	"time"

	"github.com/rs/xid"
)

// WallClockScheduler schedules callbacks on the real clock. Frame-aligned
// callbacks are approximated by one frame interval, which is the right
// behaviour for environments without a paint loop; environments bound to a
// real one should implement Scheduler against it directly.
type WallClockScheduler struct {
	frame FrameRate
	start time.Time

	mu      sync.Mutex
	stopped bool
	timers  map[string]*time.Timer
}

// NewWallClockScheduler creates a running WallClockScheduler with the
// default 60fps frame cadence.
func NewWallClockScheduler() *WallClockScheduler {
	return &WallClockScheduler{
		frame:  DefaultFrameRate,
		start:  time.Now(),
		timers: make(map[string]*time.Timer),
	}
}

// WithFrameRate changes the frame cadence used by ScheduleNextFrame.
func (s *WallClockScheduler) WithFrameRate(f FrameRate) *WallClockScheduler {
	s.frame = f
	return s
}

// ScheduleAfter runs f once after at least d has elapsed.
func (s *WallClockScheduler) ScheduleAfter(d time.Duration, f func()) Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return noopTask{}
	}

	id := xid.New().String()
	timer := time.AfterFunc(d, func() {
		s.mu.Lock()
		_, live := s.timers[id]
		delete(s.timers, id)
		s.mu.Unlock()

		// A Cancel that lost the race to the timer firing still wins:
		// the callback is dropped once the handle is gone.
		if !live {
			return
		}
		f()
	})
	s.timers[id] = timer

	return &wallClockTask{scheduler: s, id: id}
}

// ScheduleNextFrame runs f after one frame interval.
func (s *WallClockScheduler) ScheduleNextFrame(f func()) Task {
	return s.ScheduleAfter(s.frame.Interval(), f)
}

// CurrentTime reports time elapsed since the scheduler was created.
func (s *WallClockScheduler) CurrentTime() VTime {
	return time.Since(s.start)
}

// Stop cancels all outstanding timers. The scheduler schedules nothing
// afterwards.
func (s *WallClockScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

func (s *WallClockScheduler) cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
}

type wallClockTask struct {
	scheduler *WallClockScheduler
	id        string
}

func (t *wallClockTask) Cancel() {
	t.scheduler.cancel(t.id)
}

type noopTask struct{}

func (noopTask) Cancel() {}

var (
	_ Scheduler  = (*WallClockScheduler)(nil)
	_ TimeTeller = (*WallClockScheduler)(nil)
)
