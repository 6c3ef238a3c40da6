package presence

import (
	"sync"

	"github.com/rs/xid"

	"github.com/motionkit/presence/hooking"
	"github.com/motionkit/presence/timing"
)

// HookPosPhaseChange is triggered after a controller changes phase. The
// HookCtx Item is a PhaseTransition.
var HookPosPhaseChange = &hooking.HookPos{Name: "PhaseChange"}

// Controller is the presence state machine. It is safe for concurrent use;
// consumer evaluations and scheduler callbacks serialize on an internal
// lock, and every published Observables snapshot is derived atomically from
// the phase.
type Controller struct {
	*hooking.HookableBase

	name  string
	sched timing.Scheduler

	mu            sync.Mutex
	initialized   bool
	released      bool
	phase         Phase
	targetVisible bool
	cfg           Config
	pending       timing.Task
}

// NewController creates a Controller that schedules its deferred
// transitions on sched. The name identifies the controller in hooks,
// traces, and the inspector; an empty name gets a generated one.
func NewController(name string, sched timing.Scheduler) *Controller {
	if name == "" {
		name = "presence-" + xid.New().String()
	}

	return &Controller{
		HookableBase: hooking.NewHookableBase(),
		name:         name,
		sched:        sched,
	}
}

// Name returns the controller's name.
func (c *Controller) Name() string {
	return c.name
}

// Evaluate applies the latest target visibility and timing configuration
// and returns the resulting snapshot. Call it on every change of intent or
// configuration. The latest call always wins: any transition pending from
// an earlier call is superseded when the direction or the governing
// duration changes.
func (c *Controller) Evaluate(visible bool, cfg Config) Observables {
	c.mu.Lock()

	if c.released {
		c.mu.Unlock()
		panic("presence: Evaluate called on a released controller")
	}

	if !c.initialized {
		c.initialize(visible, cfg)
	}

	durationChanged := cfg.enter != c.cfg.enter || cfg.exit != c.cfg.exit
	c.cfg = cfg
	c.targetVisible = visible

	var transitions []PhaseTransition
	if visible {
		transitions = c.driveEntry(durationChanged)
	} else {
		transitions = c.driveExit(durationChanged)
	}

	obs := observe(c.phase, c.targetVisible)
	c.mu.Unlock()

	c.invokePhaseHooks(transitions)

	return obs
}

// Observe returns the current snapshot without changing any state.
func (c *Controller) Observe() Observables {
	c.mu.Lock()
	defer c.mu.Unlock()
	return observe(c.phase, c.targetVisible)
}

// Release tears the controller down, cancelling all pending scheduled
// work. Further Evaluate calls panic; Observe keeps returning the final
// snapshot. Release is idempotent.
func (c *Controller) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelPending()
	c.released = true
}

// initialize applies the first-construction rule: an element that starts
// visible is settled immediately unless the configuration asks for an
// animated initial entry.
func (c *Controller) initialize(visible bool, cfg Config) {
	c.initialized = true
	c.targetVisible = visible
	c.cfg = cfg

	if visible && !cfg.initialEnter {
		c.phase = PhaseEntered
		return
	}

	c.phase = PhaseUnmounted
}

// driveEntry moves the machine towards Entered. Mounting happens
// synchronously as its own step; the flip to the visible state is deferred
// to the next frame so the element first exists in its pre-entry state.
func (c *Controller) driveEntry(durationChanged bool) []PhaseTransition {
	switch c.phase {
	case PhaseUnmounted:
		return c.mountAndArm()

	case PhaseExiting:
		// Mounted with the settled state stripped, same as a fresh
		// mount. The pending unmount timer must not fire.
		c.cancelPending()
		return c.mountAndArm()

	case PhaseMountedPreEntry:
		if c.pending == nil {
			return c.armFrameFlip()
		}
		return nil

	case PhaseEntering:
		if durationChanged {
			c.cancelPending()
			c.armEnterTimer()
		}
		return nil

	case PhaseEntered:
		return nil
	}

	return nil
}

// driveExit moves the machine towards Unmounted. Unlike entry, the exit
// animation starts synchronously: the settled state is stripped right away
// and only the unmount is deferred.
func (c *Controller) driveExit(durationChanged bool) []PhaseTransition {
	switch c.phase {
	case PhaseUnmounted:
		c.cancelPending()
		return nil

	case PhaseExiting:
		if durationChanged {
			c.cancelPending()
			c.armExitTimer()
		}
		return nil

	case PhaseMountedPreEntry, PhaseEntering, PhaseEntered:
		c.cancelPending()
		from := c.phase
		c.phase = PhaseExiting
		c.armExitTimer()
		return []PhaseTransition{c.transition(from, PhaseExiting)}
	}

	return nil
}

// mountAndArm performs the synchronous mount step and arms the deferred
// flip into the entering state.
func (c *Controller) mountAndArm() []PhaseTransition {
	from := c.phase
	c.phase = PhaseMountedPreEntry
	transitions := []PhaseTransition{c.transition(from, PhaseMountedPreEntry)}

	return append(transitions, c.armFrameFlip()...)
}

// armFrameFlip flushes layout and schedules the next-frame flip to
// Entering. A scheduler without a frame primitive returns a nil task; the
// flip then happens synchronously so the element cannot get stuck in the
// pre-entry state.
func (c *Controller) armFrameFlip() []PhaseTransition {
	if flusher, ok := c.sched.(timing.LayoutFlusher); ok {
		flusher.FlushLayout()
	}

	task := c.sched.ScheduleNextFrame(c.onFrame)
	if task == nil {
		c.pending = nil
		c.phase = PhaseEntering
		c.armEnterTimer()
		return []PhaseTransition{
			c.transition(PhaseMountedPreEntry, PhaseEntering),
		}
	}

	c.pending = task

	return nil
}

func (c *Controller) armEnterTimer() {
	c.pending = c.sched.ScheduleAfter(c.cfg.enter, c.onEnterElapsed)
}

func (c *Controller) armExitTimer() {
	c.pending = c.sched.ScheduleAfter(c.cfg.exit, c.onExitElapsed)
}

// onFrame is the deferred entry flip. The phase guard makes a stale frame
// callback a no-op even if the scheduler delivered it after supersession.
func (c *Controller) onFrame() {
	c.mu.Lock()

	if c.released || c.phase != PhaseMountedPreEntry || !c.targetVisible {
		c.mu.Unlock()
		return
	}

	c.phase = PhaseEntering
	c.armEnterTimer()
	transitions := []PhaseTransition{
		c.transition(PhaseMountedPreEntry, PhaseEntering),
	}

	c.mu.Unlock()
	c.invokePhaseHooks(transitions)
}

func (c *Controller) onEnterElapsed() {
	c.mu.Lock()

	if c.released || c.phase != PhaseEntering || !c.targetVisible {
		c.mu.Unlock()
		return
	}

	c.pending = nil
	c.phase = PhaseEntered
	transitions := []PhaseTransition{
		c.transition(PhaseEntering, PhaseEntered),
	}

	c.mu.Unlock()
	c.invokePhaseHooks(transitions)
}

func (c *Controller) onExitElapsed() {
	c.mu.Lock()

	if c.released || c.phase != PhaseExiting || c.targetVisible {
		c.mu.Unlock()
		return
	}

	c.pending = nil
	c.phase = PhaseUnmounted
	transitions := []PhaseTransition{
		c.transition(PhaseExiting, PhaseUnmounted),
	}

	c.mu.Unlock()
	c.invokePhaseHooks(transitions)
}

func (c *Controller) cancelPending() {
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
	}
}

func (c *Controller) transition(from, to Phase) PhaseTransition {
	return PhaseTransition{Controller: c.name, From: from, To: to}
}

// invokePhaseHooks runs outside the controller lock so hooks may call back
// into the controller.
func (c *Controller) invokePhaseHooks(transitions []PhaseTransition) {
	for _, t := range transitions {
		c.InvokeHook(hooking.HookCtx{
			Domain: c,
			Pos:    HookPosPhaseChange,
			Item:   t,
		})
	}
}
