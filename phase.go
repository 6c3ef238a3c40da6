// Package presence drives enter/exit transition state for UI elements. A
// Controller turns a target visibility flag and a transition configuration
// into the observable flags a renderer needs: whether the element should
// exist in the layout, whether it should wear its settled visual state, and
// whether it is currently animating in or out.
package presence

// Phase is the position of a controller in its mount/transition lifecycle.
type Phase int

const (
	// PhaseUnmounted means the element does not exist in the layout.
	PhaseUnmounted Phase = iota

	// PhaseMountedPreEntry means the element exists but still wears its
	// pre-transition state, waiting for the next frame to start animating.
	PhaseMountedPreEntry

	// PhaseEntering means the element is animating towards its settled
	// state.
	PhaseEntering

	// PhaseEntered means the entry transition has completed.
	PhaseEntered

	// PhaseExiting means the element is animating out and will unmount
	// when the exit duration elapses.
	PhaseExiting
)

func (p Phase) String() string {
	switch p {
	case PhaseUnmounted:
		return "Unmounted"
	case PhaseMountedPreEntry:
		return "MountedPreEntry"
	case PhaseEntering:
		return "Entering"
	case PhaseEntered:
		return "Entered"
	case PhaseExiting:
		return "Exiting"
	default:
		return "Unknown"
	}
}

// PhaseTransition describes one phase change of a controller. It is the
// Item of a HookPosPhaseChange hook invocation.
type PhaseTransition struct {
	Controller string
	From       Phase
	To         Phase
}
