package presence

// Observables is the derived, renderer-facing view of a controller. All
// fields are pure functions of the controller's phase and target
// visibility, so a snapshot is always internally consistent.
type Observables struct {
	// Phase is the lifecycle position the flags are derived from.
	Phase Phase `json:"phase"`

	// IsMounted reports whether the element should exist in the layout.
	IsMounted bool `json:"isMounted"`

	// IsVisible reports whether the element should be rendered in its
	// settled visual state.
	IsVisible bool `json:"isVisible"`

	// IsAnimating reports whether a transition is in progress in either
	// direction.
	IsAnimating bool `json:"isAnimating"`

	// IsEntering reports whether the target is visible and the entry has
	// not completed yet.
	IsEntering bool `json:"isEntering"`

	// IsExiting reports whether the element is mounted while the target is
	// not visible.
	IsExiting bool `json:"isExiting"`
}

func observe(phase Phase, targetVisible bool) Observables {
	entering := targetVisible &&
		(phase == PhaseMountedPreEntry || phase == PhaseEntering)
	exiting := phase == PhaseExiting

	return Observables{
		Phase:       phase,
		IsMounted:   phase != PhaseUnmounted,
		IsVisible:   phase == PhaseEntering || phase == PhaseEntered,
		IsAnimating: entering || exiting,
		IsEntering:  entering,
		IsExiting:   exiting,
	}
}
