package tracing

import (
	"github.com/motionkit/presence"
	"github.com/motionkit/presence/hooking"
	"github.com/motionkit/presence/timing"
)

// PhaseTableName is the table phase transitions are recorded into.
const PhaseTableName = "phase_transitions"

// PhaseEntry is one recorded phase transition.
type PhaseEntry struct {
	Controller string
	From       string
	To         string
	AtMS       float64
}

// PhaseTracer is a hook that records every phase transition of the
// controllers it is attached to. Timestamps come from the scheduler's
// timeline.
type PhaseTracer struct {
	recorder   Recorder
	timeTeller timing.TimeTeller
}

// NewPhaseTracer creates a PhaseTracer and its backing table. Attach it to
// controllers with AcceptHook.
func NewPhaseTracer(
	recorder Recorder,
	timeTeller timing.TimeTeller,
) *PhaseTracer {
	recorder.CreateTable(PhaseTableName, PhaseEntry{})

	return &PhaseTracer{
		recorder:   recorder,
		timeTeller: timeTeller,
	}
}

// Func records phase-change hook invocations and ignores everything else.
func (t *PhaseTracer) Func(ctx hooking.HookCtx) {
	if ctx.Pos != presence.HookPosPhaseChange {
		return
	}

	transition, ok := ctx.Item.(presence.PhaseTransition)
	if !ok {
		return
	}

	at := float64(0)
	if t.timeTeller != nil {
		at = float64(t.timeTeller.CurrentTime().Microseconds()) / 1000.0
	}

	t.recorder.InsertData(PhaseTableName, PhaseEntry{
		Controller: transition.Controller,
		From:       transition.From.String(),
		To:         transition.To.String(),
		AtMS:       at,
	})
}

var _ hooking.Hook = (*PhaseTracer)(nil)
