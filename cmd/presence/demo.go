package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/motionkit/presence"
	"github.com/motionkit/presence/hooking"
	"github.com/motionkit/presence/timing"
	"github.com/motionkit/presence/tracing"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted visibility timeline and print each phase change.",
	Long: `demo drives one controller through a scripted visibility ` +
		`timeline on a virtual clock. The script is a comma-separated list ` +
		`of at:intent steps, e.g. "0s:show,400ms:hide,650ms:show".`,
	RunE: runDemo,
}

func init() {
	defaults := demoDefaults()

	demoCmd.Flags().Duration("enter", defaults.enter,
		"duration of the entry transition")
	demoCmd.Flags().Duration("exit", defaults.exit,
		"duration of the exit transition")
	demoCmd.Flags().Float64("fps", defaults.fps,
		"frame rate of the virtual paint loop")
	demoCmd.Flags().Bool("initial-enter", false,
		"animate the first mount instead of starting settled")
	demoCmd.Flags().String("script", "0s:show,500ms:hide",
		"visibility timeline as at:intent steps")
	demoCmd.Flags().String("trace", "",
		"record phase transitions to the given SQLite path")

	rootCmd.AddCommand(demoCmd)
}

type demoConfig struct {
	enter time.Duration
	exit  time.Duration
	fps   float64
}

// demoDefaults pulls flag defaults from the environment, with an optional
// .env file, so repeated tuning runs do not need the same flags every time.
func demoDefaults() demoConfig {
	_ = godotenv.Load()

	cfg := demoConfig{
		enter: 200 * time.Millisecond,
		exit:  150 * time.Millisecond,
		fps:   float64(timing.DefaultFrameRate),
	}

	if v := os.Getenv("PRESENCE_ENTER"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.enter = d
		}
	}
	if v := os.Getenv("PRESENCE_EXIT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.exit = d
		}
	}
	if v := os.Getenv("PRESENCE_FPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.fps = f
		}
	}

	return cfg
}

type scriptStep struct {
	at      time.Duration
	visible bool
}

func parseScript(script string) ([]scriptStep, error) {
	var steps []scriptStep

	for _, part := range strings.Split(script, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		at, intent, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("step %q is not in at:intent form", part)
		}

		d, err := time.ParseDuration(strings.TrimSpace(at))
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", part, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("step %q: time must be non-negative", part)
		}

		var visible bool
		switch strings.TrimSpace(intent) {
		case "show":
			visible = true
		case "hide":
			visible = false
		default:
			return nil, fmt.Errorf(
				"step %q: intent must be show or hide", part)
		}

		steps = append(steps, scriptStep{at: d, visible: visible})
	}

	if len(steps) == 0 {
		return nil, fmt.Errorf("script has no steps")
	}

	return steps, nil
}

// phasePrinter prints each phase change with its virtual timestamp.
type phasePrinter struct {
	timeTeller timing.TimeTeller
}

func (p *phasePrinter) Func(ctx hooking.HookCtx) {
	if ctx.Pos != presence.HookPosPhaseChange {
		return
	}

	transition := ctx.Item.(presence.PhaseTransition)
	fmt.Printf("%10s  %s -> %s\n",
		p.timeTeller.CurrentTime(), transition.From, transition.To)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	enter, _ := cmd.Flags().GetDuration("enter")
	exit, _ := cmd.Flags().GetDuration("exit")
	fps, _ := cmd.Flags().GetFloat64("fps")
	initialEnter, _ := cmd.Flags().GetBool("initial-enter")
	script, _ := cmd.Flags().GetString("script")
	tracePath, _ := cmd.Flags().GetString("trace")

	steps, err := parseScript(script)
	if err != nil {
		return fmt.Errorf("invalid script: %w", err)
	}

	cfg, err := presence.NewAsymmetricConfig(enter, exit)
	if err != nil {
		return err
	}
	cfg = cfg.WithInitialEnter(initialEnter)

	engine := timing.NewSerialEngine()
	scheduler := timing.NewVirtualScheduler(engine).
		WithFrameRate(timing.FrameRate(fps))

	controller := presence.NewController("demo", scheduler)
	defer controller.Release()

	controller.AcceptHook(&phasePrinter{timeTeller: engine})

	if tracePath != "" {
		recorder := tracing.NewSQLiteRecorder(tracePath)
		defer recorder.Flush()
		controller.AcceptHook(tracing.NewPhaseTracer(recorder, engine))
	}

	for _, step := range steps {
		visible := step.visible
		engine.Schedule(timing.FutureEvent{
			ID:   fmt.Sprintf("intent@%s", step.at),
			Time: step.at,
			Run: func() {
				controller.Evaluate(visible, cfg)
			},
		})
	}

	if err := engine.Run(); err != nil {
		return err
	}

	obs := controller.Observe()
	fmt.Printf("%10s  settled in %s (mounted=%t visible=%t)\n",
		engine.CurrentTime(), obs.Phase, obs.IsMounted, obs.IsVisible)

	return nil
}
