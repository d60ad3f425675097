package game

import (
	"fmt"

	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/telemetry"
)

// Simulate plays one headless autopilot session of maxTicks ticks and
// returns its finished runs. The run still in progress at the end is
// closed as a shutdown.
func Simulate(opts Options, maxTicks int32) ([]telemetry.RunRecord, error) {
	opts.Headless = true
	opts.Autoplay = true

	g, err := NewGameWithOptions(opts)
	if err != nil {
		return nil, err
	}

	for g.Tick() < maxTicks {
		g.UpdateHeadless()
		if err := g.Err(); err != nil {
			g.Unload()
			return g.Runs(), fmt.Errorf("seed %d tick %d: %w", opts.Seed, g.Tick(), err)
		}
	}
	g.Unload()
	return g.Runs(), nil
}

// Scores extracts final scores, skipping runs cut short by shutdown when
// at least one run ended on its own.
func Scores(runs []telemetry.RunRecord) []float64 {
	var scores, all []float64
	for _, r := range runs {
		all = append(all, float64(r.Score))
		if r.Cause != components.CauseShutdown.String() {
			scores = append(scores, float64(r.Score))
		}
	}
	if len(scores) == 0 {
		return all
	}
	return scores
}
