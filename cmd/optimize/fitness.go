package main

import (
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/game"
	"github.com/pthm-cable/snake/telemetry"
)

// FitnessEvaluator runs headless autopilot games and scores a weight vector.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int32
	seeds      []int64
	baseConfig *config.Config

	mu          sync.Mutex
	bestFitness float64
	lastSummary telemetry.Summary
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		bestFitness: math.Inf(1),
	}
}

// LastSummary returns the score summary of the most recent evaluation.
func (fe *FitnessEvaluator) LastSummary() telemetry.Summary {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastSummary
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is the negated mean run score blended with the p90 so that
// weights producing occasional long runs are preferred over flat ones.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	results := make([][]float64, len(fe.seeds))
	var eg errgroup.Group
	for i, seed := range fe.seeds {
		eg.Go(func() error {
			runs, err := game.Simulate(game.Options{
				Seed:           seed,
				StepsPerUpdate: 64,
				Config:         cfg,
			}, fe.maxTicks)
			if err != nil {
				return err
			}
			results[i] = game.Scores(runs)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return math.Inf(1)
	}

	var scores []float64
	for _, r := range results {
		scores = append(scores, r...)
	}
	summary := telemetry.Summarize(scores)
	fitness := -(summary.Mean + 0.25*summary.P90)

	fe.mu.Lock()
	if fitness < fe.bestFitness {
		fe.bestFitness = fitness
	}
	fe.lastSummary = summary
	fe.mu.Unlock()

	return fitness
}

// copyConfig returns a shallow copy of the base config with its own tier slice.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	cfg.Speed.Tiers = append([]config.SpeedTier(nil), fe.baseConfig.Speed.Tiers...)
	return &cfg
}
