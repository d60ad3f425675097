// Package main runs batches of headless autopilot games and reports
// score statistics.
//
// Usage: go run ./cmd/autoplay -seeds 8 -max-ticks 20000 -output out/
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/game"
	"github.com/pthm-cable/snake/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seeds := flag.Int("seeds", 4, "Number of seeds to play")
	maxTicks := flag.Int("max-ticks", 20000, "Ticks per seed")
	outputDir := flag.String("output", "", "Output directory for per-seed CSVs (empty = none)")
	parallel := flag.Int("parallel", runtime.NumCPU(), "Seeds played concurrently")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	start := time.Now()
	results := make([][]telemetry.RunRecord, *seeds)

	var eg errgroup.Group
	eg.SetLimit(max(*parallel, 1))
	for i := 0; i < *seeds; i++ {
		seed := int64(i*1000 + 42)
		eg.Go(func() error {
			opts := game.Options{
				Seed:           seed,
				StepsPerUpdate: 64,
				Config:         cfg,
			}
			if *outputDir != "" {
				opts.OutputDir = filepath.Join(*outputDir, fmt.Sprintf("seed_%d", seed))
			}
			runs, err := game.Simulate(opts, int32(*maxTicks))
			if err != nil {
				return err
			}
			results[i] = runs
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		slog.Error("autoplay failed", "error", err)
		os.Exit(1)
	}

	var all []telemetry.RunRecord
	for _, runs := range results {
		all = append(all, runs...)
	}
	summary := telemetry.Summarize(game.Scores(all))
	slog.Info("autoplay summary",
		"seeds", *seeds,
		"ticks_per_seed", *maxTicks,
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
		"scores", summary,
	)

	if *outputDir != "" {
		om, err := telemetry.NewOutputManager(*outputDir)
		if err != nil {
			slog.Error("failed to open output", "error", err)
			os.Exit(1)
		}
		defer om.Close()
		if err := om.WriteSummary(summary); err != nil {
			slog.Error("failed to write summary", "error", err)
		}
		if err := om.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config", "error", err)
		}
	}
}
