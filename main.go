package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics (the autopilot plays)")
	autoplay := flag.Bool("autoplay", false, "Let the autopilot play in the window")
	logStats := flag.Bool("log-stats", false, "Output per-run and perf stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	records := flag.String("records", "", "High score file (empty = config value; headless runs keep none unless set)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Game ticks per update call (higher = faster headless runs)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	recordsPath := *records
	if recordsPath == "" && !*headless {
		recordsPath = cfg.Records.Path
	}

	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		OutputDir:      *outputDir,
		RecordsPath:    recordsPath,
		Headless:       *headless,
		Autoplay:       *headless || *autoplay,
		StepsPerUpdate: *stepsPerUpdate,
	}

	if *headless {
		// Headless mode - no raylib needed
		g, err := game.NewGameWithOptions(opts)
		if err != nil {
			slog.Error("failed to start game", "error", err)
			os.Exit(1)
		}

		slog.Info("starting headless game",
			"seed", rngSeed,
			"max_ticks", *maxTicks,
			"steps_per_update", *stepsPerUpdate,
		)

		for {
			g.UpdateHeadless()
			if err := g.Err(); err != nil {
				g.Unload()
				slog.Error("game stopped", "error", err)
				os.Exit(1)
			}

			if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", g.Tick())
				break
			}
		}
		g.Unload()
		if *logStats {
			// stdout carries the JSON log stream.
			game.SetLogWriter(os.Stderr)
			g.LogRuns()
		}
		return
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		rl.CloseWindow()
		slog.Error("failed to start game", "error", err)
		os.Exit(1)
	}

	speed := g.Speed()
	rl.SetTargetFPS(int32(speed))

	for !rl.WindowShouldClose() {
		g.Update()
		if err := g.Err(); err != nil {
			g.Unload()
			rl.CloseWindow()
			slog.Error("game stopped", "error", err)
			os.Exit(1)
		}
		g.Draw()

		if s := g.Speed(); s != speed {
			speed = s
			rl.SetTargetFPS(int32(speed))
		}

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			break
		}
	}

	g.Unload()
	rl.CloseWindow()
}
