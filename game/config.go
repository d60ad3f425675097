package game

import "github.com/pthm-cable/snake/config"

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool   // log perf windows and per-run lines via slog
	OutputDir      string // directory for runs.csv, perf.csv and config.yaml; empty disables
	RecordsPath    string // high score file; empty disables persistence
	Headless       bool   // no raylib
	Autoplay       bool   // the autopilot steers instead of the keyboard
	StepsPerUpdate int    // ticks per Update/UpdateHeadless call

	// Config overrides the global configuration when set.
	Config *config.Config
}
