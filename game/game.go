package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/snake/camera"
	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/systems"
	"github.com/pthm-cable/snake/telemetry"
	"github.com/pthm-cable/snake/ui"
)

// Game holds the complete game state.
type Game struct {
	cfg   *config.Config
	world *ecs.World
	rng   *rand.Rand

	// Snake entity
	snake       ecs.Entity
	snakeMapper *ecs.Map2[components.Body, components.Heading]

	// Item entities
	itemMapper *ecs.Map2[components.Cell, components.Item]
	itemFilter *ecs.Filter2[components.Cell, components.Item]
	items      []ecs.Entity

	// Rules
	field     systems.Field
	occ       *systems.Occupancy
	speed     *systems.SpeedTable
	autopilot *systems.Autopilot

	// State
	tick           int32
	score          int
	record         int
	fps            int
	paused         bool
	stepsPerUpdate int
	headless       bool
	autoplay       bool
	logStats       bool
	err            error

	// Telemetry
	records       *telemetry.RecordStore
	collector     *telemetry.Collector
	runs          *telemetry.RunTracker
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager

	// Graphics only
	viewport   *camera.Viewport
	theme      ui.Theme
	hud        *ui.HUD
	pausePanel *ui.PausePanel
}

// NewGameWithOptions creates a game. It loads the high score, creating the
// record file when it is missing.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	world := ecs.NewWorld()
	field := systems.NewField(cfg.Derived.Cols, cfg.Derived.Rows, cfg.Grid.CellSize)

	g := &Game{
		cfg:            cfg,
		world:          world,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		snakeMapper:    ecs.NewMap2[components.Body, components.Heading](world),
		itemMapper:     ecs.NewMap2[components.Cell, components.Item](world),
		itemFilter:     ecs.NewFilter2[components.Cell, components.Item](world),
		field:          field,
		occ:            systems.NewOccupancy(field),
		speed:          systems.NewSpeedTable(cfg.Speed),
		autopilot:      systems.NewAutopilot(field, cfg.Autopilot),
		stepsPerUpdate: steps,
		headless:       opts.Headless,
		autoplay:       opts.Autoplay,
		logStats:       opts.LogStats,
		records:        telemetry.NewRecordStore(opts.RecordsPath),
		collector:      telemetry.NewCollector(0),
		runs:           telemetry.NewRunTracker(),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
	}

	record, err := g.records.Load()
	if err != nil {
		return nil, fmt.Errorf("loading high score: %w", err)
	}
	g.record = record

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	g.spawnSnake()
	g.spawnItems()
	g.fps = g.speed.FPS(g.Length())

	if !opts.Headless {
		g.theme = ui.DefaultTheme(cfg.Colors)
		g.viewport = camera.New(float32(cfg.Screen.Width), float32(cfg.Screen.Height),
			field.Cols, field.Rows, float32(field.CellSize))
		g.hud = ui.NewHUD(g.theme)
		g.pausePanel = ui.NewPausePanel(g.theme, -4*cfg.Speed.ManualStep, 10*cfg.Speed.ManualStep, cfg.Speed.ManualStep)
	}

	slog.Info("game started",
		"session", g.runs.Session(),
		"seed", opts.Seed,
		"cols", field.Cols,
		"rows", field.Rows,
		"record", g.record,
	)
	return g, nil
}

// Update runs one frame of the graphical game: input, then ticks unless
// paused. Call Draw afterwards.
func (g *Game) Update() {
	g.handleInput()

	if g.paused || g.err != nil {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		if _, err := g.Step(); err != nil {
			g.err = err
			return
		}
	}
}

// UpdateHeadless runs ticks without raylib or input handling.
func (g *Game) UpdateHeadless() {
	if g.err != nil {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		if _, err := g.Step(); err != nil {
			g.err = err
			return
		}
	}
}

// Err returns the error that stopped the game, if any.
func (g *Game) Err() error {
	return g.err
}

// Tick returns the number of ticks run.
func (g *Game) Tick() int32 {
	return g.tick
}

// Score returns the current run's score.
func (g *Game) Score() int {
	return g.score
}

// Record returns the high score.
func (g *Game) Record() int {
	return g.record
}

// Length returns the snake length.
func (g *Game) Length() int {
	body, _ := g.snakeMapper.Get(g.snake)
	return body.Len()
}

// Speed returns the target ticks per second.
func (g *Game) Speed() int {
	return g.fps
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Runs returns the finished runs of this session.
func (g *Game) Runs() []telemetry.RunRecord {
	return g.runs.Runs()
}

// Session returns the session identifier.
func (g *Game) Session() string {
	return g.runs.Session()
}

// Unload closes the run in progress, logs the session summary and closes
// output files.
func (g *Game) Unload() {
	if g.tick > g.collector.StartTick() {
		g.finishRun(components.CauseShutdown)
	}
	g.logSessionSummary()
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
