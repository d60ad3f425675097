// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Grid      GridConfig      `yaml:"grid"`
	Speed     SpeedConfig     `yaml:"speed"`
	Items     ItemsConfig     `yaml:"items"`
	Records   RecordsConfig   `yaml:"records"`
	Autopilot AutopilotConfig `yaml:"autopilot"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Colors    ColorsConfig    `yaml:"colors"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// GridConfig holds playing field geometry.
type GridConfig struct {
	CellSize int `yaml:"cell_size"` // pixels per cell side
}

// SpeedTier maps a minimum snake length to a tick rate.
type SpeedTier struct {
	MinLength int `yaml:"min_length"`
	FPS       int `yaml:"fps"`
}

// SpeedConfig holds tick rate progression.
type SpeedConfig struct {
	Tiers         []SpeedTier `yaml:"tiers"`
	TierCapLength int         `yaml:"tier_cap_length"` // length at which the table stops being re-applied
	ManualStep    int         `yaml:"manual_step"`     // fps added/removed per Q/W press
	MinFPS        int         `yaml:"min_fps"`
}

// ItemsConfig holds how many of each collectible live on the field.
type ItemsConfig struct {
	Apples    int `yaml:"apples"`
	BadApples int `yaml:"bad_apples"`
	Stones    int `yaml:"stones"`
}

// Total returns the number of items on the field.
func (c ItemsConfig) Total() int {
	return c.Apples + c.BadApples + c.Stones
}

// RecordsConfig holds high score persistence settings.
type RecordsConfig struct {
	Path string `yaml:"path"` // empty disables persistence
}

// AutopilotConfig weighs the autopilot's move choice. Lower cost wins.
type AutopilotConfig struct {
	Distance float64 `yaml:"distance"` // cost per cell to the nearest apple
	Crowding float64 `yaml:"crowding"` // cost per blocked neighbour of the next cell
	Straight float64 `yaml:"straight"` // bonus for keeping the current direction
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow       int `yaml:"perf_window"`        // ticks in the rolling perf window
	LogIntervalTicks int `yaml:"log_interval_ticks"` // ticks between perf log lines
}

// RGB is an 8-bit colour triple.
type RGB [3]uint8

// ColorsConfig holds the palette.
type ColorsConfig struct {
	Background RGB `yaml:"background"`
	Border     RGB `yaml:"border"`
	Apple      RGB `yaml:"apple"`
	BadApple   RGB `yaml:"bad_apple"`
	Stone      RGB `yaml:"stone"`
	Snake      RGB `yaml:"snake"`
	SnakeHead  RGB `yaml:"snake_head"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Cols int // Screen.Width / Grid.CellSize
	Rows int // Screen.Height / Grid.CellSize
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Grid.CellSize <= 0 {
		c.Derived = DerivedConfig{}
		return
	}
	c.Derived.Cols = c.Screen.Width / c.Grid.CellSize
	c.Derived.Rows = c.Screen.Height / c.Grid.CellSize
}

// Validate reports the first inconsistency in the configuration.
func (c *Config) Validate() error {
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("grid.cell_size must be positive, got %d", c.Grid.CellSize)
	}
	if c.Screen.Width%c.Grid.CellSize != 0 || c.Screen.Height%c.Grid.CellSize != 0 {
		return fmt.Errorf("screen %dx%d is not a whole number of %dpx cells",
			c.Screen.Width, c.Screen.Height, c.Grid.CellSize)
	}
	if c.Derived.Cols < 2 || c.Derived.Rows < 2 {
		return fmt.Errorf("field must be at least 2x2 cells, got %dx%d", c.Derived.Cols, c.Derived.Rows)
	}
	if len(c.Speed.Tiers) == 0 {
		return errors.New("speed.tiers must not be empty")
	}
	for i, tier := range c.Speed.Tiers {
		if tier.FPS <= 0 {
			return fmt.Errorf("speed.tiers[%d].fps must be positive", i)
		}
		if i > 0 && tier.MinLength <= c.Speed.Tiers[i-1].MinLength {
			return fmt.Errorf("speed.tiers must be sorted by increasing min_length (index %d)", i)
		}
	}
	if c.Speed.MinFPS <= 0 {
		return fmt.Errorf("speed.min_fps must be positive, got %d", c.Speed.MinFPS)
	}
	if c.Items.Apples < 1 {
		return fmt.Errorf("items.apples must be at least 1, got %d", c.Items.Apples)
	}
	if c.Items.BadApples < 0 || c.Items.Stones < 0 {
		return errors.New("items counts must not be negative")
	}
	if c.Autopilot.Distance < 0 || c.Autopilot.Crowding < 0 {
		return errors.New("autopilot weights must not be negative")
	}
	if c.Items.Total()+1 > c.Derived.Cols*c.Derived.Rows {
		return fmt.Errorf("%d items and the snake do not fit in %d cells",
			c.Items.Total(), c.Derived.Cols*c.Derived.Rows)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
