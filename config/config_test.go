package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Derived.Cols != 45 || cfg.Derived.Rows != 30 {
		t.Errorf("grid = %dx%d, want 45x30", cfg.Derived.Cols, cfg.Derived.Rows)
	}
	if cfg.Items.Total() != 3 {
		t.Errorf("Items.Total() = %d, want 3", cfg.Items.Total())
	}
	if got := cfg.Colors.Apple; got != (RGB{255, 0, 0}) {
		t.Errorf("Colors.Apple = %v, want [255 0 0]", got)
	}
	if cfg.Records.Path != "records.bin" {
		t.Errorf("Records.Path = %q, want records.bin", cfg.Records.Path)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	overlay := []byte("screen:\n  width: 640\n  height: 480\nitems:\n  bad_apples: 0\n  stones: 0\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Derived.Cols != 32 || cfg.Derived.Rows != 24 {
		t.Errorf("grid = %dx%d, want 32x24", cfg.Derived.Cols, cfg.Derived.Rows)
	}
	if cfg.Items.Apples != 1 || cfg.Items.Total() != 1 {
		t.Errorf("items = %+v, want a single apple", cfg.Items)
	}
	// Untouched sections keep their defaults
	if cfg.Grid.CellSize != 20 {
		t.Errorf("Grid.CellSize = %d, want 20", cfg.Grid.CellSize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"ragged screen", func(c *Config) { c.Screen.Width = 910 }},
		{"zero cell size", func(c *Config) { c.Grid.CellSize = 0 }},
		{"tiny field", func(c *Config) { c.Screen.Width, c.Screen.Height = 20, 20 }},
		{"no tiers", func(c *Config) { c.Speed.Tiers = nil }},
		{"unsorted tiers", func(c *Config) {
			c.Speed.Tiers = []SpeedTier{{MinLength: 10, FPS: 5}, {MinLength: 0, FPS: 10}}
		}},
		{"no apples", func(c *Config) { c.Items.Apples = 0 }},
		{"negative autopilot weight", func(c *Config) { c.Autopilot.Crowding = -1 }},
		{"too many items", func(c *Config) {
			c.Screen.Width, c.Screen.Height = 40, 40
			c.Items = ItemsConfig{Apples: 2, BadApples: 1, Stones: 1}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			cfg.computeDerived()
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	cfg := Default()
	cfg.Items.Stones = 4
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Items.Stones != 4 {
		t.Errorf("Items.Stones = %d, want 4", loaded.Items.Stones)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Cfg()
}
