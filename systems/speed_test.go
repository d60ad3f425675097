package systems

import (
	"testing"

	"github.com/pthm-cable/snake/config"
)

func testSpeedConfig() config.SpeedConfig {
	return config.SpeedConfig{
		Tiers: []config.SpeedTier{
			{MinLength: 0, FPS: 20},
			{MinLength: 10, FPS: 15},
			{MinLength: 20, FPS: 12},
			{MinLength: 30, FPS: 10},
			{MinLength: 40, FPS: 7},
			{MinLength: 50, FPS: 5},
		},
		TierCapLength: 50,
		ManualStep:    2,
		MinFPS:        2,
	}
}

func TestSpeedTableFPS(t *testing.T) {
	s := NewSpeedTable(testSpeedConfig())

	tests := []struct {
		length int
		want   int
	}{
		{1, 20}, {9, 20}, {10, 15}, {19, 15}, {20, 12}, {35, 10}, {40, 7}, {50, 5}, {120, 5},
	}
	for _, tt := range tests {
		if got := s.FPS(tt.length); got != tt.want {
			t.Errorf("FPS(%d) = %d, want %d", tt.length, got, tt.want)
		}
	}
}

func TestSpeedTableManualBias(t *testing.T) {
	s := NewSpeedTable(testSpeedConfig())

	s.Faster()
	if got := s.FPS(1); got != 22 {
		t.Errorf("after Faster FPS(1) = %d, want 22", got)
	}

	s.SetBias(0)
	for i := 0; i < 20; i++ {
		s.Slower(50)
	}
	if got := s.FPS(50); got < 2 {
		t.Errorf("FPS(50) = %d, dropped below floor", got)
	}
	if got := s.FPS(50); got != 3 {
		t.Errorf("FPS(50) = %d, want 3", got)
	}
}

func TestSpeedTableTracks(t *testing.T) {
	s := NewSpeedTable(testSpeedConfig())
	if !s.Tracks(49) {
		t.Error("Tracks(49) = false, want true")
	}
	if s.Tracks(50) {
		t.Error("Tracks(50) = true, want false")
	}
}
