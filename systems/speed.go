package systems

import "github.com/pthm-cable/snake/config"

// SpeedTable maps snake length to a tick rate, plus a manual bias.
type SpeedTable struct {
	tiers  []config.SpeedTier
	capLen int
	step   int
	minFPS int
	bias   int
}

// NewSpeedTable builds a table from config. Tiers must be sorted by MinLength.
func NewSpeedTable(cfg config.SpeedConfig) *SpeedTable {
	tiers := make([]config.SpeedTier, len(cfg.Tiers))
	copy(tiers, cfg.Tiers)
	minFPS := cfg.MinFPS
	if minFPS < 1 {
		minFPS = 1
	}
	return &SpeedTable{
		tiers:  tiers,
		capLen: cfg.TierCapLength,
		step:   cfg.ManualStep,
		minFPS: minFPS,
	}
}

// FPS returns the tick rate for a snake of the given length.
func (s *SpeedTable) FPS(length int) int {
	fps := s.minFPS
	if len(s.tiers) > 0 {
		fps = s.tiers[0].FPS
	}
	for _, tier := range s.tiers {
		if length >= tier.MinLength {
			fps = tier.FPS
		}
	}
	fps += s.bias
	if fps < s.minFPS {
		fps = s.minFPS
	}
	return fps
}

// Tracks reports whether the speed should still follow length changes.
// Past the cap the current speed is kept.
func (s *SpeedTable) Tracks(length int) bool {
	return s.capLen <= 0 || length < s.capLen
}

// Faster raises the bias by one manual step.
func (s *SpeedTable) Faster() {
	s.bias += s.step
}

// Slower lowers the bias by one manual step while the rate for a snake
// of the given length is still above the floor.
func (s *SpeedTable) Slower(length int) {
	if s.FPS(length)-s.step < s.minFPS {
		return
	}
	s.bias -= s.step
}

// Bias returns the current manual adjustment.
func (s *SpeedTable) Bias() int {
	return s.bias
}

// SetBias replaces the manual adjustment.
func (s *SpeedTable) SetBias(bias int) {
	s.bias = bias
}
