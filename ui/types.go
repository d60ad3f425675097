// Package ui draws the heads-up display and the pause panel.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/config"
)

// Theme defines colours and sizing for the game and its panels.
type Theme struct {
	// Field
	Background rl.Color
	Border     rl.Color
	Apple      rl.Color
	BadApple   rl.Color
	Stone      rl.Color
	Snake      rl.Color
	SnakeHead  rl.Color

	// Panels
	PanelBg     rl.Color
	PanelBorder rl.Color
	LabelColor  rl.Color
	ValueColor  rl.Color
	Highlight   rl.Color

	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the panel styling with field colours from cfg.
func DefaultTheme(cfg config.ColorsConfig) Theme {
	return Theme{
		Background: toColor(cfg.Background),
		Border:     toColor(cfg.Border),
		Apple:      toColor(cfg.Apple),
		BadApple:   toColor(cfg.BadApple),
		Stone:      toColor(cfg.Stone),
		Snake:      toColor(cfg.Snake),
		SnakeHead:  toColor(cfg.SnakeHead),

		PanelBg:     rl.Color{R: 20, G: 25, B: 30, A: 230},
		PanelBorder: rl.Color{R: 60, G: 70, B: 80, A: 255},
		LabelColor:  rl.LightGray,
		ValueColor:  rl.RayWhite,
		Highlight:   rl.Yellow,

		Padding:        10,
		LineHeight:     20,
		LabelWidth:     70,
		FontSize:       16,
		HeaderFontSize: 20,
	}
}

func toColor(c config.RGB) rl.Color {
	return rl.Color{R: c[0], G: c[1], B: c[2], A: 255}
}
