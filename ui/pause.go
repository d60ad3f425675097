package ui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// PauseAction is what the player picked on the pause panel.
type PauseAction uint8

const (
	PauseNone PauseAction = iota
	PauseResume
	PauseRestart
)

// PausePanel is the overlay shown while the game is paused.
type PausePanel struct {
	renderer *Renderer
	width    int32
	height   int32

	// Slider range and granularity for the manual speed bias
	MinBias, MaxBias int
	Step             int
}

// NewPausePanel creates a pause panel.
func NewPausePanel(theme Theme, minBias, maxBias, step int) *PausePanel {
	if step < 1 {
		step = 1
	}
	return &PausePanel{
		renderer: NewRenderer(theme),
		width:    280,
		height:   170,
		MinBias:  minBias,
		MaxBias:  maxBias,
		Step:     step,
	}
}

// Draw renders the panel centred on the screen and returns the chosen
// action along with the speed bias the slider now shows.
func (p *PausePanel) Draw(screenW, screenH int32, bias int) (PauseAction, int) {
	r := p.renderer
	x := (screenW - p.width) / 2
	y := (screenH - p.height) / 2
	r.DrawPanel(x, y, p.width, p.height)

	pad := r.Theme.Padding
	cy := r.DrawHeader(x+pad, y+pad, "Paused")

	rl.DrawText(fmt.Sprintf("Speed bias: %+d", bias), x+pad, cy, r.Theme.FontSize, r.Theme.LabelColor)
	cy += r.Theme.LineHeight
	value := gui.SliderBar(
		rl.Rectangle{X: float32(x + pad + 30), Y: float32(cy), Width: float32(p.width - 2*pad - 60), Height: 20},
		fmt.Sprint(p.MinBias), fmt.Sprint(p.MaxBias),
		float32(bias), float32(p.MinBias), float32(p.MaxBias),
	)
	newBias := snapBias(value, p.Step, p.MinBias, p.MaxBias)
	cy += 40

	action := PauseNone
	bw := (p.width - 3*pad) / 2
	if gui.Button(rl.Rectangle{X: float32(x + pad), Y: float32(cy), Width: float32(bw), Height: 30}, "Resume") {
		action = PauseResume
	}
	if gui.Button(rl.Rectangle{X: float32(x + 2*pad + bw), Y: float32(cy), Width: float32(bw), Height: 30}, "Restart") {
		action = PauseRestart
	}
	return action, newBias
}

// snapBias rounds a slider value to the nearest multiple of step in range.
func snapBias(v float32, step, min, max int) int {
	b := int(math.Round(float64(v)/float64(step))) * step
	if b < min {
		b = min
	}
	if b > max {
		b = max
	}
	return b
}
