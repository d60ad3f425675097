package ui

import (
	"fmt"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the HUD.
type HUDData struct {
	Title        string
	Score        int
	Record       int
	Length       int
	Speed        int
	Paused       bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the score overlay and keeps the window caption current.
type HUD struct {
	renderer *Renderer
	caption  string
}

// NewHUD creates a new HUD renderer.
func NewHUD(theme Theme) *HUD {
	return &HUD{renderer: NewRenderer(theme)}
}

// Caption returns the window caption for data.
func Caption(data HUDData) string {
	return fmt.Sprintf("%s | Speed: %d Score: %d Record: %d", data.Title, data.Speed, data.Score, data.Record)
}

// Draw renders the HUD and updates the window caption when it changes.
func (h *HUD) Draw(data HUDData) {
	if caption := Caption(data); caption != h.caption {
		rl.SetWindowTitle(caption)
		h.caption = caption
	}

	r := h.renderer
	pad := r.Theme.Padding
	width := r.Theme.LabelWidth + 60
	height := 4*r.Theme.LineHeight + pad

	r.DrawPanel(pad, pad, width, height)
	y := pad + pad/2
	y = r.DrawLabelValue(2*pad, y, "Score", strconv.Itoa(data.Score))
	y = r.DrawLabelValue(2*pad, y, "Record", strconv.Itoa(data.Record))
	y = r.DrawLabelValue(2*pad, y, "Length", strconv.Itoa(data.Length))
	r.DrawLabelValue(2*pad, y, "Speed", strconv.Itoa(data.Speed))

	if data.Paused {
		text := "PAUSED"
		w := rl.MeasureText(text, r.Theme.HeaderFontSize)
		rl.DrawText(text, data.ScreenWidth-w-pad, pad, r.Theme.HeaderFontSize, r.Theme.Highlight)
	}
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, h.renderer.Theme.Padding, screenHeight-25, 14, rl.Gray)
}
