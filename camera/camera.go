// Package camera maps grid cells to screen pixels.
package camera

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Viewport centres a cols x rows field of square cells inside the window.
// When the window grows the field keeps its cell size and gains margins;
// when it shrinks the cells scale down so the whole field stays visible.
type Viewport struct {
	// Window dimensions
	ScreenW, ScreenH float32

	// Field dimensions in cells and the preferred cell size
	Cols, Rows int
	BaseCell   float32

	// Derived
	Cell             float32
	OffsetX, OffsetY float32
}

// New creates a viewport for the given window and field.
func New(screenW, screenH float32, cols, rows int, cellSize float32) *Viewport {
	v := &Viewport{
		Cols:     cols,
		Rows:     rows,
		BaseCell: cellSize,
	}
	v.Resize(screenW, screenH)
	return v
}

// Resize recomputes the cell size and margins for a new window size.
func (v *Viewport) Resize(screenW, screenH float32) {
	v.ScreenW = screenW
	v.ScreenH = screenH

	cell := v.BaseCell
	if fit := screenW / float32(v.Cols); fit < cell {
		cell = fit
	}
	if fit := screenH / float32(v.Rows); fit < cell {
		cell = fit
	}
	if cell < 1 {
		cell = 1
	}
	v.Cell = cell
	v.OffsetX = (screenW - cell*float32(v.Cols)) / 2
	v.OffsetY = (screenH - cell*float32(v.Rows)) / 2
}

// CellRect returns the screen rectangle covering cell (x, y).
func (v *Viewport) CellRect(x, y int) Rect {
	return Rect{
		X:      v.OffsetX + float32(x)*v.Cell,
		Y:      v.OffsetY + float32(y)*v.Cell,
		Width:  v.Cell,
		Height: v.Cell,
	}
}

// FieldRect returns the rectangle covering the whole field.
func (v *Viewport) FieldRect() Rect {
	return Rect{
		X:      v.OffsetX,
		Y:      v.OffsetY,
		Width:  v.Cell * float32(v.Cols),
		Height: v.Cell * float32(v.Rows),
	}
}
