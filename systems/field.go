// Package systems holds the game rules: grid geometry, occupancy, item
// placement, steering, speed progression and the autopilot.
package systems

import "github.com/pthm-cable/snake/components"

// Field is the toroidal playing grid. Coordinates are in cells; CellSize
// converts them to pixels for rendering.
type Field struct {
	Cols     int
	Rows     int
	CellSize int
}

// NewField creates a field of cols x rows cells.
func NewField(cols, rows, cellSize int) Field {
	return Field{Cols: cols, Rows: rows, CellSize: cellSize}
}

// Area returns the number of cells.
func (f Field) Area() int {
	return f.Cols * f.Rows
}

// Center returns the cell the snake starts on.
func (f Field) Center() components.Cell {
	return components.Cell{X: f.Cols / 2, Y: f.Rows / 2}
}

// Contains reports whether c lies inside the field.
func (f Field) Contains(c components.Cell) bool {
	return c.X >= 0 && c.X < f.Cols && c.Y >= 0 && c.Y < f.Rows
}

// Normalize wraps c onto the field.
func (f Field) Normalize(c components.Cell) components.Cell {
	return components.Cell{X: mod(c.X, f.Cols), Y: mod(c.Y, f.Rows)}
}

// Advance returns the cell one step from c in direction d, wrapping at the edges.
func (f Field) Advance(c components.Cell, d components.Direction) components.Cell {
	return f.Normalize(c.Add(d.Delta()))
}

// ToPixel returns the top-left pixel of c.
func (f Field) ToPixel(c components.Cell) (x, y int) {
	return c.X * f.CellSize, c.Y * f.CellSize
}

// Index returns the row-major index of c. c must be inside the field.
func (f Field) Index(c components.Cell) int {
	return c.Y*f.Cols + c.X
}

// CellAt is the inverse of Index.
func (f Field) CellAt(i int) components.Cell {
	return components.Cell{X: i % f.Cols, Y: i / f.Cols}
}

// ToroidalDistance returns the Manhattan distance between a and b
// taking wraparound into account.
func (f Field) ToroidalDistance(a, b components.Cell) int {
	return absInt(toroidalDelta(a.X, b.X, f.Cols)) + absInt(toroidalDelta(a.Y, b.Y, f.Rows))
}
