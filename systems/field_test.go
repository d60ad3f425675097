package systems

import (
	"testing"

	"github.com/pthm-cable/snake/components"
)

func TestFieldAdvanceWraps(t *testing.T) {
	f := NewField(45, 30, 20)

	tests := []struct {
		name string
		from components.Cell
		dir  components.Direction
		want components.Cell
	}{
		{"right inside", components.Cell{X: 3, Y: 4}, components.DirRight, components.Cell{X: 4, Y: 4}},
		{"right edge", components.Cell{X: 44, Y: 4}, components.DirRight, components.Cell{X: 0, Y: 4}},
		{"left edge", components.Cell{X: 0, Y: 4}, components.DirLeft, components.Cell{X: 44, Y: 4}},
		{"top edge", components.Cell{X: 7, Y: 0}, components.DirUp, components.Cell{X: 7, Y: 29}},
		{"bottom edge", components.Cell{X: 7, Y: 29}, components.DirDown, components.Cell{X: 7, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Advance(tt.from, tt.dir)
			if got != tt.want {
				t.Errorf("Advance(%v, %v) = %v, want %v", tt.from, tt.dir, got, tt.want)
			}
		})
	}
}

// TestFieldAdvanceMatchesPixelFormula checks every cell and direction
// against ((Hx + Dx*cell) mod width, (Hy + Dy*cell) mod height).
func TestFieldAdvanceMatchesPixelFormula(t *testing.T) {
	f := NewField(12, 7, 20)
	width := f.Cols * f.CellSize
	height := f.Rows * f.CellSize

	for y := 0; y < f.Rows; y++ {
		for x := 0; x < f.Cols; x++ {
			head := components.Cell{X: x, Y: y}
			hx, hy := f.ToPixel(head)
			for _, d := range components.Directions {
				delta := d.Delta()
				wantX := (hx + delta.X*f.CellSize + width) % width
				wantY := (hy + delta.Y*f.CellSize + height) % height

				next := f.Advance(head, d)
				if !f.Contains(next) {
					t.Fatalf("Advance(%v, %v) = %v out of bounds", head, d, next)
				}
				gotX, gotY := f.ToPixel(next)
				if gotX != wantX || gotY != wantY {
					t.Errorf("Advance(%v, %v) pixel = (%d,%d), want (%d,%d)", head, d, gotX, gotY, wantX, wantY)
				}
			}
		}
	}
}

func TestFieldNormalizeNegative(t *testing.T) {
	f := NewField(10, 5, 1)
	got := f.Normalize(components.Cell{X: -21, Y: -1})
	want := components.Cell{X: 9, Y: 4}
	if got != want {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestFieldIndexRoundtrip(t *testing.T) {
	f := NewField(9, 4, 1)
	for i := 0; i < f.Area(); i++ {
		if got := f.Index(f.CellAt(i)); got != i {
			t.Errorf("Index(CellAt(%d)) = %d", i, got)
		}
	}
}

func TestToroidalDistance(t *testing.T) {
	f := NewField(10, 10, 1)

	tests := []struct {
		a, b components.Cell
		want int
	}{
		{components.Cell{X: 0, Y: 0}, components.Cell{X: 3, Y: 0}, 3},
		{components.Cell{X: 0, Y: 0}, components.Cell{X: 9, Y: 0}, 1},
		{components.Cell{X: 1, Y: 1}, components.Cell{X: 8, Y: 8}, 6},
		{components.Cell{X: 5, Y: 5}, components.Cell{X: 5, Y: 5}, 0},
	}
	for _, tt := range tests {
		if got := f.ToroidalDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("ToroidalDistance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
