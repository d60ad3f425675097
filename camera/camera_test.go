package camera

import (
	"math"
	"testing"
)

func TestNewExactFit(t *testing.T) {
	v := New(900, 600, 45, 30, 20)

	if v.Cell != 20 {
		t.Errorf("Cell = %f, want 20", v.Cell)
	}
	if v.OffsetX != 0 || v.OffsetY != 0 {
		t.Errorf("offset = (%f, %f), want (0, 0)", v.OffsetX, v.OffsetY)
	}
}

func TestCellRect(t *testing.T) {
	v := New(900, 600, 45, 30, 20)

	r := v.CellRect(3, 2)
	if r.X != 60 || r.Y != 40 || r.Width != 20 || r.Height != 20 {
		t.Errorf("CellRect(3, 2) = %+v, want {60 40 20 20}", r)
	}
}

func TestResizeLargerCentres(t *testing.T) {
	v := New(900, 600, 45, 30, 20)
	v.Resize(1000, 800)

	if v.Cell != 20 {
		t.Errorf("Cell = %f, want 20 (no upscaling)", v.Cell)
	}
	if v.OffsetX != 50 || v.OffsetY != 100 {
		t.Errorf("offset = (%f, %f), want (50, 100)", v.OffsetX, v.OffsetY)
	}
}

func TestResizeSmallerScales(t *testing.T) {
	v := New(900, 600, 45, 30, 20)
	v.Resize(450, 600)

	if math.Abs(float64(v.Cell-10)) > 1e-6 {
		t.Errorf("Cell = %f, want 10", v.Cell)
	}
	f := v.FieldRect()
	if f.Width > 450 || f.Height > 600 {
		t.Errorf("field %+v does not fit the window", f)
	}
}
