package systems

import "github.com/pthm-cable/snake/components"

// Occupancy counts tracked entities per cell so free cells can be found
// without rebuilding a set every spawn.
type Occupancy struct {
	field  Field
	counts []uint16
	used   int // cells with a non-zero count
}

// NewOccupancy creates an empty occupancy grid for f.
func NewOccupancy(f Field) *Occupancy {
	return &Occupancy{
		field:  f,
		counts: make([]uint16, f.Area()),
	}
}

// Occupy marks one more entity on c.
func (o *Occupancy) Occupy(c components.Cell) {
	i := o.field.Index(c)
	if o.counts[i] == 0 {
		o.used++
	}
	o.counts[i]++
}

// Vacate removes one entity from c. Vacating a free cell is a no-op.
func (o *Occupancy) Vacate(c components.Cell) {
	i := o.field.Index(c)
	if o.counts[i] == 0 {
		return
	}
	o.counts[i]--
	if o.counts[i] == 0 {
		o.used--
	}
}

// Occupied reports whether any entity is on c.
func (o *Occupancy) Occupied(c components.Cell) bool {
	return o.counts[o.field.Index(c)] > 0
}

// Free returns the number of unoccupied cells.
func (o *Occupancy) Free() int {
	return len(o.counts) - o.used
}

// Clear empties the grid.
func (o *Occupancy) Clear() {
	for i := range o.counts {
		o.counts[i] = 0
	}
	o.used = 0
}
