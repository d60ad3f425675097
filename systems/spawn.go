package systems

import (
	"math/rand"

	"github.com/pthm-cable/snake/components"
)

// SampleFree picks a uniformly random unoccupied cell using a single-slot
// reservoir sample over the grid. ok is false when every cell is taken.
func SampleFree(occ *Occupancy, rng *rand.Rand) (c components.Cell, ok bool) {
	if occ.Free() == 0 {
		return components.Cell{}, false
	}

	seen := 0
	chosen := -1
	for i, n := range occ.counts {
		if n != 0 {
			continue
		}
		seen++
		// Keep the i-th free cell with probability 1/seen.
		if rng.Intn(seen) == 0 {
			chosen = i
		}
	}
	if chosen < 0 {
		return components.Cell{}, false
	}
	return occ.field.CellAt(chosen), true
}
