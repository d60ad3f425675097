package systems

import (
	"math"

	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/config"
)

// Target is an item position as seen by the autopilot.
type Target struct {
	Cell components.Cell
	Kind components.ItemKind
}

// Autopilot is a greedy local mover: each tick it scores the safe
// directions by distance to the nearest apple and by how boxed-in the
// next cell is, then takes the cheapest.
type Autopilot struct {
	field   Field
	weights config.AutopilotConfig
}

// NewAutopilot creates an autopilot for f.
func NewAutopilot(f Field, weights config.AutopilotConfig) *Autopilot {
	return &Autopilot{field: f, weights: weights}
}

// Choose returns the direction to take on the next tick. Reversals are
// never considered, even for a one-cell snake, since Steer would reject
// them. When every other direction is fatal it keeps going straight.
func (a *Autopilot) Choose(body *components.Body, current components.Direction, items []Target) components.Direction {
	head := body.Head()

	best := components.DirNone
	bestCost := math.Inf(1)
	for _, d := range components.Directions {
		if d.IsOpposite(current) {
			continue
		}
		next := a.field.Advance(head, d)
		if a.blocked(body, next, items) {
			continue
		}

		cost := a.weights.Distance * float64(a.nearestApple(next, items))
		cost += a.weights.Crowding * float64(a.crowding(body, next, items))
		if d == current {
			cost -= a.weights.Straight
		}
		if cost < bestCost {
			best, bestCost = d, cost
		}
	}

	if best == components.DirNone {
		return current
	}
	return best
}

// nearestApple returns the toroidal distance from c to the closest apple,
// or the field's half-perimeter when no apple is placed.
func (a *Autopilot) nearestApple(c components.Cell, items []Target) int {
	nearest := a.field.Cols/2 + a.field.Rows/2
	for _, it := range items {
		if it.Kind != components.ItemApple {
			continue
		}
		if d := a.field.ToroidalDistance(c, it.Cell); d < nearest {
			nearest = d
		}
	}
	return nearest
}

// crowding counts blocked neighbours of c.
func (a *Autopilot) crowding(body *components.Body, c components.Cell, items []Target) int {
	n := 0
	for _, d := range components.Directions {
		if a.blocked(body, a.field.Advance(c, d), items) {
			n++
		}
	}
	return n
}

// blocked reports whether entering c would end or shorten the run.
func (a *Autopilot) blocked(body *components.Body, c components.Cell, items []Target) bool {
	// The tail moves away this tick unless the snake eats, so it is safe to enter.
	for i := 0; i < body.Len()-1; i++ {
		if body.At(i) == c {
			return true
		}
	}
	for _, it := range items {
		if it.Cell == c && it.Kind != components.ItemApple {
			return true
		}
	}
	return false
}
