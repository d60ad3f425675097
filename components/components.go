// Package components defines ECS components for the snake game.
package components

// Cell is a grid coordinate in cell units (not pixels).
type Cell struct {
	X, Y int
}

// Add returns the component-wise sum of two cells.
func (c Cell) Add(other Cell) Cell {
	return Cell{X: c.X + other.X, Y: c.Y + other.Y}
}

// Direction is a movement direction on the grid.
type Direction uint8

const (
	DirNone Direction = iota // no pending request
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four moving directions in a stable order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit step for the direction. Y grows downward.
func (d Direction) Delta() Cell {
	switch d {
	case DirUp:
		return Cell{0, -1}
	case DirDown:
		return Cell{0, 1}
	case DirLeft:
		return Cell{-1, 0}
	case DirRight:
		return Cell{1, 0}
	}
	return Cell{}
}

// Opposite returns the reverse direction. DirNone maps to itself.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

// IsOpposite reports whether other is the reverse of d.
func (d Direction) IsOpposite(other Direction) bool {
	return d != DirNone && d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Heading holds the committed direction and the one requested for the next tick.
type Heading struct {
	Current Direction
	Pending Direction
}
