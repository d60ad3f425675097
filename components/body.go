package components

// Body is the snake's occupied cells stored as a ring deque, head first.
// Moving costs O(1): push a new head and pop the tail without shifting.
type Body struct {
	cells []Cell
	head  int // index of the head in cells
	n     int
}

// NewBody creates a one-cell body at head with room for capacity cells.
func NewBody(head Cell, capacity int) Body {
	if capacity < 1 {
		capacity = 1
	}
	b := Body{cells: make([]Cell, capacity)}
	b.cells[0] = head
	b.n = 1
	return b
}

// Len returns the number of cells (the snake length).
func (b *Body) Len() int {
	return b.n
}

// Head returns the head cell. The body must not be empty.
func (b *Body) Head() Cell {
	return b.cells[b.head]
}

// Tail returns the last cell. The body must not be empty.
func (b *Body) Tail() Cell {
	return b.At(b.n - 1)
}

// At returns the i-th cell counting from the head (0 is the head).
func (b *Body) At(i int) Cell {
	return b.cells[(b.head+i)%len(b.cells)]
}

// PushHead prepends c as the new head.
func (b *Body) PushHead(c Cell) {
	b.ensureRoom()
	b.head = (b.head - 1 + len(b.cells)) % len(b.cells)
	b.cells[b.head] = c
	b.n++
}

// PushTail appends c after the current tail.
func (b *Body) PushTail(c Cell) {
	b.ensureRoom()
	b.cells[(b.head+b.n)%len(b.cells)] = c
	b.n++
}

// PopTail removes and returns the tail. ok is false on an empty body.
func (b *Body) PopTail() (c Cell, ok bool) {
	if b.n == 0 {
		return Cell{}, false
	}
	c = b.At(b.n - 1)
	b.n--
	return c, true
}

// Reset shrinks the body to the single cell head, keeping its storage.
func (b *Body) Reset(head Cell) {
	if len(b.cells) == 0 {
		b.cells = make([]Cell, 1)
	}
	b.head = 0
	b.cells[0] = head
	b.n = 1
}

// Cells appends the cells head first to dst and returns it.
func (b *Body) Cells(dst []Cell) []Cell {
	for i := 0; i < b.n; i++ {
		dst = append(dst, b.At(i))
	}
	return dst
}

// HitsBody reports whether c matches any cell other than the head.
func (b *Body) HitsBody(c Cell) bool {
	for i := 1; i < b.n; i++ {
		if b.At(i) == c {
			return true
		}
	}
	return false
}

// ensureRoom doubles the storage when full, unwrapping so the head is at 0.
func (b *Body) ensureRoom() {
	if b.n < len(b.cells) {
		return
	}
	size := len(b.cells) * 2
	if size == 0 {
		size = 4
	}
	grown := make([]Cell, size)
	for i := 0; i < b.n; i++ {
		grown[i] = b.At(i)
	}
	b.cells = grown
	b.head = 0
}
