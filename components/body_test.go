package components

import "testing"

func TestBodyPushPop(t *testing.T) {
	b := NewBody(Cell{5, 5}, 2)

	b.PushHead(Cell{6, 5})
	b.PushHead(Cell{7, 5}) // forces growth

	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
	if b.Head() != (Cell{7, 5}) {
		t.Errorf("Head() = %v, want {7 5}", b.Head())
	}
	if b.Tail() != (Cell{5, 5}) {
		t.Errorf("Tail() = %v, want {5 5}", b.Tail())
	}

	tail, ok := b.PopTail()
	if !ok || tail != (Cell{5, 5}) {
		t.Errorf("PopTail() = %v, %v, want {5 5}, true", tail, ok)
	}
	if b.Len() != 2 {
		t.Errorf("Len() after pop = %d, want 2", b.Len())
	}
}

func TestBodyWrapsStorage(t *testing.T) {
	b := NewBody(Cell{0, 0}, 4)
	b.PushHead(Cell{1, 0})
	b.PushHead(Cell{2, 0})

	// Slide forward many times at constant length; storage must not grow.
	for x := 3; x < 50; x++ {
		b.PushHead(Cell{x, 0})
		b.PopTail()
	}

	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
	if len(b.cells) != 4 {
		t.Errorf("storage = %d, want 4", len(b.cells))
	}
	want := []Cell{{49, 0}, {48, 0}, {47, 0}}
	got := b.Cells(nil)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cells()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBodyPushTailRestoresLength(t *testing.T) {
	b := NewBody(Cell{3, 3}, 1)
	b.PushHead(Cell{4, 3})
	tail, _ := b.PopTail()
	b.PushTail(tail)

	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	if b.Tail() != (Cell{3, 3}) {
		t.Errorf("Tail() = %v, want {3 3}", b.Tail())
	}
}

func TestBodyHitsBody(t *testing.T) {
	b := NewBody(Cell{0, 0}, 4)
	b.PushHead(Cell{1, 0})
	b.PushHead(Cell{1, 1})

	if b.HitsBody(Cell{1, 1}) {
		t.Error("head cell should not count as a body hit")
	}
	if !b.HitsBody(Cell{0, 0}) {
		t.Error("tail cell should count as a body hit")
	}
	if b.HitsBody(Cell{9, 9}) {
		t.Error("unrelated cell should not hit")
	}
}

func TestBodyReset(t *testing.T) {
	b := NewBody(Cell{0, 0}, 2)
	for i := 1; i < 10; i++ {
		b.PushHead(Cell{i, 0})
	}
	b.Reset(Cell{4, 4})

	if b.Len() != 1 || b.Head() != (Cell{4, 4}) {
		t.Errorf("after Reset: Len=%d Head=%v, want 1 {4 4}", b.Len(), b.Head())
	}
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d, want Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
		{DirNone, DirNone},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			if got := tt.d.Opposite(); got != tt.want {
				t.Errorf("Opposite() = %v, want %v", got, tt.want)
			}
			sum := tt.d.Delta().Add(tt.want.Delta())
			if sum != (Cell{}) {
				t.Errorf("Delta()+Opposite().Delta() = %v, want zero", sum)
			}
		})
	}

	if DirNone.IsOpposite(DirNone) {
		t.Error("DirNone must not be opposite of itself")
	}
}
