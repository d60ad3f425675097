package ui

import "testing"

func TestSnapBias(t *testing.T) {
	tests := []struct {
		v    float32
		want int
	}{
		{0, 0},
		{0.9, 0},
		{2.6, 2},
		{3.7, 4},
		{-3.2, -4},
		{99, 10},
		{-99, -10},
	}
	for _, tt := range tests {
		if got := snapBias(tt.v, 2, -10, 10); got != tt.want {
			t.Errorf("snapBias(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestCaption(t *testing.T) {
	got := Caption(HUDData{Title: "Snake", Speed: 20, Score: 3, Record: 11})
	want := "Snake | Speed: 20 Score: 3 Record: 11"
	if got != want {
		t.Errorf("Caption() = %q, want %q", got, want)
	}
}
