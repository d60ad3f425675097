package telemetry

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	scores := []float64{4, 1, 3, 2, 10}
	s := Summarize(scores)

	if s.Runs != 5 {
		t.Errorf("Runs = %d, want 5", s.Runs)
	}
	if math.Abs(s.Mean-4) > 1e-9 {
		t.Errorf("Mean = %v, want 4", s.Mean)
	}
	if s.Max != 10 {
		t.Errorf("Max = %v, want 10", s.Max)
	}
	if s.P50 < 2 || s.P50 > 4 {
		t.Errorf("P50 = %v, want between 2 and 4", s.P50)
	}
	if s.P90 < s.P50 || s.P90 > s.Max {
		t.Errorf("P90 = %v outside [P50, Max]", s.P90)
	}
	if s.StdDev <= 0 {
		t.Errorf("StdDev = %v, want positive", s.StdDev)
	}
	if scores[0] != 4 {
		t.Error("Summarize reordered its input")
	}
}

func TestSummarizeEdgeCases(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   Summary
	}{
		{"empty", nil, Summary{}},
		{"single", []float64{7}, Summary{Runs: 1, Mean: 7, P50: 7, P90: 7, Max: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.scores); got != tt.want {
				t.Errorf("Summarize(%v) = %+v, want %+v", tt.scores, got, tt.want)
			}
		})
	}
}
