package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates final scores across runs.
type Summary struct {
	Runs   int     `csv:"runs"`
	Mean   float64 `csv:"mean"`
	StdDev float64 `csv:"stddev"`
	P50    float64 `csv:"p50"`
	P90    float64 `csv:"p90"`
	Max    float64 `csv:"max"`
}

// Summarize computes score statistics. scores is not modified.
func Summarize(scores []float64) Summary {
	n := len(scores)
	if n == 0 {
		return Summary{}
	}

	sorted := make([]float64, n)
	copy(sorted, scores)
	sort.Float64s(sorted)

	s := Summary{
		Runs: n,
		Mean: stat.Mean(sorted, nil),
		P50:  stat.Quantile(0.5, stat.LinInterp, sorted, nil),
		P90:  stat.Quantile(0.9, stat.LinInterp, sorted, nil),
		Max:  sorted[n-1],
	}
	if n > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s
}

// LogValue implements slog.LogValuer.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("runs", s.Runs),
		slog.Float64("mean", s.Mean),
		slog.Float64("stddev", s.StdDev),
		slog.Float64("p50", s.P50),
		slog.Float64("p90", s.P90),
		slog.Float64("max", s.Max),
	)
}
