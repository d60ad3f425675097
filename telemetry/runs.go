package telemetry

import (
	"log/slog"

	"github.com/google/uuid"
)

// RunRecord is one finished run, flattened for CSV.
type RunRecord struct {
	Session   string `csv:"session"`
	Run       int    `csv:"run"`
	StartTick int32  `csv:"start_tick"`
	EndTick   int32  `csv:"end_tick"`
	Ticks     int32  `csv:"ticks"`
	Score     int    `csv:"score"`
	Length    int    `csv:"length"`
	MaxLength int    `csv:"max_length"`
	Apples    int    `csv:"apples"`
	BadApples int    `csv:"bad_apples"`
	NewRecord bool   `csv:"new_record"`
	Cause     string `csv:"cause"`
}

// LogValue implements slog.LogValuer.
func (r RunRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("run", r.Run),
		slog.Int("score", r.Score),
		slog.Int("max_length", r.MaxLength),
		slog.Int("apples", r.Apples),
		slog.Int("bad_apples", r.BadApples),
		slog.Int("ticks", int(r.Ticks)),
		slog.String("cause", r.Cause),
	)
}

// RunTracker keeps every run of one session.
type RunTracker struct {
	session string
	runs    []RunRecord
}

// NewRunTracker starts a session with a fresh identifier.
func NewRunTracker() *RunTracker {
	return &RunTracker{session: uuid.NewString()}
}

// Session returns the session identifier.
func (t *RunTracker) Session() string {
	return t.session
}

// Add stamps r with the session and run index and stores it.
func (t *RunTracker) Add(r RunRecord) RunRecord {
	r.Session = t.session
	r.Run = len(t.runs) + 1
	t.runs = append(t.runs, r)
	return r
}

// Runs returns the finished runs in order.
func (t *RunTracker) Runs() []RunRecord {
	return t.runs
}

// Scores returns the final score of every run.
func (t *RunTracker) Scores() []float64 {
	scores := make([]float64, len(t.runs))
	for i, r := range t.runs {
		scores[i] = float64(r.Score)
	}
	return scores
}
