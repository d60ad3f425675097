package game

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pthm-cable/snake/telemetry"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// Summary returns score statistics over the finished runs.
func (g *Game) Summary() telemetry.Summary {
	return telemetry.Summarize(g.runs.Scores())
}

// logSessionSummary logs aggregate statistics for the session.
func (g *Game) logSessionSummary() {
	summary := g.Summary()
	slog.Info("session summary",
		"session", g.runs.Session(),
		"ticks", g.tick,
		"record", g.record,
		"scores", summary,
	)
	if err := g.outputManager.WriteSummary(summary); err != nil {
		slog.Error("failed to write summary", "error", err)
	}
}

// LogRuns prints a human-readable table of finished runs.
func (g *Game) LogRuns() {
	runs := g.runs.Runs()
	Logf("=== Session %s | %d runs | record %d ===", g.runs.Session(), len(runs), g.record)
	Logf("%4s %7s %6s %7s %6s %4s  %s", "run", "ticks", "score", "maxlen", "apples", "bad", "cause")
	for _, r := range runs {
		Logf("%4d %7d %6d %7d %6d %4d  %s", r.Run, r.Ticks, r.Score, r.MaxLength, r.Apples, r.BadApples, r.Cause)
	}
	Logf("")
}
