package game

import (
	"log/slog"

	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/telemetry"
)

// finishRun closes the current run and hands it to the tracker and outputs.
func (g *Game) finishRun(cause components.DeathCause) {
	body, _ := g.snakeMapper.Get(g.snake)
	g.collector.Record(telemetry.NewRunEndEvent(g.tick, cause, g.score))
	rec := g.collector.Finish(g.tick, body.Len())
	rec = g.runs.Add(rec)

	if g.logStats || rec.NewRecord {
		slog.Info("run ended", "run", rec)
	}
	if rec.NewRecord {
		slog.Info("new record", "score", g.record, "run", rec.Run)
	}
	if err := g.outputManager.WriteRun(rec); err != nil {
		slog.Error("failed to write run", "error", err)
	}
}

// flushPerf logs and writes the perf window every log interval.
func (g *Game) flushPerf() {
	interval := int32(g.cfg.Telemetry.LogIntervalTicks)
	if interval <= 0 || g.tick%interval != 0 {
		return
	}

	stats := g.perfCollector.Stats()
	if g.logStats {
		stats.LogStats()
	}
	if err := g.outputManager.WritePerf(stats, g.tick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
