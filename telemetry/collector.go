package telemetry

import "github.com/pthm-cable/snake/components"

// Collector accumulates events for the run in progress and produces a
// RunRecord when the run ends.
type Collector struct {
	startTick int32

	apples    int
	badApples int
	maxLength int
	records   int

	// Set by the run-end event.
	score int
	cause components.DeathCause
}

// NewCollector creates a collector for a run starting at tick.
func NewCollector(tick int32) *Collector {
	return &Collector{startTick: tick, maxLength: 1}
}

// Record applies one event.
func (c *Collector) Record(e Event) {
	switch e.Type {
	case EventAte:
		switch e.Item {
		case components.ItemApple:
			c.apples++
		case components.ItemBadApple:
			c.badApples++
		}
	case EventNewRecord:
		c.records++
	case EventRunEnd:
		c.score, c.cause = e.Score, e.Cause
	}
}

// ObserveLength tracks the longest the snake got during the run.
func (c *Collector) ObserveLength(n int) {
	if n > c.maxLength {
		c.maxLength = n
	}
}

// StartTick returns the tick the current run began on.
func (c *Collector) StartTick() int32 {
	return c.startTick
}

// Finish closes the run and returns its record, taking the score and cause
// from the last run-end event. The collector is reset to start a new run
// at endTick.
func (c *Collector) Finish(endTick int32, length int) RunRecord {
	r := RunRecord{
		StartTick: c.startTick,
		EndTick:   endTick,
		Ticks:     endTick - c.startTick,
		Score:     c.score,
		Length:    length,
		MaxLength: c.maxLength,
		Apples:    c.apples,
		BadApples: c.badApples,
		NewRecord: c.records > 0,
		Cause:     c.cause.String(),
	}
	*c = Collector{startTick: endTick, maxLength: 1}
	return r
}
