// Package telemetry tracks runs, scores, high-score persistence and
// tick performance.
package telemetry

import "github.com/pthm-cable/snake/components"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventAte EventType = iota
	EventRunEnd
	EventNewRecord
)

// Event is a single thing that happened on a tick.
type Event struct {
	Type  EventType
	Tick  int32
	Item  components.ItemKind // EventAte
	Cause components.DeathCause
	Score int
}

// NewAteEvent creates an event for the head landing on an item.
func NewAteEvent(tick int32, kind components.ItemKind, score int) Event {
	return Event{Type: EventAte, Tick: tick, Item: kind, Score: score}
}

// NewRunEndEvent creates an event for a run ending.
func NewRunEndEvent(tick int32, cause components.DeathCause, score int) Event {
	return Event{Type: EventRunEnd, Tick: tick, Cause: cause, Score: score}
}

// NewRecordEvent creates an event for a new high score.
func NewRecordEvent(tick int32, score int) Event {
	return Event{Type: EventNewRecord, Tick: tick, Score: score}
}
