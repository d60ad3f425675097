package game

import (
	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/systems"
	"github.com/pthm-cable/snake/telemetry"
)

// TickResult reports what happened during one tick.
type TickResult struct {
	Eaten     bool
	Ate       components.ItemKind // valid when Eaten
	Reset     bool
	Cause     components.DeathCause
	NewRecord bool
}

func (r TickResult) outcome() telemetry.Outcome {
	switch {
	case r.Reset:
		return telemetry.OutcomeReset
	case r.Eaten:
		return telemetry.OutcomeEat
	}
	return telemetry.OutcomeMove
}

// Steer requests a direction for the next tick. Reversals are rejected.
func (g *Game) Steer(d components.Direction) bool {
	_, heading := g.snakeMapper.Get(g.snake)
	return systems.Steer(heading, d)
}

// Step advances the game by exactly one tick. The only error is a failure
// to persist a new high score.
func (g *Game) Step() (TickResult, error) {
	var res TickResult
	g.perfCollector.StartTick()
	g.tick++

	body, heading := g.snakeMapper.Get(g.snake)

	g.perfCollector.Enter(telemetry.PhaseSteer)
	if g.autoplay {
		systems.Steer(heading, g.autopilot.Choose(body, heading.Current, g.targets()))
	}
	systems.ApplySteering(heading)

	g.perfCollector.Enter(telemetry.PhaseMove)
	head := g.field.Advance(body.Head(), heading.Current)
	body.PushHead(head)
	g.occ.Occupy(head)
	tail, _ := body.PopTail()
	g.occ.Vacate(tail)

	g.perfCollector.Enter(telemetry.PhaseCollide)
	kind, onItem := g.itemAt(head)
	switch {
	case onItem && kind == components.ItemApple:
		body.PushTail(tail)
		g.occ.Occupy(tail)
		g.score++
		res.Eaten, res.Ate = true, kind
		g.collector.Record(telemetry.NewAteEvent(g.tick, kind, g.score))

		g.perfCollector.Enter(telemetry.PhaseSpawn)
		g.repositionItems()

	case onItem && kind == components.ItemBadApple:
		res.Eaten, res.Ate = true, kind
		if g.score > 0 {
			g.score--
		}
		g.collector.Record(telemetry.NewAteEvent(g.tick, kind, g.score))

		g.perfCollector.Enter(telemetry.PhaseSpawn)
		if body.Len() <= 1 {
			res.Reset, res.Cause = true, components.CauseStarved
			g.resetSnake(res.Cause)
		} else {
			dropped, _ := body.PopTail()
			g.occ.Vacate(dropped)
			g.repositionItems()
		}
	}

	if !res.Reset {
		switch {
		case body.HitsBody(head):
			res.Reset, res.Cause = true, components.CauseSelf
		case onItem && kind == components.ItemStone:
			res.Reset, res.Cause = true, components.CauseStone
		}
		if res.Reset {
			g.perfCollector.Enter(telemetry.PhaseSpawn)
			g.resetSnake(res.Cause)
		}
	}

	g.collector.ObserveLength(body.Len())
	if g.speed.Tracks(body.Len()) {
		g.fps = g.speed.FPS(body.Len())
	}

	g.perfCollector.Enter(telemetry.PhasePersist)
	if g.score > g.record {
		g.record = g.score
		res.NewRecord = true
		g.collector.Record(telemetry.NewRecordEvent(g.tick, g.score))
		if err := g.records.Save(g.record); err != nil {
			g.perfCollector.EndTick(res.outcome())
			return res, err
		}
	}

	g.perfCollector.EndTick(res.outcome())
	g.flushPerf()
	return res, nil
}
