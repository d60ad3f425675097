package telemetry

import (
	"testing"
	"time"
)

// stepClock advances by a fixed amount on every reading.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func newTestPerf(size int) *PerfCollector {
	pc := NewPerfCollector(size)
	pc.now = (&stepClock{t: time.Unix(0, 0), step: time.Microsecond}).now
	return pc
}

// runTick drives one tick through the given phases.
func runTick(pc *PerfCollector, o Outcome, placed int, phases ...Phase) {
	pc.StartTick()
	for _, ph := range phases {
		pc.Enter(ph)
	}
	pc.Placed(placed)
	pc.EndTick(o)
}

func TestPerfCollectorPhases(t *testing.T) {
	pc := newTestPerf(10)

	// Each clock reading is 1us, so a phase lasts until the next reading.
	runTick(pc, OutcomeMove, 0, PhaseSteer, PhaseMove, PhaseCollide, PhasePersist)
	runTick(pc, OutcomeMove, 0, PhaseSteer, PhaseMove, PhaseCollide, PhasePersist)

	s := pc.Stats()
	if s.Ticks != 2 {
		t.Fatalf("Ticks = %d, want 2", s.Ticks)
	}
	if s.AvgTick != 5*time.Microsecond {
		t.Errorf("AvgTick = %v, want 5us", s.AvgTick)
	}
	for _, ph := range []Phase{PhaseSteer, PhaseMove, PhaseCollide, PhasePersist} {
		if s.PhasePct[ph] != 20 {
			t.Errorf("%s = %.1f%%, want 20%%", ph, s.PhasePct[ph])
		}
	}
	if s.PhasePct[PhaseSpawn] != 0 {
		t.Errorf("spawn = %.1f%%, want 0", s.PhasePct[PhaseSpawn])
	}
}

func TestPerfCollectorOutcomes(t *testing.T) {
	pc := newTestPerf(10)

	runTick(pc, OutcomeMove, 0, PhaseMove)
	runTick(pc, OutcomeEat, 3, PhaseMove, PhaseSpawn)
	runTick(pc, OutcomeReset, 3, PhaseMove, PhaseCollide, PhaseSpawn)
	runTick(pc, OutcomeMove, 0, PhaseMove)

	s := pc.Stats()
	want := [outcomeCount]int{2, 1, 1}
	if s.Outcomes != want {
		t.Errorf("Outcomes = %v, want %v", s.Outcomes, want)
	}
	if s.OutcomeAvg[OutcomeReset] <= s.OutcomeAvg[OutcomeMove] {
		t.Errorf("reset tick %v not slower than move tick %v",
			s.OutcomeAvg[OutcomeReset], s.OutcomeAvg[OutcomeMove])
	}
	if s.PlacedPerTick != 1.5 {
		t.Errorf("PlacedPerTick = %v, want 1.5", s.PlacedPerTick)
	}

	row := s.ToCSV(4)
	if row.WindowEnd != 4 || row.EatTicks != 1 || row.ResetTicks != 1 || row.MoveTicks != 2 {
		t.Errorf("ToCSV() = %+v", row)
	}
}

func TestPerfCollectorRollingWindow(t *testing.T) {
	pc := newTestPerf(3)

	for i := 0; i < 5; i++ {
		runTick(pc, OutcomeEat, 0, PhaseMove)
	}
	runTick(pc, OutcomeReset, 0, PhaseMove)

	s := pc.Stats()
	if s.Ticks != 3 {
		t.Errorf("Ticks = %d, want 3", s.Ticks)
	}
	if s.Outcomes[OutcomeEat] != 2 || s.Outcomes[OutcomeReset] != 1 {
		t.Errorf("Outcomes = %v, want 2 eat and 1 reset", s.Outcomes)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	s := NewPerfCollector(10).Stats()
	if s.Ticks != 0 || s.AvgTick != 0 || s.PlacedPerTick != 0 {
		t.Errorf("Stats() = %+v, want zero", s)
	}
}
