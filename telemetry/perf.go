package telemetry

import (
	"log/slog"
	"time"
)

// Phase is a timed section of a tick.
type Phase uint8

const (
	PhaseSteer Phase = iota
	PhaseMove
	PhaseCollide
	PhaseSpawn
	PhasePersist
	phaseCount
)

var phaseNames = [phaseCount]string{"steer", "move", "collide", "spawn", "persist"}

func (p Phase) String() string {
	if p < phaseCount {
		return phaseNames[p]
	}
	return "unknown"
}

// Outcome classifies a tick by what the head ran into.
type Outcome uint8

const (
	OutcomeMove  Outcome = iota // plain move, nothing eaten
	OutcomeEat                  // apple or bad apple eaten, run goes on
	OutcomeReset                // run ended and the snake respawned
	outcomeCount
)

var outcomeNames = [outcomeCount]string{"move", "eat", "reset"}

func (o Outcome) String() string {
	if o < outcomeCount {
		return outcomeNames[o]
	}
	return "unknown"
}

type tickSample struct {
	total   time.Duration
	phases  [phaseCount]time.Duration
	outcome Outcome
	placed  int
}

// PerfCollector times ticks over a rolling window, split by phase and
// by outcome.
type PerfCollector struct {
	window []tickSample
	next   int
	filled int

	cur       tickSample
	tickStart time.Time
	mark      time.Time
	phase     Phase
	open      bool

	now func() time.Time
}

// NewPerfCollector creates a collector averaging over the last size ticks.
func NewPerfCollector(size int) *PerfCollector {
	if size < 1 {
		size = 60
	}
	return &PerfCollector{
		window: make([]tickSample, size),
		now:    time.Now,
	}
}

// StartTick begins timing a tick.
func (p *PerfCollector) StartTick() {
	p.cur = tickSample{}
	p.tickStart = p.now()
	p.open = false
}

// Enter closes the running phase, if any, and starts timing ph.
func (p *PerfCollector) Enter(ph Phase) {
	t := p.now()
	p.closePhase(t)
	p.phase, p.mark, p.open = ph, t, true
}

// Placed counts items put on the field during the current tick.
func (p *PerfCollector) Placed(n int) {
	p.cur.placed += n
}

// EndTick closes the tick and stores it under outcome o.
func (p *PerfCollector) EndTick(o Outcome) {
	t := p.now()
	p.closePhase(t)
	p.cur.total = t.Sub(p.tickStart)
	p.cur.outcome = o

	p.window[p.next] = p.cur
	p.next = (p.next + 1) % len(p.window)
	if p.filled < len(p.window) {
		p.filled++
	}
}

func (p *PerfCollector) closePhase(t time.Time) {
	if p.open {
		p.cur.phases[p.phase] += t.Sub(p.mark)
		p.open = false
	}
}

// PerfStats summarises the ticks in the window.
type PerfStats struct {
	Ticks   int
	AvgTick time.Duration
	MaxTick time.Duration

	// Share of total tick time spent in each phase, in percent.
	PhasePct [phaseCount]float64

	Outcomes   [outcomeCount]int
	OutcomeAvg [outcomeCount]time.Duration

	PlacedPerTick float64
}

// Stats aggregates the current window.
func (p *PerfCollector) Stats() PerfStats {
	var s PerfStats
	if p.filled == 0 {
		return s
	}

	var total time.Duration
	var phases [phaseCount]time.Duration
	var byOutcome [outcomeCount]time.Duration
	placed := 0
	for _, ts := range p.window[:p.filled] {
		total += ts.total
		if ts.total > s.MaxTick {
			s.MaxTick = ts.total
		}
		for i, d := range ts.phases {
			phases[i] += d
		}
		s.Outcomes[ts.outcome]++
		byOutcome[ts.outcome] += ts.total
		placed += ts.placed
	}

	s.Ticks = p.filled
	s.AvgTick = total / time.Duration(p.filled)
	s.PlacedPerTick = float64(placed) / float64(p.filled)
	for i, d := range phases {
		if total > 0 {
			s.PhasePct[i] = float64(d) / float64(total) * 100
		}
	}
	for i, n := range s.Outcomes {
		if n > 0 {
			s.OutcomeAvg[i] = byOutcome[i] / time.Duration(n)
		}
	}
	return s
}

// LogStats logs the window at info level.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("ticks", s.Ticks),
		slog.Int64("avg_tick_us", s.AvgTick.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTick.Microseconds()),
		slog.Float64("placed_per_tick", s.PlacedPerTick),
	}
	for ph := Phase(0); ph < phaseCount; ph++ {
		if pct := s.PhasePct[ph]; pct > 0.1 {
			attrs = append(attrs, slog.Float64(ph.String()+"_pct", float64(int(pct*10))/10))
		}
	}
	for o := Outcome(0); o < outcomeCount; o++ {
		if s.Outcomes[o] > 0 {
			attrs = append(attrs, slog.Int(o.String()+"_ticks", s.Outcomes[o]))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	WindowEnd     int32   `csv:"window_end"`
	Ticks         int     `csv:"ticks"`
	AvgTickUS     float64 `csv:"avg_tick_us"`
	MaxTickUS     float64 `csv:"max_tick_us"`
	SteerPct      float64 `csv:"steer_pct"`
	MovePct       float64 `csv:"move_pct"`
	CollidePct    float64 `csv:"collide_pct"`
	SpawnPct      float64 `csv:"spawn_pct"`
	PersistPct    float64 `csv:"persist_pct"`
	MoveTicks     int     `csv:"move_ticks"`
	EatTicks      int     `csv:"eat_ticks"`
	ResetTicks    int     `csv:"reset_ticks"`
	AvgEatUS      float64 `csv:"avg_eat_us"`
	AvgResetUS    float64 `csv:"avg_reset_us"`
	PlacedPerTick float64 `csv:"placed_per_tick"`
}

func micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}

// ToCSV flattens the stats for the window ending at windowEnd.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:     windowEnd,
		Ticks:         s.Ticks,
		AvgTickUS:     micros(s.AvgTick),
		MaxTickUS:     micros(s.MaxTick),
		SteerPct:      s.PhasePct[PhaseSteer],
		MovePct:       s.PhasePct[PhaseMove],
		CollidePct:    s.PhasePct[PhaseCollide],
		SpawnPct:      s.PhasePct[PhaseSpawn],
		PersistPct:    s.PhasePct[PhasePersist],
		MoveTicks:     s.Outcomes[OutcomeMove],
		EatTicks:      s.Outcomes[OutcomeEat],
		ResetTicks:    s.Outcomes[OutcomeReset],
		AvgEatUS:      micros(s.OutcomeAvg[OutcomeEat]),
		AvgResetUS:    micros(s.OutcomeAvg[OutcomeReset]),
		PlacedPerTick: s.PlacedPerTick,
	}
}
