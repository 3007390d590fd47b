package telemetry

import (
	"log/slog"
	"time"
)

// Phase is one timed section of a frame step.
type Phase int

const (
	PhaseObstacles Phase = iota // snapshot page blocks
	PhaseSigns                  // move, bounce and duplicate signs
	PhaseTelemetry              // record and flush window stats
	phaseCount
)

var phaseIDs = [phaseCount]string{"obstacles", "signs", "telemetry"}

// String returns the phase ID, which is also its system registry ID.
func (p Phase) String() string {
	if p < 0 || p >= phaseCount {
		return "unknown"
	}
	return phaseIDs[p]
}

// stepSample is the timing of one frame step.
type stepSample struct {
	total  time.Duration
	phases [phaseCount]time.Duration
}

// FrameTimer keeps the last N step timings in a ring and measures the
// interval between drawn frames.
type FrameTimer struct {
	ring  []stepSample
	next  int
	count int

	cur        stepSample
	stepStart  time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool

	lastDraw time.Time
	drawGap  time.Duration
}

// NewFrameTimer creates a timer averaging over window steps.
func NewFrameTimer(window int) *FrameTimer {
	if window < 1 {
		window = 60
	}
	return &FrameTimer{ring: make([]stepSample, window)}
}

// Begin starts timing a step.
func (t *FrameTimer) Begin() {
	t.stepStart = time.Now()
	t.cur = stepSample{}
	t.inPhase = false
}

// Enter closes the running phase, if any, and starts p.
func (t *FrameTimer) Enter(p Phase) {
	now := time.Now()
	t.closePhase(now)
	t.phase = p
	t.phaseStart = now
	t.inPhase = true
}

func (t *FrameTimer) closePhase(now time.Time) {
	if t.inPhase {
		t.cur.phases[t.phase] += now.Sub(t.phaseStart)
	}
}

// End closes the step and stores it in the ring.
func (t *FrameTimer) End() {
	now := time.Now()
	t.closePhase(now)
	t.inPhase = false
	t.cur.total = now.Sub(t.stepStart)

	t.ring[t.next] = t.cur
	t.next = (t.next + 1) % len(t.ring)
	if t.count < len(t.ring) {
		t.count++
	}
}

// MarkFrame records that a frame was drawn. Windowed mode only.
func (t *FrameTimer) MarkFrame() {
	now := time.Now()
	if !t.lastDraw.IsZero() {
		t.drawGap = now.Sub(t.lastDraw)
	}
	t.lastDraw = now
}

// FrameSummary aggregates the steps currently in the ring.
type FrameSummary struct {
	Mean, Min, Max time.Duration
	Phases         [phaseCount]time.Duration // mean per phase
	Share          [phaseCount]float64       // percent of Mean
	StepsPerSec    float64

	FrameTime time.Duration
	FPS       float64
}

// Summary computes the aggregate over the ring. An empty ring yields only
// the draw timing.
func (t *FrameTimer) Summary() FrameSummary {
	s := FrameSummary{FrameTime: t.drawGap}
	if t.drawGap > 0 {
		s.FPS = float64(time.Second) / float64(t.drawGap)
	}
	if t.count == 0 {
		return s
	}

	var sum time.Duration
	var phaseSum [phaseCount]time.Duration
	for i, smp := range t.ring[:t.count] {
		sum += smp.total
		if i == 0 || smp.total < s.Min {
			s.Min = smp.total
		}
		s.Max = max(s.Max, smp.total)
		for p := range phaseSum {
			phaseSum[p] += smp.phases[p]
		}
	}

	n := time.Duration(t.count)
	s.Mean = sum / n
	for p := range phaseSum {
		s.Phases[p] = phaseSum[p] / n
		if s.Mean > 0 {
			s.Share[p] = float64(s.Phases[p]) / float64(s.Mean) * 100
		}
	}
	if s.Mean > 0 {
		s.StepsPerSec = float64(time.Second) / float64(s.Mean)
	}
	return s
}

// ByID returns the mean phase times keyed by phase ID.
func (s FrameSummary) ByID() map[string]time.Duration {
	m := make(map[string]time.Duration, phaseCount)
	for p, d := range s.Phases {
		m[Phase(p).String()] = d
	}
	return m
}

// LogValue implements slog.LogValuer.
func (s FrameSummary) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("mean_us", s.Mean.Microseconds()),
		slog.Int64("min_us", s.Min.Microseconds()),
		slog.Int64("max_us", s.Max.Microseconds()),
		slog.Int("steps_per_sec", int(s.StepsPerSec)),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}
	for p, pct := range s.Share {
		attrs = append(attrs, slog.Float64(Phase(p).String()+"_pct", float64(int(pct*10))/10))
	}
	return slog.GroupValue(attrs...)
}

// LogStats logs the summary at info level.
func (s FrameSummary) LogStats() {
	slog.Info("frame timing", "perf", s)
}

// frameRow is one line of perf.csv.
type frameRow struct {
	WindowEnd    int32   `csv:"window_end"`
	MeanUS       int64   `csv:"mean_us"`
	MinUS        int64   `csv:"min_us"`
	MaxUS        int64   `csv:"max_us"`
	StepsPerSec  float64 `csv:"steps_per_sec"`
	FPS          float64 `csv:"fps"`
	ObstaclesPct float64 `csv:"obstacles_pct"`
	SignsPct     float64 `csv:"signs_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

func (s FrameSummary) row(windowEnd int32) frameRow {
	return frameRow{
		WindowEnd:    windowEnd,
		MeanUS:       s.Mean.Microseconds(),
		MinUS:        s.Min.Microseconds(),
		MaxUS:        s.Max.Microseconds(),
		StepsPerSec:  s.StepsPerSec,
		FPS:          s.FPS,
		ObstaclesPct: s.Share[PhaseObstacles],
		SignsPct:     s.Share[PhaseSigns],
		TelemetryPct: s.Share[PhaseTelemetry],
	}
}
