package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated sign field statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	Signs int `csv:"signs"`
	Cap   int `csv:"cap"`

	// Events during window
	Spawns             int     `csv:"spawns"`
	Collisions         int     `csv:"collisions"`
	SuppressedCooldown int     `csv:"suppressed_cooldown"`
	SuppressedCap      int     `csv:"suppressed_cap"`
	EdgeBounces        int     `csv:"edge_bounces"`
	ObstacleBounces    int     `csv:"obstacle_bounces"`
	SpawnRate          float64 `csv:"spawn_rate"` // spawns per collision

	// Speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeSpeedStats calculates mean, std, and percentiles from speed values.
// Signs only ever swap or reflect velocities, so the spread stays near zero
// unless something is wrong.
func ComputeSpeedStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	if n == 1 {
		mean = values[0]
	} else {
		mean, std = stat.MeanStdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("signs", s.Signs),
		slog.Int("cap", s.Cap),
		slog.Int("spawns", s.Spawns),
		slog.Int("collisions", s.Collisions),
		slog.Int("suppressed_cooldown", s.SuppressedCooldown),
		slog.Int("suppressed_cap", s.SuppressedCap),
		slog.Int("edge_bounces", s.EdgeBounces),
		slog.Int("obstacle_bounces", s.ObstacleBounces),
		slog.Float64("spawn_rate", s.SpawnRate),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p50", s.SpeedP50),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"signs", s.Signs,
		"cap", s.Cap,
		"spawns", s.Spawns,
		"collisions", s.Collisions,
		"suppressed_cooldown", s.SuppressedCooldown,
		"suppressed_cap", s.SuppressedCap,
		"edge_bounces", s.EdgeBounces,
		"obstacle_bounces", s.ObstacleBounces,
		"spawn_rate", s.SpawnRate,
		"speed_mean", s.SpeedMean,
		"speed_std", s.SpeedStd,
		"speed_p10", s.SpeedP10,
		"speed_p50", s.SpeedP50,
		"speed_p90", s.SpeedP90,
	)
}
