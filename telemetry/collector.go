// Package telemetry tracks sign field statistics and frame timing.
package telemetry

import "github.com/pthm-cable/folio/systems"

// Collector accumulates frame events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	events systems.FrameStats
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulated seconds
// dt: seconds per frame (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// Record adds one frame's events to the current window.
func (c *Collector) Record(frame systems.FrameStats) {
	c.events.Add(frame)
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// signs and capacity are the population at window end; speeds are sampled
// from every live sign.
func (c *Collector) Flush(currentTick int32, signs, capacity int, speeds []float64) WindowStats {
	var spawnRate float64
	if c.events.Collisions > 0 {
		spawnRate = float64(c.events.Spawns) / float64(c.events.Collisions)
	}

	mean, std, p10, p50, p90 := ComputeSpeedStats(speeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Signs: signs,
		Cap:   capacity,

		Spawns:             c.events.Spawns,
		Collisions:         c.events.Collisions,
		SuppressedCooldown: c.events.SuppressedCooldown,
		SuppressedCap:      c.events.SuppressedCap,
		EdgeBounces:        c.events.EdgeBounces,
		ObstacleBounces:    c.events.ObstacleBounces,
		SpawnRate:          spawnRate,

		SpeedMean: mean,
		SpeedStd:  std,
		SpeedP10:  p10,
		SpeedP50:  p50,
		SpeedP90:  p90,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.events = systems.FrameStats{}

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
