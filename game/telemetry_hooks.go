package game

import "log/slog"

// flushTelemetry checks if the stats window should be flushed and emits it.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	speeds := g.field.SpeedsInto(make([]float64, 0, g.field.Count()))
	stats := g.collector.Flush(g.tick, g.field.Count(), g.field.Cap(), speeds)
	frames := g.frameTimer.Summary()
	g.lastStats = stats

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		frames.LogStats()
	}

	if err := g.recorder.RecordWindow(stats, frames); err != nil {
		slog.Error("failed to record telemetry", "error", err)
	}
}
