package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/systems"
	"github.com/pthm-cable/folio/telemetry"
)

// Update handles input and advances the sign field by one frame.
// The frame timestamp is the window clock in milliseconds.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}
	g.step(rl.GetTime() * 1000)
}

// UpdateHeadless advances the sign field without a window. The clock is
// simulated: frame n happens at n·FrameMS milliseconds.
func (g *Game) UpdateHeadless() {
	frameMS := g.config().Derived.FrameMS
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(float64(g.tick) * frameMS)
	}
}

// step runs one frame: snapshot the page obstacles, move the signs,
// then account for what happened.
func (g *Game) step(now float64) {
	g.frameTimer.Begin()

	g.frameTimer.Enter(telemetry.PhaseObstacles)
	rects := g.layout.Obstacles()

	g.frameTimer.Enter(telemetry.PhaseSigns)
	frame := g.field.Update(now, g.bounds, func() []systems.Rect { return rects })

	g.frameTimer.Enter(telemetry.PhaseTelemetry)
	g.collector.Record(frame)
	g.tick++
	g.now = now
	g.flushTelemetry()

	g.frameTimer.End()
}
