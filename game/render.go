package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/carousel"
	"github.com/pthm-cable/folio/ui"
)

// controlsLegend is drawn along the bottom edge.
const controlsLegend = "Space: pause | F1: layers | F11: fullscreen"

// Draw renders the page, then the sign layer, then the overlay.
func (g *Game) Draw() {
	g.frameTimer.MarkFrame()

	rl.BeginDrawing()

	g.pageView.Draw(g.layout, g.config().Page, g.entries, g.hovered)

	if g.overlays.IsEnabled(ui.OverlayObstacles) {
		ui.DrawObstacles(g.layout.Obstacles())
	}
	g.signLayer.Draw(g.field, g.now, g.overlays.IsEnabled(ui.OverlaySignBoxes))

	g.drawPanels()

	if g.carousel.IsOpen() {
		target := g.carouselView.Draw(g.layout.Overlay, g.carousel.Slot())
		if g.guiArmed && target.Kind != carousel.TargetNone {
			g.guiTarget = target
		}
	}

	rl.EndDrawing()
}

// drawPanels renders the HUD and whichever debug panels are enabled.
func (g *Game) drawPanels() {
	w, h := int32(g.bounds.Width), int32(g.bounds.Height)

	if g.overlays.IsEnabled(ui.OverlayHUD) {
		g.hud.Draw(ui.HUDData{
			Signs:        g.field.Count(),
			Cap:          g.field.Cap(),
			Tick:         g.tick,
			FPS:          rl.GetFPS(),
			Paused:       g.paused,
			ScreenWidth:  w,
			ScreenHeight: h,
		})
		g.hud.DrawControls(h, controlsLegend)
	}

	if g.overlays.IsEnabled(ui.OverlayQuickStats) {
		g.quickStats.SetPosition(w-210, 10)
		g.quickStats.Draw(ui.QuickStatsData{
			WindowSec:          float64(g.lastStats.WindowEndTick-g.lastStats.WindowStartTick) * g.config().Derived.DT,
			Collisions:         g.lastStats.Collisions,
			Spawns:             g.lastStats.Spawns,
			SuppressedCooldown: g.lastStats.SuppressedCooldown,
			SuppressedCap:      g.lastStats.SuppressedCap,
			SpeedMean:          g.lastStats.SpeedMean,
		})
	}

	if g.overlays.IsEnabled(ui.OverlayPerf) {
		g.perfPanel.SetPosition(w-270, 10)
		g.perfPanel.Draw(g.perfPanelData())
	}

	g.controlsPanel.Draw(g.overlays)
}

func (g *Game) perfPanelData() ui.PerfPanelData {
	frames := g.frameTimer.Summary()
	return ui.PerfPanelData{
		SystemTimes: frames.ByID(),
		Total:       frames.Mean,
		Registry:    g.registry,
	}
}
