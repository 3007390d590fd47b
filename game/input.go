package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/carousel"
	"github.com/pthm-cable/folio/page"
	"github.com/pthm-cable/folio/systems"
)

// carouselKeys maps raylib keys to carousel keys.
var carouselKeys = []struct {
	raylib int32
	key    carousel.Key
}{
	{rl.KeyLeft, carousel.KeyLeft},
	{rl.KeyRight, carousel.KeyRight},
	{rl.KeyEscape, carousel.KeyEscape},
}

// handleInput processes keyboard and mouse input for one frame.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.controlsPanel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.TogglePause()
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		g.overlays.HandleKeyPress(key)
	}

	for _, k := range carouselKeys {
		if rl.IsKeyPressed(k.raylib) {
			g.Key(k.key)
		}
	}

	// Overlay buttons clicked during the last Draw.
	if g.guiTarget.Kind != carousel.TargetNone {
		g.carousel.Click(g.guiTarget)
		g.guiTarget = carousel.Target{Kind: carousel.TargetNone}
	}

	mouse := rl.GetMousePosition()
	x, y := float64(mouse.X), float64(mouse.Y)
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		wasOpen := g.carousel.IsOpen()
		g.Click(x, y)
		// The release of the press that opened the overlay must not
		// also hit a control under the pointer.
		g.guiArmed = wasOpen || !g.carousel.IsOpen()
	}
	g.updateCursor(x, y)
	g.syncExitKey()
}

// Click dispatches a pointer press at (x, y) to the topmost target and
// reports whether the page consumed it. While a window is open the
// overlay's previous, next and close controls are raygui buttons and fire
// on release from Draw, so presses on them are swallowed here.
func (g *Game) Click(x, y float64) bool {
	t := g.layout.Hit(x, y, g.carousel.IsOpen())
	if !g.headless && isOverlayControl(t.Kind) {
		return true
	}
	return g.carousel.Click(t)
}

// Key routes a navigation key to the carousel.
func (g *Game) Key(k carousel.Key) bool {
	return g.carousel.Key(k)
}

// TogglePause stops or resumes the sign field.
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

func isOverlayControl(k carousel.TargetKind) bool {
	return k == carousel.TargetPrevious || k == carousel.TargetNext || k == carousel.TargetClose
}

// updateCursor shows a pointer over thumbnails the carousel can open.
func (g *Game) updateCursor(x, y float64) {
	g.hovered = -1
	if g.carousel != nil && !g.carousel.IsOpen() {
		if i, ok := g.layout.HitThumb(x, y); ok {
			g.hovered = i
		}
	}

	if g.hovered >= 0 {
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

// syncExitKey disables Escape as the window exit key while the overlay
// is open, so Escape closes the overlay instead of the window.
func (g *Game) syncExitKey() {
	if g.carousel.IsOpen() {
		rl.SetExitKey(rl.KeyNull)
	} else {
		rl.SetExitKey(rl.KeyEscape)
	}
}

// handleResize checks for window resize and relays out the page.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float64(rl.GetScreenWidth())
	h := float64(rl.GetScreenHeight())
	if w == g.bounds.Width && h == g.bounds.Height {
		return
	}
	g.resize(w, h)
}

// resize updates the sign bounds and the page layout for a new viewport.
// The carousel keeps the mode it was built with.
func (g *Game) resize(w, h float64) {
	g.bounds = systems.Bounds{Width: w, Height: h}
	g.layout = page.NewLayout(w, h, len(g.entries), g.config().Page)
}
