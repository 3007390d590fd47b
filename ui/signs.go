package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/components"
	"github.com/pthm-cable/folio/systems"
)

// SignLayer draws the sign sprites. It sits above the page and below the
// overlay, and never takes input.
type SignLayer struct {
	renderer *Renderer
	glyph    string
}

// NewSignLayer creates a layer that draws every sign as glyph.
func NewSignLayer(glyph string) *SignLayer {
	return &SignLayer{renderer: NewRenderer(), glyph: glyph}
}

// Draw renders every sign at its current position. With boxes set, each
// sign's collision box is outlined, tinted while the sign is cooling.
func (s *SignLayer) Draw(field *systems.SignField, now float64, boxes bool) {
	th := s.renderer.Theme
	p := field.Params()
	fontSize := int32(p.Size)

	field.Each(func(_ int, pos *components.Position, _ *components.Velocity, sign *components.Sign) {
		rl.DrawText(s.glyph, int32(pos.X), int32(pos.Y), fontSize, th.SignColor)
		if !boxes {
			return
		}
		color := th.ThumbBorder
		if sign.Cooling(now, p.CooldownMS) {
			color = th.SignCooling
		}
		rl.DrawRectangleLinesEx(rect(pos.X, pos.Y, p.Size, p.Size), 1, color)
	})
}

// DrawObstacles outlines the obstacle boxes the signs bounce off.
func DrawObstacles(rects []systems.Rect) {
	for _, r := range rects {
		rl.DrawRectangleLinesEx(rect(r.X, r.Y, r.Width, r.Height), 1, rl.Red)
	}
}
