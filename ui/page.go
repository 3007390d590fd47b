package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/carousel"
	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/page"
	"github.com/pthm-cable/folio/systems"
)

// PageView draws the static page blocks.
type PageView struct {
	renderer *Renderer
	textures *TextureCache
}

// NewPageView creates a page view that pulls thumbnails from textures.
func NewPageView(textures *TextureCache) *PageView {
	return &PageView{renderer: NewRenderer(), textures: textures}
}

// Draw renders every block of the layout. hovered is the thumbnail under
// the pointer, or -1.
func (v *PageView) Draw(l *page.Layout, cfg config.PageConfig, entries []carousel.Entry, hovered int) {
	th := v.renderer.Theme
	rl.ClearBackground(th.PageBg)

	for _, b := range l.Blocks {
		x, y := int32(b.Rect.X), int32(b.Rect.Y)
		switch b.Kind {
		case page.BlockHeader:
			rl.DrawText(cfg.Title, x, y+int32(b.Rect.Height)-th.TitleFontSize, th.TitleFontSize, th.PageText)
			rl.DrawLine(x, int32(b.Rect.Bottom()), int32(b.Rect.Right()), int32(b.Rect.Bottom()), th.ThumbBorder)
		case page.BlockIntro:
			rl.DrawText(cfg.Intro, x, y, th.BodyFontSize, th.PageMuted)
		case page.BlockThumb:
			v.drawThumb(b.Rect, entries[b.Thumb], b.Thumb == hovered)
		case page.BlockFooter:
			rl.DrawText("Click a work to enlarge it. Arrow keys browse, Esc closes.", x, y+6, th.FontSize+2, th.PageMuted)
		}
	}
}

func (v *PageView) drawThumb(r systems.Rect, e carousel.Entry, hovered bool) {
	th := v.renderer.Theme
	rl.DrawRectangleRec(rect(r.X, r.Y, r.Width, r.Height), th.ThumbBg)

	if tex, ok := v.textures.Get(e.Src); ok {
		drawTextureFit(tex, r)
	} else {
		drawPlaceholder(r, e.Alt, th)
	}

	border := th.ThumbBorder
	if hovered {
		border = th.ThumbHover
	}
	rl.DrawRectangleLinesEx(rect(r.X, r.Y, r.Width, r.Height), 2, border)
}

// drawTextureFit draws tex letterboxed inside box.
func drawTextureFit(tex rl.Texture2D, box systems.Rect) {
	dst := page.Fit(box, float64(tex.Width), float64(tex.Height))
	rl.DrawTexturePro(
		tex,
		rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)},
		rect(dst.X, dst.Y, dst.Width, dst.Height),
		rl.Vector2{},
		0,
		rl.White,
	)
}

// drawPlaceholder stands in for an image that could not be loaded.
func drawPlaceholder(box systems.Rect, alt string, th Theme) {
	rl.DrawLine(int32(box.X), int32(box.Y), int32(box.Right()), int32(box.Bottom()), th.ThumbBorder)
	rl.DrawLine(int32(box.Right()), int32(box.Y), int32(box.X), int32(box.Bottom()), th.ThumbBorder)
	if alt != "" {
		w := rl.MeasureText(alt, th.FontSize)
		rl.DrawText(alt, int32(box.X+box.Width/2)-w/2, int32(box.Y+box.Height/2)-th.FontSize/2, th.FontSize, th.PageText)
	}
}
