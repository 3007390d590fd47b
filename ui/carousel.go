package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/carousel"
	"github.com/pthm-cable/folio/page"
	"github.com/pthm-cable/folio/systems"
)

// CarouselView draws the work overlay above the page.
type CarouselView struct {
	renderer *Renderer
	textures *TextureCache
}

// NewCarouselView creates an overlay view sharing the page's textures.
func NewCarouselView(textures *TextureCache) *CarouselView {
	return &CarouselView{renderer: NewRenderer(), textures: textures}
}

// Draw renders the overlay for the given slot. The previous, next and close
// controls are raygui buttons; the control activated this frame is returned,
// or a TargetNone target.
func (v *CarouselView) Draw(o page.Overlay, slot carousel.Slot) carousel.Target {
	th := v.renderer.Theme

	rl.DrawRectangleRec(rect(o.Backdrop.X, o.Backdrop.Y, o.Backdrop.Width, o.Backdrop.Height), th.Backdrop)

	if tex, ok := v.textures.Get(slot.Src); ok {
		drawTextureFit(tex, o.Image)
	} else {
		drawPlaceholder(o.Image, slot.Alt, th)
	}
	if slot.Alt != "" {
		w := rl.MeasureText(slot.Alt, th.BodyFontSize)
		rl.DrawText(slot.Alt, int32(o.Image.X+o.Image.Width/2)-w/2, int32(o.Image.Bottom())+8, th.BodyFontSize, rl.RayWhite)
	}

	target := carousel.Target{Kind: carousel.TargetNone}
	if button(o.Previous, "<") {
		target.Kind = carousel.TargetPrevious
	}
	if button(o.Next, ">") {
		target.Kind = carousel.TargetNext
	}
	if button(o.Close, "X") {
		target.Kind = carousel.TargetClose
	}
	return target
}

func button(r systems.Rect, label string) bool {
	return gui.Button(rect(r.X, r.Y, r.Width, r.Height), label)
}
