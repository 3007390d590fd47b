// Package page lays out the portfolio page and answers hit tests against it.
package page

import (
	"github.com/pthm-cable/folio/carousel"
	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/systems"
)

// BlockKind identifies what a page block holds.
type BlockKind int

const (
	BlockHeader BlockKind = iota
	BlockIntro
	BlockThumb
	BlockFooter
)

// Block is one laid-out element of the page.
type Block struct {
	Kind  BlockKind
	Rect  systems.Rect
	Thumb int // gallery index for BlockThumb, -1 otherwise
}

// Overlay holds the carousel control rectangles.
type Overlay struct {
	Backdrop systems.Rect
	Previous systems.Rect
	Next     systems.Rect
	Close    systems.Rect
	Image    systems.Rect
}

// Layout control sizes, matching the arrow artwork.
const (
	arrowWidth   = 80
	arrowHeight  = 60
	closeSize    = 48
	headerHeight = 56
	introHeight  = 36
	footerHeight = 28
	gap          = 20
)

// Layout is the page geometry for one viewport size.
type Layout struct {
	Width, Height float64
	Blocks        []Block
	Overlay       Overlay
}

// NewLayout lays out the page for a viewport and a number of gallery thumbnails.
func NewLayout(width, height float64, thumbs int, cfg config.PageConfig) *Layout {
	l := &Layout{Width: width, Height: height}
	m := cfg.Margin
	inner := width - 2*m

	header := systems.Rect{X: m, Y: m, Width: inner, Height: headerHeight}
	intro := systems.Rect{X: m, Y: header.Bottom() + gap, Width: inner, Height: introHeight}
	l.Blocks = append(l.Blocks,
		Block{Kind: BlockHeader, Rect: header, Thumb: -1},
		Block{Kind: BlockIntro, Rect: intro, Thumb: -1},
	)

	size := cfg.ThumbSize
	perRow := int((inner + gap) / (size + gap))
	if perRow < 1 {
		perRow = 1
	}
	top := intro.Bottom() + gap*2
	for i := 0; i < thumbs; i++ {
		col, row := i%perRow, i/perRow
		l.Blocks = append(l.Blocks, Block{
			Kind: BlockThumb,
			Rect: systems.Rect{
				X:      m + float64(col)*(size+gap),
				Y:      top + float64(row)*(size+gap),
				Width:  size,
				Height: size,
			},
			Thumb: i,
		})
	}

	l.Blocks = append(l.Blocks, Block{
		Kind:  BlockFooter,
		Rect:  systems.Rect{X: m, Y: height - m - footerHeight, Width: inner, Height: footerHeight},
		Thumb: -1,
	})

	l.Overlay = overlayLayout(width, height, m)
	return l
}

// overlayLayout places the carousel controls: arrows on the sides,
// close in the top-right corner, the image centered between the arrows.
func overlayLayout(width, height, m float64) Overlay {
	midY := height/2 - arrowHeight/2
	imgX := m + arrowWidth + gap
	return Overlay{
		Backdrop: systems.Rect{Width: width, Height: height},
		Previous: systems.Rect{X: m, Y: midY, Width: arrowWidth, Height: arrowHeight},
		Next:     systems.Rect{X: width - m - arrowWidth, Y: midY, Width: arrowWidth, Height: arrowHeight},
		Close:    systems.Rect{X: width - m - closeSize, Y: m, Width: closeSize, Height: closeSize},
		Image:    systems.Rect{X: imgX, Y: m + closeSize, Width: width - 2*imgX, Height: height - 2*(m+closeSize)},
	}
}

// Obstacles returns a fresh snapshot of every block rectangle.
// The sign layer and the carousel overlay are not page blocks.
func (l *Layout) Obstacles() []systems.Rect {
	rects := make([]systems.Rect, len(l.Blocks))
	for i, b := range l.Blocks {
		rects[i] = b.Rect
	}
	return rects
}

// HitThumb returns the gallery index of the thumbnail under (x, y).
func (l *Layout) HitThumb(x, y float64) (int, bool) {
	for _, b := range l.Blocks {
		if b.Kind == BlockThumb && b.Rect.Contains(x, y) {
			return b.Thumb, true
		}
	}
	return -1, false
}

// HitOverlay maps a point on the open overlay to a carousel target.
// Controls win over the image; anything else is the backdrop.
func (l *Layout) HitOverlay(x, y float64) carousel.Target {
	o := l.Overlay
	switch {
	case o.Close.Contains(x, y):
		return carousel.Target{Kind: carousel.TargetClose}
	case o.Previous.Contains(x, y):
		return carousel.Target{Kind: carousel.TargetPrevious}
	case o.Next.Contains(x, y):
		return carousel.Target{Kind: carousel.TargetNext}
	case o.Image.Contains(x, y):
		return carousel.Target{Kind: carousel.TargetImage}
	}
	return carousel.Target{Kind: carousel.TargetBackdrop}
}

// Hit resolves the topmost click target at (x, y). The open overlay covers
// the whole page; the sign layer never receives input.
func (l *Layout) Hit(x, y float64, overlayOpen bool) carousel.Target {
	if overlayOpen {
		return l.HitOverlay(x, y)
	}
	if i, ok := l.HitThumb(x, y); ok {
		return carousel.Target{Kind: carousel.TargetEntry, Index: i}
	}
	return carousel.Target{Kind: carousel.TargetNone}
}

// Fit scales a w×h image to the largest size that fits inside box while
// keeping its aspect ratio, centered in box. Degenerate sizes yield box.
func Fit(box systems.Rect, w, h float64) systems.Rect {
	if w <= 0 || h <= 0 {
		return box
	}
	scale := min(box.Width/w, box.Height/h)
	fw, fh := w*scale, h*scale
	return systems.Rect{
		X:      box.X + (box.Width-fw)/2,
		Y:      box.Y + (box.Height-fh)/2,
		Width:  fw,
		Height: fh,
	}
}
