package page

import (
	"testing"

	"github.com/pthm-cable/folio/carousel"
	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/systems"
)

func testPageConfig() config.PageConfig {
	return config.PageConfig{Title: "Work", ThumbSize: 160, Margin: 40}
}

func TestNewLayoutBlocks(t *testing.T) {
	l := NewLayout(1280, 800, 5, testPageConfig())

	// header + intro + 5 thumbs + footer
	if len(l.Blocks) != 8 {
		t.Fatalf("got %d blocks, want 8", len(l.Blocks))
	}
	if got := len(l.Obstacles()); got != 8 {
		t.Errorf("Obstacles() returned %d rects, want 8", got)
	}

	thumbs := 0
	for _, b := range l.Blocks {
		if b.Kind == BlockThumb {
			if b.Thumb != thumbs {
				t.Errorf("thumb block %d has index %d", thumbs, b.Thumb)
			}
			thumbs++
		}
		r := b.Rect
		if r.Left() < 0 || r.Right() > 1280 || r.Top() < 0 || r.Bottom() > 800 {
			t.Errorf("block %+v leaves the viewport", b)
		}
	}
	if thumbs != 5 {
		t.Errorf("got %d thumbs, want 5", thumbs)
	}
}

func TestObstaclesIsSnapshot(t *testing.T) {
	l := NewLayout(1280, 800, 1, testPageConfig())
	rects := l.Obstacles()
	rects[0].X = -999
	if l.Blocks[0].Rect.X == -999 {
		t.Error("Obstacles() aliases layout storage")
	}
}

func TestThumbsWrap(t *testing.T) {
	// 400px wide with 40px margins leaves room for 1 thumb per row.
	l := NewLayout(400, 1200, 3, testPageConfig())
	var ys []float64
	for _, b := range l.Blocks {
		if b.Kind == BlockThumb {
			ys = append(ys, b.Rect.Y)
		}
	}
	if len(ys) != 3 || !(ys[0] < ys[1] && ys[1] < ys[2]) {
		t.Errorf("thumb rows = %v, want 3 stacked rows", ys)
	}
}

func TestHit(t *testing.T) {
	l := NewLayout(1280, 800, 3, testPageConfig())

	var second Block
	for _, b := range l.Blocks {
		if b.Kind == BlockThumb && b.Thumb == 1 {
			second = b
		}
	}
	cx := second.Rect.X + second.Rect.Width/2
	cy := second.Rect.Y + second.Rect.Height/2
	o := l.Overlay

	tests := []struct {
		name string
		x, y float64
		open bool
		want carousel.Target
	}{
		{"thumb while closed", cx, cy, false, carousel.Target{Kind: carousel.TargetEntry, Index: 1}},
		{"empty page while closed", 5, 5, false, carousel.Target{Kind: carousel.TargetNone}},
		{"thumb while open hits overlay", 5, 5, true, carousel.Target{Kind: carousel.TargetBackdrop}},
		{"previous arrow", o.Previous.X + 1, o.Previous.Y + 1, true, carousel.Target{Kind: carousel.TargetPrevious}},
		{"next arrow", o.Next.X + 1, o.Next.Y + 1, true, carousel.Target{Kind: carousel.TargetNext}},
		{"close", o.Close.X + 1, o.Close.Y + 1, true, carousel.Target{Kind: carousel.TargetClose}},
		{"image", 640, 400, true, carousel.Target{Kind: carousel.TargetImage}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Hit(tt.x, tt.y, tt.open); got != tt.want {
				t.Errorf("Hit(%v, %v, %v) = %+v, want %+v", tt.x, tt.y, tt.open, got, tt.want)
			}
		})
	}
}

func TestFit(t *testing.T) {
	box := systems.Rect{X: 100, Y: 50, Width: 400, Height: 200}

	tests := []struct {
		name string
		w, h float64
		want systems.Rect
	}{
		{"wide image fills width", 800, 200, systems.Rect{X: 100, Y: 100, Width: 400, Height: 100}},
		{"tall image fills height", 100, 400, systems.Rect{X: 275, Y: 50, Width: 50, Height: 200}},
		{"same aspect fills box", 200, 100, box},
		{"zero size returns box", 0, 100, box},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fit(box, tt.w, tt.h); got != tt.want {
				t.Errorf("Fit(%v, %v) = %+v, want %+v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}
