package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/folio/components"
)

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 10, Y: 10, Width: 10, Height: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"inside", Rect{X: 12, Y: 12, Width: 2, Height: 2}, true},
		{"partial", Rect{X: 15, Y: 15, Width: 10, Height: 10}, true},
		{"touching right edge", Rect{X: 20, Y: 10, Width: 5, Height: 5}, true},
		{"touching bottom edge", Rect{X: 10, Y: 20, Width: 5, Height: 5}, true},
		{"left of", Rect{X: 0, Y: 10, Width: 9, Height: 5}, false},
		{"above", Rect{X: 10, Y: 0, Width: 5, Height: 9}, false},
		{"far away", Rect{X: 100, Y: 100, Width: 5, Height: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("symmetric Overlaps(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestBounceEdges(t *testing.T) {
	bounds := Bounds{Width: 100, Height: 80}
	const size = 10

	tests := []struct {
		name     string
		pos      components.Position
		vel      components.Velocity
		wantPos  components.Position
		wantVel  components.Velocity
		wantHits int
	}{
		{"inside", components.Position{X: 50, Y: 40}, components.Velocity{X: 1, Y: 1}, components.Position{X: 50, Y: 40}, components.Velocity{X: 1, Y: 1}, 0},
		{"left", components.Position{X: -3, Y: 40}, components.Velocity{X: -2, Y: 1}, components.Position{X: 0, Y: 40}, components.Velocity{X: 2, Y: 1}, 1},
		{"right", components.Position{X: 95, Y: 40}, components.Velocity{X: 2, Y: 1}, components.Position{X: 90, Y: 40}, components.Velocity{X: -2, Y: 1}, 1},
		{"top", components.Position{X: 50, Y: -1}, components.Velocity{X: 1, Y: -2}, components.Position{X: 50, Y: 0}, components.Velocity{X: 1, Y: 2}, 1},
		{"bottom right corner", components.Position{X: 92, Y: 75}, components.Velocity{X: 2, Y: 2}, components.Position{X: 90, Y: 70}, components.Velocity{X: -2, Y: -2}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, vel := tt.pos, tt.vel
			hits := bounceEdges(&pos, &vel, size, bounds)
			if pos != tt.wantPos || vel != tt.wantVel || hits != tt.wantHits {
				t.Errorf("got pos=%+v vel=%+v hits=%d, want pos=%+v vel=%+v hits=%d",
					pos, vel, hits, tt.wantPos, tt.wantVel, tt.wantHits)
			}
		})
	}
}

func TestBounceObstaclesSingleAxis(t *testing.T) {
	obstacle := Rect{X: 100, Y: 0, Width: 50, Height: 100}

	// Moving right, box now pokes into the obstacle's left side.
	pos := components.Position{X: 95, Y: 20}
	vel := components.Velocity{X: 5, Y: 0}

	flips := bounceObstacles(&pos, &vel, 10, []Rect{obstacle})

	if flips != 1 {
		t.Errorf("flips = %d, want 1", flips)
	}
	if vel.X != -5 || vel.Y != 0 {
		t.Errorf("vel = %+v, want (-5, 0)", vel)
	}
	if pos.X != 90 || pos.Y != 20 {
		t.Errorf("pos = %+v, want (90, 20)", pos)
	}
}

func TestBounceObstaclesCorner(t *testing.T) {
	obstacle := Rect{X: 100, Y: 100, Width: 50, Height: 50}

	// Diagonal approach: previous box was outside on both axes.
	pos := components.Position{X: 95, Y: 95}
	vel := components.Velocity{X: 5, Y: 5}

	flips := bounceObstacles(&pos, &vel, 10, []Rect{obstacle})

	if flips != 2 {
		t.Errorf("flips = %d, want 2", flips)
	}
	if vel.X != -5 || vel.Y != -5 {
		t.Errorf("vel = %+v, want (-5, -5)", vel)
	}
	if pos.X != 90 || pos.Y != 90 {
		t.Errorf("pos = %+v, want (90, 90)", pos)
	}
}

func TestBounceObstaclesAlreadyInside(t *testing.T) {
	// A sign that was already inside last frame has no side to infer, so it passes through.
	obstacle := Rect{X: 0, Y: 0, Width: 200, Height: 200}
	pos := components.Position{X: 50, Y: 50}
	vel := components.Velocity{X: 2, Y: 2}

	flips := bounceObstacles(&pos, &vel, 10, []Rect{obstacle})

	if flips != 0 || vel.X != 2 || vel.Y != 2 {
		t.Errorf("got flips=%d vel=%+v, want no change", flips, vel)
	}
}

func TestBounceObstaclesNone(t *testing.T) {
	pos := components.Position{X: 10, Y: 10}
	vel := components.Velocity{X: 1, Y: 1}
	if flips := bounceObstacles(&pos, &vel, 10, nil); flips != 0 {
		t.Errorf("flips = %d with no obstacles, want 0", flips)
	}
}

func TestSeparate(t *testing.T) {
	a := components.Position{X: 0, Y: 0}
	b := components.Position{X: 10, Y: 0}
	va := components.Velocity{X: 1, Y: 0}
	vb := components.Velocity{X: -1, Y: 0.5}

	separate(&a, &b, &va, &vb, 24, 10)

	if va != (components.Velocity{X: -1, Y: 0.5}) || vb != (components.Velocity{X: 1, Y: 0}) {
		t.Errorf("velocities not swapped: va=%+v vb=%+v", va, vb)
	}
	if math.Abs(a.X+7) > 1e-9 || math.Abs(b.X-17) > 1e-9 {
		t.Errorf("positions = %+v, %+v, want x=-7 and x=17", a, b)
	}
	if dist := b.X - a.X; math.Abs(dist-24) > 1e-9 {
		t.Errorf("distance after separation = %v, want 24", dist)
	}
}

func TestSeparateCoincident(t *testing.T) {
	a := components.Position{X: 5, Y: 5}
	b := components.Position{X: 5, Y: 5}
	va := components.Velocity{X: 1, Y: 0}
	vb := components.Velocity{X: 0, Y: 1}

	separate(&a, &b, &va, &vb, 24, 0)

	if a != b || a.X != 5 {
		t.Errorf("coincident signs moved: a=%+v b=%+v", a, b)
	}
	if va.Y != 1 || vb.X != 1 {
		t.Errorf("velocities not swapped: va=%+v vb=%+v", va, vb)
	}
}

func TestConfine(t *testing.T) {
	bounds := Bounds{Width: 100, Height: 100}
	pos := components.Position{X: -4, Y: 120}
	confine(&pos, 10, bounds)
	if pos.X != 0 || pos.Y != 90 {
		t.Errorf("pos = %+v, want (0, 90)", pos)
	}
}
