// Package systems contains the sign field simulation.
package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/folio/components"
)

// Bounds represents the viewport the signs live in.
type Bounds struct {
	Width, Height float64
}

// Rect is an axis-aligned obstacle box in screen pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether the point lies inside the rectangle (edges inclusive).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x <= r.Right() && y >= r.Top() && y <= r.Bottom()
}

// Overlaps reports whether two rectangles intersect. Touching edges count.
func (r Rect) Overlaps(o Rect) bool {
	return !(o.Left() > r.Right() ||
		o.Right() < r.Left() ||
		o.Top() > r.Bottom() ||
		o.Bottom() < r.Top())
}

// ObstacleSource produces the obstacle boxes for the current frame.
type ObstacleSource func() []Rect

// advance moves a sign by its velocity.
func advance(pos *components.Position, vel *components.Velocity) {
	pos.X += vel.X
	pos.Y += vel.Y
}

// bounceEdges clamps a sign of the given size into bounds, inverting the
// velocity component of every edge it was clamped against.
// Returns the number of edges hit.
func bounceEdges(pos *components.Position, vel *components.Velocity, size float64, b Bounds) int {
	hits := 0
	if pos.X < 0 {
		pos.X = 0
		vel.X = -vel.X
		hits++
	}
	if pos.X > b.Width-size {
		pos.X = b.Width - size
		vel.X = -vel.X
		hits++
	}
	if pos.Y < 0 {
		pos.Y = 0
		vel.Y = -vel.Y
		hits++
	}
	if pos.Y > b.Height-size {
		pos.Y = b.Height - size
		vel.Y = -vel.Y
		hits++
	}
	return hits
}

// confine clamps a position into bounds without touching velocity.
// Used after collision separation, which can push a sign past an edge.
func confine(pos *components.Position, size float64, b Bounds) {
	pos.X = min(max(pos.X, 0), max(b.Width-size, 0))
	pos.Y = min(max(pos.Y, 0), max(b.Height-size, 0))
}

// bounceObstacles reflects a sign off every obstacle its box overlaps.
// The box is taken once at the sign's current position. For each hit, the
// axis is inferred from where the sign was one step earlier: if that box
// was fully outside the obstacle along an axis, that axis flips and the
// sign steps back along it. Both axes may flip for the same obstacle.
// Returns the number of axis flips.
func bounceObstacles(pos *components.Position, vel *components.Velocity, size float64, obstacles []Rect) int {
	box := Rect{X: pos.X, Y: pos.Y, Width: size, Height: size}
	flips := 0

	for _, o := range obstacles {
		if !box.Overlaps(o) {
			continue
		}

		prevX := pos.X - vel.X
		prevY := pos.Y - vel.Y

		if prevX+size <= o.Left() || prevX >= o.Right() {
			vel.X = -vel.X
			pos.X += vel.X
			flips++
		}
		if prevY+size <= o.Top() || prevY >= o.Bottom() {
			vel.Y = -vel.Y
			pos.Y += vel.Y
			flips++
		}
	}

	return flips
}

// separate swaps the velocities of two overlapping signs and pushes them
// apart along the line between them by half the overlap each.
// dist is the current center distance; coincident signs use 1 for
// normalization, which leaves them in place.
func separate(a, b *components.Position, va, vb *components.Velocity, size, dist float64) {
	*va, *vb = *vb, *va

	d := r2.Sub(b.Vec(), a.Vec())
	norm := dist
	if norm == 0 {
		norm = 1
	}
	shift := r2.Scale((size-dist)/2/norm, d)

	*a = components.Position(r2.Sub(a.Vec(), shift))
	*b = components.Position(r2.Add(b.Vec(), shift))
}
