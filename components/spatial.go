// Package components defines ECS components for the sign field.
package components

import "gonum.org/v1/gonum/spatial/r2"

// Position is the top-left corner of a sign's box in screen pixels.
type Position struct {
	X, Y float64
}

// Velocity is a sign's displacement per frame in pixels.
type Velocity struct {
	X, Y float64
}

// Vec returns the position as a gonum vector.
func (p Position) Vec() r2.Vec { return r2.Vec(p) }

// Vec returns the velocity as a gonum vector.
func (v Velocity) Vec() r2.Vec { return r2.Vec(v) }
