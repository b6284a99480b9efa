// Package physics holds the movement intent type and overlap detection used by the combat tick.
package physics

import "math"

// Vec2 is a 2D vector; as movement intent it is normalized before use.
type Vec2 struct {
	X, Y float64
}

// Len returns the vector length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction, or zero for a zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Scale multiplies both components by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Circle is a collider shape.
type Circle struct {
	X, Y, R float64
}

// OverlapDetector decides whether two colliders touch.
type OverlapDetector interface {
	Overlaps(a, b Circle) bool
}

// CircleOverlap is the default detector: circles touch when their centers
// are closer than the sum of the radii.
type CircleOverlap struct{}

func (CircleOverlap) Overlaps(a, b Circle) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	r := a.R + b.R
	return dx*dx+dy*dy < r*r
}
