// Package core provides fundamental types and utilities for the island game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"errors"
	"math"
	"math/rand"
)

// ErrZeroVector is returned when normalizing a vector with zero magnitude.
var ErrZeroVector = errors.New("core: cannot normalize zero vector")

// Vec2 is a 2D vector in arena units, used for positions and directions.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale multiplies both components by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the magnitude of the vector.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length.
// A zero vector has no direction and yields ErrZeroVector.
func (v Vec2) Normalize() (Vec2, error) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, ErrZeroVector
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, nil
}

// Lerp interpolates linearly from v to o. t is clamped to [0, 1].
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	t = ClampF(t, 0, 1)
	return Vec2{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// RandomDirection draws both components from [0, 100) and normalizes them.
// Degenerate draws are redrawn, so the result is always a unit vector.
func RandomDirection(rng *rand.Rand) Vec2 {
	for {
		d, err := V(rng.Float64()*100, rng.Float64()*100).Normalize()
		if err == nil {
			return d
		}
	}
}

// RectF is an axis-aligned bounding box in arena units, top-left origin.
type RectF struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether the two boxes overlap.
// Touching edges do not count as overlap.
func (r RectF) Intersects(o RectF) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// SpansX reports whether x lies within [X, X+W], edges included.
func (r RectF) SpansX(x float64) bool {
	return x >= r.X && x <= r.Right()
}

// Rect represents an axis-aligned box in terminal cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
