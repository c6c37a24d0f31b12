// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned box in terminal cells.
// Used by the Screen for boxes and fills; world geometry uses RectF.
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

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec) Scale(k float64) Vec {
	return Vec{v.X * k, v.Y * k}
}

// LenSq returns the squared length of v.
func (v Vec) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of v.
func (v Vec) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Heading returns the unit vector for a rotation in degrees.
// 0 degrees points up the screen (negative Y), 90 points right.
func Heading(deg float64) Vec {
	rad := DegToRad(deg)
	return Vec{X: math.Sin(rad), Y: -math.Cos(rad)}
}

// RectF is an axis-aligned rectangle in world units.
type RectF struct {
	X, Y float64 // Top-left corner
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

// Center returns the center point of the rectangle.
func (r RectF) Center() Vec {
	return Vec{r.X + r.W/2, r.Y + r.H/2}
}

// Overlaps reports whether two rectangles intersect.
// Touching edges do not count as overlap.
func (r RectF) Overlaps(o RectF) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether p lies inside the rectangle (right/bottom exclusive).
func (r RectF) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// CircleCircle reports whether two circles overlap.
// Uses the squared-distance form: |a-b|^2 < (ra+rb)^2.
func CircleCircle(a Vec, ra float64, b Vec, rb float64) bool {
	sum := ra + rb
	return a.Sub(b).LenSq() < sum*sum
}

// CircleRect reports whether a circle overlaps a rectangle.
// The closest point of the rectangle to the circle center is compared with the radius.
func CircleRect(c Vec, radius float64, r RectF) bool {
	closest := Vec{
		X: ClampF(c.X, r.X, r.Right()),
		Y: ClampF(c.Y, r.Y, r.Bottom()),
	}
	return c.Sub(closest).LenSq() <= radius*radius
}

// Wrap folds v into [0, size). Values of any magnitude land in range.
func Wrap(v, size float64) float64 {
	if size <= 0 {
		return 0
	}
	if v >= 0 && v < size {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// math.Mod of a tiny negative value can round up to size.
	if v >= size {
		v = 0
	}
	return v
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
