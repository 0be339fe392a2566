// Package math provides the 2D vector, rectangle and projection types used by
// the tessellator and the renderers.
package math

import "math"

// Vec2 is a 2D vector or point.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{x, y}.
func V2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// LengthSq returns the squared magnitude.
func (v Vec2) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSq())))
}

// Normalize returns a unit vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rot90 rotates v a quarter turn. With y pointing down this is clockwise on screen.
func (v Vec2) Rot90() Vec2 {
	return Vec2{v.Y, -v.X}
}

// Min returns the component-wise minimum.
func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{min(v.X, other.X), min(v.Y, other.Y)}
}

// Max returns the component-wise maximum.
func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{max(v.X, other.X), max(v.Y, other.Y)}
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// Angled returns the unit vector at the given angle in radians.
func Angled(angle float32) Vec2 {
	s, c := math.Sincos(float64(angle))
	return Vec2{float32(c), float32(s)}
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
