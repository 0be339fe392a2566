package math

import "math"

// Rect is an axis-aligned rectangle given by its min and max corners.
// A rect with Min > Max on either axis is empty.
type Rect struct {
	Min, Max Vec2
}

// NothingRect is the identity for Union: it contains nothing and any union with
// it yields the other operand.
var NothingRect = Rect{
	Min: Vec2{math.MaxFloat32, math.MaxFloat32},
	Max: Vec2{-math.MaxFloat32, -math.MaxFloat32},
}

// RectFromMinMax builds a rect from two corners.
func RectFromMinMax(min, max Vec2) Rect {
	return Rect{Min: min, Max: max}
}

// RectFromMinSize builds a rect from its min corner and size.
func RectFromMinSize(min, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

// Width returns Max.X - Min.X. Negative for inverted rects.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns Max.Y - Min.Y. Negative for inverted rects.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 {
	return Vec2{r.Width(), r.Height()}
}

// Center returns the midpoint.
func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Area returns width * height, or 0 when the rect is empty.
func (r Rect) Area() float32 {
	if !r.IsPositive() {
		return 0
	}
	return r.Width() * r.Height()
}

// IsPositive reports whether the rect has strictly positive width and height.
func (r Rect) IsPositive() bool {
	return r.Width() > 0 && r.Height() > 0
}

// IsFinite reports whether all corners are finite.
func (r Rect) IsFinite() bool {
	return r.Min.IsFinite() && r.Max.IsFinite()
}

// Expand grows the rect by amount on every side. Negative amounts shrink it.
func (r Rect) Expand(amount float32) Rect {
	return r.Expand2(Vec2{amount, amount})
}

// Expand2 grows the rect by amount.X horizontally and amount.Y vertically on each side.
func (r Rect) Expand2(amount Vec2) Rect {
	return Rect{Min: r.Min.Sub(amount), Max: r.Max.Add(amount)}
}

// Translate moves the rect by delta.
func (r Rect) Translate(delta Vec2) Rect {
	return Rect{Min: r.Min.Add(delta), Max: r.Max.Add(delta)}
}

// Contains reports whether p lies inside the rect, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ExtendWith grows the rect to include p.
func (r Rect) ExtendWith(p Vec2) Rect {
	return Rect{Min: r.Min.Min(p), Max: r.Max.Max(p)}
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{Min: r.Min.Min(other.Min), Max: r.Max.Max(other.Max)}
}

// ApproxEqual reports whether all corners are within eps of other's.
func (r Rect) ApproxEqual(other Rect, eps float32) bool {
	return approx(r.Min.X, other.Min.X, eps) && approx(r.Min.Y, other.Min.Y, eps) &&
		approx(r.Max.X, other.Max.X, eps) && approx(r.Max.Y, other.Max.Y, eps)
}

func approx(a, b, eps float32) bool {
	d := a - b
	return d <= eps && d >= -eps
}
