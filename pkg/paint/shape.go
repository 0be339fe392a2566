package paint

import (
	"github.com/Faultbox/shadowmesh/pkg/math"
)

// Stroke describes an outline: its width in points and its color.
// The zero value draws nothing.
type Stroke struct {
	Width float32
	Color Color32
}

// IsEmpty reports whether the stroke would produce no visible output.
func (s Stroke) IsEmpty() bool {
	return !(s.Width > 0) || s.Color.IsTransparent()
}

// RectShape is a filled and optionally outlined rectangle with rounded corners.
type RectShape struct {
	Rect         math.Rect
	CornerRadius float32
	Fill         Color32
	Stroke       Stroke
}

// FilledRect returns a RectShape with a fill and no stroke.
func FilledRect(rect math.Rect, cornerRadius float32, fill Color32) RectShape {
	return RectShape{Rect: rect, CornerRadius: cornerRadius, Fill: fill}
}

// VisualBounds returns the area the shape may touch, stroke included.
func (s RectShape) VisualBounds() math.Rect {
	if s.Stroke.IsEmpty() {
		return s.Rect
	}
	return s.Rect.Expand(s.Stroke.Width / 2)
}
