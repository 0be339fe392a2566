package paint

import (
	gomath "math"

	"github.com/Faultbox/shadowmesh/pkg/math"
)

// TessellationOptions controls how shapes are turned into triangles.
type TessellationOptions struct {
	// AntiAlias enables feathered edges.
	AntiAlias bool `yaml:"anti_alias"`

	// AASize is the feather width in points. Fills fade from full color to
	// transparent across this width, inside the shape's outline. Strokes fade
	// over half of it on each side.
	AASize float32 `yaml:"aa_size"`
}

// DefaultTessellationOptions returns one-point anti-aliasing, suited to crisp
// shapes at one pixel per point.
func DefaultTessellationOptions() TessellationOptions {
	return TessellationOptions{
		AntiAlias: true,
		AASize:    1,
	}
}

// RectTessellator fills rounded rectangles into a mesh.
type RectTessellator interface {
	TessellateRect(shape RectShape, out *Mesh)
}

// Tessellator converts shapes into triangles. It keeps scratch buffers between
// calls and must not be shared between goroutines.
type Tessellator struct {
	options TessellationOptions

	outer []math.Vec2
	inner []math.Vec2
	ring  []ringPair
	fan   []uint32
	path  Path
}

type ringPair struct {
	outer, inner math.Vec2
}

// NewTessellator creates a tessellator with the given options.
func NewTessellator(opts TessellationOptions) *Tessellator {
	return &Tessellator{options: opts}
}

// Options returns the options the tessellator was created with.
func (t *Tessellator) Options() TessellationOptions {
	return t.options
}

// feathering returns the effective feather width, 0 when anti-aliasing is off
// or the configured width is not a positive finite number.
func (t *Tessellator) feathering() float32 {
	if !t.options.AntiAlias {
		return 0
	}
	aa := t.options.AASize
	if !(aa > 0) || gomath.IsInf(float64(aa), 1) {
		return 0
	}
	return aa
}

// TessellateRect appends the triangles of shape to out.
//
// Rects that are empty, inverted or not finite produce no triangles. The
// corner radius is clamped to half the shorter side. The outline of the
// fill always lies exactly on shape.Rect, so the fill never grows the rect.
func (t *Tessellator) TessellateRect(shape RectShape, out *Mesh) {
	rect := shape.Rect
	if !rect.IsFinite() || !rect.IsPositive() {
		return
	}

	r := clampCornerRadius(rect, shape.CornerRadius)
	segments := 0
	if r > 0 {
		segments = quadrantSegments(r)
	}
	feathering := t.feathering()

	t.outer = appendRoundedRect(t.outer[:0], rect, r, segments)
	if feathering > 0 {
		t.fillFeathered(rect, r, segments, feathering, shape.Fill, out)
	}

	t.path.AddLineLoop(dedupLoop(t.outer))
	if feathering == 0 {
		t.path.FillConvex(shape.Fill, out)
	}
	t.path.StrokeClosed(feathering, shape.Stroke, out)
}

// fillFeathered fills the rounded rect with a gradient band just inside its
// outline: transparent on the outline, fill color inset by feathering. The
// inset ring is the same rounded rect shrunk by the inset, built with the same
// segment count so the two rings correspond point by point and the band never
// folds over itself at the corners. When the rect is too small for the full
// inset the gradient stops early and the core is drawn at the matching
// partial opacity.
func (t *Tessellator) fillFeathered(rect math.Rect, r float32, segments int, feathering float32, fill Color32, out *Mesh) {
	inset := min(feathering, 0.5*min(rect.Width(), rect.Height()))
	innerRect := rect.Expand(-inset)
	innerR := max(r-inset, 0)
	t.inner = appendRoundedRect(t.inner[:0], innerRect, innerR, segments)

	innerColor := fill
	if inset < feathering {
		innerColor = fill.LinearMultiply(inset / feathering)
	}

	t.ring = t.ring[:0]
	for i := range t.outer {
		pair := ringPair{outer: t.outer[i], inner: t.inner[i]}
		if len(t.ring) > 0 && t.ring[len(t.ring)-1] == pair {
			continue
		}
		t.ring = append(t.ring, pair)
	}
	for len(t.ring) > 1 && t.ring[len(t.ring)-1] == t.ring[0] {
		t.ring = t.ring[:len(t.ring)-1]
	}
	n := len(t.ring)
	if n < 3 {
		return
	}

	out.Reserve(3*n, 2*n)
	base := uint32(len(out.Vertices))
	for _, pair := range t.ring {
		out.ColoredVertex(pair.inner, innerColor)
		out.ColoredVertex(pair.outer, Transparent)
	}

	// Inner core: fan over the distinct inner points.
	t.fan = t.fan[:0]
	for i, pair := range t.ring {
		if i > 0 && pair.inner == t.ring[i-1].inner {
			continue
		}
		t.fan = append(t.fan, base+uint32(2*i))
	}
	if len(t.fan) > 1 && t.ring[0].inner == t.ring[n-1].inner {
		t.fan = t.fan[:len(t.fan)-1]
	}
	for i := 2; i < len(t.fan); i++ {
		out.AddTriangle(t.fan[0], t.fan[i-1], t.fan[i])
	}

	// Feather band: one quad per edge, minus triangles that collapse where an
	// inner corner has shrunk to a point.
	for i := 0; i < n; i++ {
		j := (i + n - 1) % n
		innerJ, outerJ := base+uint32(2*j), base+uint32(2*j)+1
		innerI, outerI := base+uint32(2*i), base+uint32(2*i)+1
		if t.ring[j].outer != t.ring[i].outer {
			out.AddTriangle(outerJ, outerI, innerI)
		}
		if t.ring[j].inner != t.ring[i].inner {
			out.AddTriangle(outerJ, innerI, innerJ)
		}
	}
}
