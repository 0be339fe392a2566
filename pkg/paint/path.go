package paint

import (
	gomath "math"

	"github.com/Faultbox/shadowmesh/pkg/math"
)

const maxQuadrantSegments = 32

// quadrantSegments returns how many segments approximate a quarter circle of radius r.
func quadrantSegments(r float32) int {
	n := int(gomath.Round(float64(r) * 0.75))
	return max(2, min(n, maxQuadrantSegments))
}

// clampCornerRadius limits r to [0, half the shorter side of rect].
func clampCornerRadius(rect math.Rect, r float32) float32 {
	limit := 0.5 * min(rect.Width(), rect.Height())
	if !(r > 0) || !(limit > 0) {
		return 0
	}
	return min(r, limit)
}

// appendRoundedRect appends the outline of rect with corner radius r, clockwise
// on screen starting at the bottom-right corner. With segments == 0 the four
// corners are emitted as single points; otherwise each corner is a quarter arc
// of segments+1 points, so two outlines built with the same segment count have
// point-wise corresponding vertices even when their radii differ.
//
// r must already be clamped with clampCornerRadius.
func appendRoundedRect(dst []math.Vec2, rect math.Rect, r float32, segments int) []math.Vec2 {
	min, max := rect.Min, rect.Max
	if segments == 0 {
		return append(dst,
			math.V2(max.X, max.Y),
			math.V2(min.X, max.Y),
			math.V2(min.X, min.Y),
			math.V2(max.X, min.Y),
		)
	}
	dst = appendQuadrant(dst, math.V2(max.X-r, max.Y-r), r, 0, segments)
	dst = appendQuadrant(dst, math.V2(min.X+r, max.Y-r), r, 1, segments)
	dst = appendQuadrant(dst, math.V2(min.X+r, min.Y+r), r, 2, segments)
	dst = appendQuadrant(dst, math.V2(max.X-r, min.Y+r), r, 3, segments)
	return dst
}

// appendQuadrant appends segments+1 points on the quarter circle starting at
// angle quadrant*90°. Angles grow towards +y, which is clockwise with y down.
func appendQuadrant(dst []math.Vec2, center math.Vec2, r float32, quadrant, segments int) []math.Vec2 {
	for i := 0; i <= segments; i++ {
		var dir math.Vec2
		switch i {
		case 0:
			dir = axisDir(quadrant)
		case segments:
			dir = axisDir(quadrant + 1)
		default:
			t := float32(i) / float32(segments)
			dir = math.Angled((float32(quadrant) + t) * gomath.Pi / 2)
		}
		dst = append(dst, center.Add(dir.Scale(r)))
	}
	return dst
}

// axisDir returns the exact unit vector at quadrant*90°.
func axisDir(quadrant int) math.Vec2 {
	switch quadrant % 4 {
	case 0:
		return math.V2(1, 0)
	case 1:
		return math.V2(0, 1)
	case 2:
		return math.V2(-1, 0)
	default:
		return math.V2(0, -1)
	}
}

// dedupLoop removes consecutive duplicate points of a closed loop in place,
// including a last point equal to the first.
func dedupLoop(points []math.Vec2) []math.Vec2 {
	if len(points) == 0 {
		return points
	}
	out := points[:1]
	for _, p := range points[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}

// Path is a closed polyline with per-point miter normals, reused between
// tessellations to avoid allocations.
type Path struct {
	points  []math.Vec2
	normals []math.Vec2
}

// Clear empties the path but keeps its buffers.
func (p *Path) Clear() {
	p.points = p.points[:0]
	p.normals = p.normals[:0]
}

// Len returns the number of points.
func (p *Path) Len() int {
	return len(p.points)
}

// AddLineLoop replaces the path with a closed loop through points and computes
// the outward normal at each point. The loop must be wound clockwise on screen
// (y down) for the normals to point outward.
func (p *Path) AddLineLoop(points []math.Vec2) {
	p.Clear()
	n := len(points)
	for i := 0; i < n; i++ {
		prev := points[(i+n-1)%n]
		curr := points[i]
		next := points[(i+1)%n]

		n0 := curr.Sub(prev).Normalize().Rot90()
		n1 := next.Sub(curr).Normalize().Rot90()
		normal := n0.Add(n1).Scale(0.5)

		// Miter: scale so the offset edge stays parallel to the original edge.
		if lsq := normal.LengthSq(); lsq > 1e-6 {
			normal = normal.Scale(1 / lsq)
		} else {
			normal = math.Vec2{}
		}
		p.points = append(p.points, curr)
		p.normals = append(p.normals, normal)
	}
}

// FillConvex fills the convex loop as a triangle fan without anti-aliasing.
// Geometry is emitted even for a transparent color so callers can rely on the
// triangle count of a positive shape.
func (p *Path) FillConvex(color Color32, out *Mesh) {
	n := len(p.points)
	if n < 3 {
		return
	}
	out.Reserve(n-2, n)
	base := uint32(len(out.Vertices))
	for _, pt := range p.points {
		out.ColoredVertex(pt, color)
	}
	for i := 2; i < n; i++ {
		out.AddTriangle(base, base+uint32(i-1), base+uint32(i))
	}
}

// StrokeClosed outlines the loop with a band of stroke.Width centered on it.
// With feathering > 0 each side fades to transparent over feathering points.
func (p *Path) StrokeClosed(feathering float32, stroke Stroke, out *Mesh) {
	n := len(p.points)
	if n < 2 || stroke.IsEmpty() {
		return
	}
	hw := stroke.Width / 2

	if feathering <= 0 {
		out.Reserve(2*n, 2*n)
		base := uint32(len(out.Vertices))
		for i, pt := range p.points {
			nrm := p.normals[i]
			out.ColoredVertex(pt.Add(nrm.Scale(hw)), stroke.Color)
			out.ColoredVertex(pt.Sub(nrm.Scale(hw)), stroke.Color)
		}
		for i := 0; i < n; i++ {
			j := (i + n - 1) % n
			a, b := base+uint32(2*j), base+uint32(2*i)
			out.AddTriangle(a, a+1, b)
			out.AddTriangle(a+1, b+1, b)
		}
		return
	}

	if stroke.Width < feathering {
		// Too thin for a solid core: fade a scaled-down color over the feather width.
		color := stroke.Color.LinearMultiply(stroke.Width / feathering)
		if color.IsTransparent() {
			return
		}
		out.Reserve(4*n, 3*n)
		base := uint32(len(out.Vertices))
		for i, pt := range p.points {
			nrm := p.normals[i].Scale(feathering)
			out.ColoredVertex(pt.Add(nrm), Transparent)
			out.ColoredVertex(pt, color)
			out.ColoredVertex(pt.Sub(nrm), Transparent)
		}
		for i := 0; i < n; i++ {
			j := (i + n - 1) % n
			a, b := base+uint32(3*j), base+uint32(3*i)
			out.AddTriangle(a, a+1, b)
			out.AddTriangle(a+1, b+1, b)
			out.AddTriangle(a+1, a+2, b+1)
			out.AddTriangle(a+2, b+2, b+1)
		}
		return
	}

	inner := hw - feathering/2
	outer := hw + feathering/2
	out.Reserve(6*n, 4*n)
	base := uint32(len(out.Vertices))
	for i, pt := range p.points {
		nrm := p.normals[i]
		out.ColoredVertex(pt.Add(nrm.Scale(outer)), Transparent)
		out.ColoredVertex(pt.Add(nrm.Scale(inner)), stroke.Color)
		out.ColoredVertex(pt.Sub(nrm.Scale(inner)), stroke.Color)
		out.ColoredVertex(pt.Sub(nrm.Scale(outer)), Transparent)
	}
	for i := 0; i < n; i++ {
		j := (i + n - 1) % n
		a, b := base+uint32(4*j), base+uint32(4*i)
		for k := uint32(0); k < 3; k++ {
			out.AddTriangle(a+k, a+k+1, b+k)
			out.AddTriangle(a+k+1, b+k+1, b+k)
		}
	}
}
