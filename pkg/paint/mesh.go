package paint

import (
	"github.com/Faultbox/shadowmesh/pkg/math"
)

// Vertex is a single mesh vertex: a position in points and a premultiplied color.
type Vertex struct {
	Pos   math.Vec2
	Color Color32
}

// Mesh is a triangle list: every three indices form one triangle referencing Vertices.
// The zero value is an empty, valid mesh.
type Mesh struct {
	Indices  []uint32
	Vertices []Vertex
}

// Mesh16 is a part of a Mesh whose indices fit in 16 bits.
type Mesh16 struct {
	Indices  []uint16
	Vertices []Vertex
}

// Clear empties the mesh but keeps the allocated buffers.
func (m *Mesh) Clear() {
	m.Indices = m.Indices[:0]
	m.Vertices = m.Vertices[:0]
}

// IsEmpty reports whether the mesh has no triangles and no vertices.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0 && len(m.Vertices) == 0
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsValid reports whether the index count is a multiple of three and every
// index references an existing vertex.
func (m *Mesh) IsValid() bool {
	if len(m.Indices)%3 != 0 {
		return false
	}
	n := uint32(len(m.Vertices))
	for _, idx := range m.Indices {
		if idx >= n {
			return false
		}
	}
	return true
}

// Reserve grows capacity for additional triangles and vertices.
func (m *Mesh) Reserve(triangles, vertices int) {
	if need := len(m.Indices) + 3*triangles; need > cap(m.Indices) {
		grown := make([]uint32, len(m.Indices), need)
		copy(grown, m.Indices)
		m.Indices = grown
	}
	if need := len(m.Vertices) + vertices; need > cap(m.Vertices) {
		grown := make([]Vertex, len(m.Vertices), need)
		copy(grown, m.Vertices)
		m.Vertices = grown
	}
}

// ColoredVertex appends a vertex and returns its index.
func (m *Mesh) ColoredVertex(pos math.Vec2, color Color32) uint32 {
	m.Vertices = append(m.Vertices, Vertex{Pos: pos, Color: color})
	return uint32(len(m.Vertices) - 1)
}

// AddTriangle appends one triangle.
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// Bounds returns the bounding box of all vertices, or math.NothingRect when empty.
func (m *Mesh) Bounds() math.Rect {
	bounds := math.NothingRect
	for _, v := range m.Vertices {
		bounds = bounds.ExtendWith(v.Pos)
	}
	return bounds
}

// Append adds the triangles of other, rebasing its indices.
func (m *Mesh) Append(other *Mesh) {
	if len(m.Vertices) == 0 && len(m.Indices) == 0 {
		m.Indices = append(m.Indices, other.Indices...)
		m.Vertices = append(m.Vertices, other.Vertices...)
		return
	}
	base := uint32(len(m.Vertices))
	m.Reserve(other.TriangleCount(), len(other.Vertices))
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
	m.Vertices = append(m.Vertices, other.Vertices...)
}

// Translate moves every vertex by delta.
func (m *Mesh) Translate(delta math.Vec2) {
	for i := range m.Vertices {
		m.Vertices[i].Pos = m.Vertices[i].Pos.Add(delta)
	}
}

// SplitToU16 breaks the mesh into parts with at most 65536 vertices each, for
// backends that only accept 16-bit indices. Triangles are never split across
// parts. The mesh must be valid.
func (m *Mesh) SplitToU16() []Mesh16 {
	const maxVerts = 1 << 16

	if len(m.Vertices) <= maxVerts {
		idx := make([]uint16, len(m.Indices))
		for i, v := range m.Indices {
			idx[i] = uint16(v)
		}
		return []Mesh16{{Indices: idx, Vertices: m.Vertices}}
	}

	var parts []Mesh16
	start := 0
	for start < len(m.Indices) {
		// Grow the index range while the referenced vertex span fits in 16 bits.
		lo, hi := ^uint32(0), uint32(0)
		end := start
		for end < len(m.Indices) {
			triLo, triHi := lo, hi
			for _, idx := range m.Indices[end : end+3] {
				triLo = min(triLo, idx)
				triHi = max(triHi, idx)
			}
			if triHi-triLo >= maxVerts {
				// A single triangle spanning more than 65536 vertices cannot be
				// represented. Skip it rather than emitting a broken part.
				if end == start {
					start += 3
					end = start
					continue
				}
				break
			}
			lo, hi = triLo, triHi
			end += 3
		}
		if end == start {
			continue
		}

		idx := make([]uint16, end-start)
		for i, v := range m.Indices[start:end] {
			idx[i] = uint16(v - lo)
		}
		parts = append(parts, Mesh16{
			Indices:  idx,
			Vertices: m.Vertices[lo : hi+1],
		})
		start = end
	}
	return parts
}
