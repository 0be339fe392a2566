package paint

import (
	"testing"

	"github.com/Faultbox/shadowmesh/pkg/math"
)

func TestQuadrantSegments(t *testing.T) {
	tests := []struct {
		r    float32
		want int
	}{
		{0.1, 2},
		{4, 3},
		{10, 8},
		{12, 9},
		{1000, 32},
	}
	for _, tt := range tests {
		if got := quadrantSegments(tt.r); got != tt.want {
			t.Errorf("quadrantSegments(%v) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestTessellateRectPlainFill(t *testing.T) {
	tests := []struct {
		name      string
		rect      math.Rect
		radius    float32
		vertices  int
		triangles int
	}{
		{"sharp", math.RectFromMinSize(math.V2(0, 0), math.V2(100, 50)), 0, 4, 2},
		{"rounded", math.RectFromMinSize(math.V2(0, 0), math.V2(100, 50)), 10, 36, 34},
		// Radius of half the height: the left and right edges vanish and
		// their duplicate points are merged.
		{"pill", math.RectFromMinSize(math.V2(0, 0), math.V2(100, 50)), 25, 78, 76},
		{"clamped", math.RectFromMinSize(math.V2(0, 0), math.V2(100, 50)), 400, 78, 76},
	}

	tess := NewTessellator(TessellationOptions{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mesh Mesh
			tess.TessellateRect(FilledRect(tt.rect, tt.radius, White), &mesh)

			if got := len(mesh.Vertices); got != tt.vertices {
				t.Errorf("vertices = %d, want %d", got, tt.vertices)
			}
			if got := mesh.TriangleCount(); got != tt.triangles {
				t.Errorf("triangles = %d, want %d", got, tt.triangles)
			}
			if !mesh.IsValid() {
				t.Error("mesh is not valid")
			}
			if got := mesh.Bounds(); !got.ApproxEqual(tt.rect, eps) {
				t.Errorf("bounds = %v, want %v", got, tt.rect)
			}
		})
	}
}

func TestTessellateRectSkipsEmpty(t *testing.T) {
	tess := NewTessellator(DefaultTessellationOptions())
	for _, rect := range []math.Rect{
		math.RectFromMinSize(math.V2(0, 0), math.V2(0, 10)),
		math.RectFromMinSize(math.V2(0, 0), math.V2(10, 0)),
		math.RectFromMinMax(math.V2(10, 10), math.V2(0, 0)),
	} {
		var mesh Mesh
		tess.TessellateRect(FilledRect(rect, 2, White), &mesh)
		if !mesh.IsEmpty() {
			t.Errorf("rect %v: expected empty mesh, got %d triangles", rect, mesh.TriangleCount())
		}
	}
}

func TestTessellateRectFeatheredAppends(t *testing.T) {
	tess := NewTessellator(DefaultTessellationOptions())
	rect := math.RectFromMinSize(math.V2(0, 0), math.V2(40, 30))

	var once Mesh
	tess.TessellateRect(FilledRect(rect, 5, White), &once)

	var twice Mesh
	tess.TessellateRect(FilledRect(rect, 5, White), &twice)
	tess.TessellateRect(FilledRect(rect.Translate(math.V2(100, 0)), 5, White), &twice)

	if !twice.IsValid() {
		t.Fatal("appended mesh is not valid")
	}
	if got, want := twice.TriangleCount(), 2*once.TriangleCount(); got != want {
		t.Errorf("triangles = %d, want %d", got, want)
	}
	want := math.RectFromMinMax(math.V2(0, 0), math.V2(140, 30))
	if got := twice.Bounds(); !got.ApproxEqual(want, eps) {
		t.Errorf("bounds = %v, want %v", got, want)
	}
}

func TestTessellateRectStroke(t *testing.T) {
	rect := math.RectFromMinSize(math.V2(0, 0), math.V2(10, 10))

	tests := []struct {
		name      string
		opts      TessellationOptions
		stroke    Stroke
		bounds    math.Rect
		triangles int
		vertices  int
	}{
		{
			name:      "hard",
			opts:      TessellationOptions{},
			stroke:    Stroke{Width: 2, Color: Black},
			bounds:    rect.Expand(1),
			triangles: 2 + 8,
			vertices:  4 + 8,
		},
		{
			name:   "feathered",
			opts:   TessellationOptions{AntiAlias: true, AASize: 1},
			stroke: Stroke{Width: 3, Color: Black},
			bounds: rect.Expand(2),
			// Feathered fill: 2 core + 8 band, stroke: 6 per edge.
			triangles: 10 + 24,
			vertices:  8 + 16,
		},
		{
			name:      "thin",
			opts:      TessellationOptions{AntiAlias: true, AASize: 1},
			stroke:    Stroke{Width: 0.5, Color: Black},
			bounds:    rect.Expand(1),
			triangles: 10 + 16,
			vertices:  8 + 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := FilledRect(rect, 0, White)
			shape.Stroke = tt.stroke

			var mesh Mesh
			NewTessellator(tt.opts).TessellateRect(shape, &mesh)

			if !mesh.IsValid() {
				t.Fatal("mesh is not valid")
			}
			if got := mesh.TriangleCount(); got != tt.triangles {
				t.Errorf("triangles = %d, want %d", got, tt.triangles)
			}
			if got := len(mesh.Vertices); got != tt.vertices {
				t.Errorf("vertices = %d, want %d", got, tt.vertices)
			}
			if got := mesh.Bounds(); !got.ApproxEqual(tt.bounds, eps) {
				t.Errorf("bounds = %v, want %v", got, tt.bounds)
			}
		})
	}
}

func TestThinStrokeFadesColor(t *testing.T) {
	shape := FilledRect(math.RectFromMinSize(math.V2(0, 0), math.V2(10, 10)), 0, Transparent)
	shape.Stroke = Stroke{Width: 0.5, Color: Black}

	var mesh Mesh
	NewTessellator(TessellationOptions{AntiAlias: true, AASize: 1}).TessellateRect(shape, &mesh)

	var maxAlpha uint8
	for _, v := range mesh.Vertices {
		maxAlpha = max(maxAlpha, v.Color.A())
	}
	if maxAlpha != 128 {
		t.Errorf("thin stroke alpha = %d, want 128", maxAlpha)
	}
}

func TestStrokeIsEmpty(t *testing.T) {
	tests := []struct {
		stroke Stroke
		want   bool
	}{
		{Stroke{}, true},
		{Stroke{Width: 1}, true},
		{Stroke{Color: Black}, true},
		{Stroke{Width: -1, Color: Black}, true},
		{Stroke{Width: 1, Color: Black}, false},
	}
	for _, tt := range tests {
		if got := tt.stroke.IsEmpty(); got != tt.want {
			t.Errorf("%+v.IsEmpty() = %v, want %v", tt.stroke, got, tt.want)
		}
	}
}

func TestDedupLoop(t *testing.T) {
	pts := []math.Vec2{
		math.V2(0, 0), math.V2(0, 0), math.V2(1, 0), math.V2(1, 1), math.V2(1, 1), math.V2(0, 0),
	}
	got := dedupLoop(pts)
	want := []math.Vec2{math.V2(0, 0), math.V2(1, 0), math.V2(1, 1)}
	if len(got) != len(want) {
		t.Fatalf("dedupLoop() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPathNormalsPointOutward(t *testing.T) {
	rect := math.RectFromMinSize(math.V2(0, 0), math.V2(10, 10))
	var path Path
	path.AddLineLoop(appendRoundedRect(nil, rect, 0, 0))

	center := rect.Center()
	for i := 0; i < path.Len(); i++ {
		out := path.points[i].Sub(center)
		if path.normals[i].Dot(out) <= 0 {
			t.Errorf("normal %v at %v points inward", path.normals[i], path.points[i])
		}
		if l := path.normals[i].Length(); !approxEq(l, 1.41421356) {
			t.Errorf("corner miter length = %v, want sqrt(2)", l)
		}
	}
}
