package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/shadowmesh/pkg/math"
	"github.com/Faultbox/shadowmesh/pkg/paint"
)

// meshReport is the summary printed by tessellate.
type meshReport struct {
	Shadow    paint.Shadow `yaml:"shadow"`
	Rect      [4]float32   `yaml:"rect,flow"`
	Radius    float32      `yaml:"radius"`
	Expanded  [4]float32   `yaml:"expanded,flow"`
	Vertices  int          `yaml:"vertices"`
	Triangles int          `yaml:"triangles"`
	Bounds    [4]float32   `yaml:"bounds,flow"`
	Mesh      *meshDump    `yaml:"mesh,omitempty"`
}

type meshDump struct {
	Vertices []vertexDump `yaml:"vertices"`
	Indices  []uint32     `yaml:"indices,flow"`
}

type vertexDump struct {
	Pos   [2]float32 `yaml:"pos,flow"`
	Color string     `yaml:"color"`
}

func rectArray(r math.Rect) [4]float32 {
	return [4]float32{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y}
}

func newMeshReport(req tessellateRequest, mesh *paint.Mesh, withMesh bool) meshReport {
	shape := req.Shadow.Shape(req.Rect, req.Radius)
	rep := meshReport{
		Shadow:    req.Shadow,
		Rect:      rectArray(req.Rect),
		Radius:    shape.CornerRadius,
		Expanded:  rectArray(shape.Rect),
		Vertices:  len(mesh.Vertices),
		Triangles: mesh.TriangleCount(),
	}
	if !mesh.IsEmpty() {
		rep.Bounds = rectArray(mesh.Bounds())
	}
	if withMesh {
		dump := &meshDump{
			Vertices: make([]vertexDump, len(mesh.Vertices)),
			Indices:  mesh.Indices,
		}
		for i, v := range mesh.Vertices {
			dump.Vertices[i] = vertexDump{Pos: [2]float32{v.Pos.X, v.Pos.Y}, Color: v.Color.Hex()}
		}
		rep.Mesh = dump
	}
	return rep
}

func writeStats(w io.Writer, rep meshReport) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Shadow:    extrusion %g, color %s\n", rep.Shadow.Extrusion, rep.Shadow.Color.Color32().Hex())
	fmt.Fprintf(bw, "Rect:      %v\n", rep.Rect)
	fmt.Fprintf(bw, "Expanded:  %v, radius %g\n", rep.Expanded, rep.Radius)
	fmt.Fprintf(bw, "Vertices:  %d\n", rep.Vertices)
	fmt.Fprintf(bw, "Triangles: %d\n", rep.Triangles)
	fmt.Fprintf(bw, "Bounds:    %v\n", rep.Bounds)
	return bw.Flush()
}

// writeOBJ writes the mesh as a Wavefront OBJ file in the z=0 plane. Vertex
// colors use the common "v x y z r g b" extension with unmultiplied values, and
// the alpha is lost.
func writeOBJ(w io.Writer, mesh *paint.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# shadowmesh: %d vertices, %d triangles\n", len(mesh.Vertices), mesh.TriangleCount())
	for _, v := range mesh.Vertices {
		r, g, b, _ := v.Color.Unmultiplied()
		// OBJ is y-up, screen space is y-down.
		fmt.Fprintf(bw, "v %g %g 0 %.4f %.4f %.4f\n", v.Pos.X, -v.Pos.Y,
			float32(r)/255, float32(g)/255, float32(b)/255)
	}
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		// Flipping y reverses the winding, so swap two corners to keep faces front-facing.
		fmt.Fprintf(bw, "f %d %d %d\n", mesh.Indices[i]+1, mesh.Indices[i+2]+1, mesh.Indices[i+1]+1)
	}
	return bw.Flush()
}
