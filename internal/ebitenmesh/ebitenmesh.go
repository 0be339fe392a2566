// Package ebitenmesh draws paint meshes on ebiten images.
//
// Ebiten only accepts 16-bit indices, so meshes are split with
// paint.Mesh.SplitToU16 and drawn one part at a time.
package ebitenmesh

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Faultbox/shadowmesh/pkg/paint"
)

// Every vertex samples the center of a white texel so the vertex color is the
// final color.
const (
	whiteSrcX = 1.5
	whiteSrcY = 1.5
)

var whiteSubImage *ebiten.Image

func white() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Batch is one DrawTriangles call worth of geometry.
type Batch struct {
	Vertices []ebiten.Vertex
	Indices  []uint16
}

// Convert turns mesh into ebiten batches, reusing the storage of dst.
func Convert(dst []Batch, mesh *paint.Mesh) []Batch {
	dst = dst[:0]
	if len(mesh.Indices) == 0 {
		return dst
	}
	for _, part := range mesh.SplitToU16() {
		if len(part.Indices) == 0 {
			continue
		}
		var b Batch
		if len(dst) < cap(dst) {
			b = dst[:len(dst)+1][len(dst)]
		}
		b.Vertices = appendVertices(b.Vertices[:0], part.Vertices)
		b.Indices = append(b.Indices[:0], part.Indices...)
		dst = append(dst, b)
	}
	return dst
}

func appendVertices(dst []ebiten.Vertex, src []paint.Vertex) []ebiten.Vertex {
	for _, v := range src {
		dst = append(dst, ebiten.Vertex{
			DstX:   v.Pos.X,
			DstY:   v.Pos.Y,
			SrcX:   whiteSrcX,
			SrcY:   whiteSrcY,
			ColorR: float32(v.Color.R()) / 255,
			ColorG: float32(v.Color.G()) / 255,
			ColorB: float32(v.Color.B()) / 255,
			ColorA: float32(v.Color.A()) / 255,
		})
	}
	return dst
}

// Drawer keeps conversion buffers between frames.
type Drawer struct {
	batches []Batch
}

// Draw renders mesh onto dst. Vertex colors are premultiplied.
func (d *Drawer) Draw(dst *ebiten.Image, mesh *paint.Mesh) {
	d.batches = Convert(d.batches, mesh)
	if len(d.batches) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	src := white()
	for _, b := range d.batches {
		dst.DrawTriangles(b.Vertices, b.Indices, src, op)
	}
}
