// Package meshgl draws paint meshes with OpenGL.
package meshgl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/shadowmesh/internal/engine/shader"
	"github.com/Faultbox/shadowmesh/pkg/math"
	"github.com/Faultbox/shadowmesh/pkg/paint"
)

// Vertex layout of paint.Vertex as uploaded: pos(2 float32) + color(4 uint8).
const (
	vertexStride = int32(unsafe.Sizeof(paint.Vertex{}))
	posOffset    = uintptr(unsafe.Offsetof(paint.Vertex{}.Pos))
	colorOffset  = uintptr(unsafe.Offsetof(paint.Vertex{}.Color))
)

const vertexShaderSource = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uProjection;

out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
	vColor = aColor;
}
`

const fragmentShaderSource = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	// Vertex colors are already premultiplied.
	FragColor = vColor;
}
`

// Renderer batches meshes during a frame and draws them in one call.
type Renderer struct {
	screenWidth  int
	screenHeight int

	program uint32
	projLoc int32

	vao uint32
	vbo uint32
	ebo uint32

	batch paint.Mesh
}

// New creates the shader and buffers. A GL context must be current.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		screenWidth:  width,
		screenHeight: height,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init gl: %w", err)
	}

	var err error
	r.program, err = shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("create mesh shader: %w", err)
	}
	r.projLoc = shader.MustGetUniform(r.program, "uProjection")

	r.createBuffers()
	return r, nil
}

// createBuffers sets up one VAO with a streaming vertex and index buffer.
func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Position attribute (location = 0): 2 floats
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, vertexStride, posOffset)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1): 4 normalized bytes
	gl.VertexAttribPointerWithOffset(1, 4, gl.UNSIGNED_BYTE, true, vertexStride, colorOffset)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Resize updates the screen dimensions in points.
func (r *Renderer) Resize(width, height int) {
	r.screenWidth = width
	r.screenHeight = height
}

// Clear fills the framebuffer with color.
func (r *Renderer) Clear(color paint.Color32, viewportW, viewportH int) {
	gl.Viewport(0, 0, int32(viewportW), int32(viewportH))
	gl.ClearColor(float32(color.R())/255, float32(color.G())/255, float32(color.B())/255, float32(color.A())/255)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	r.batch.Clear()
}

// Add queues a mesh. Meshes are drawn in the order they were added.
func (r *Renderer) Add(mesh *paint.Mesh) {
	r.batch.Append(mesh)
}

// Batch returns the meshes queued since Begin, merged into one.
func (r *Renderer) Batch() *paint.Mesh {
	return &r.batch
}

// End uploads the queued meshes and draws them.
func (r *Renderer) End() {
	if len(r.batch.Indices) == 0 {
		return
	}

	var prevBlend, prevDepth, prevCull int32
	gl.GetIntegerv(gl.BLEND, &prevBlend)
	gl.GetIntegerv(gl.DEPTH_TEST, &prevDepth)
	gl.GetIntegerv(gl.CULL_FACE, &prevCull)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := math.ScreenOrtho(float32(r.screenWidth), float32(r.screenHeight))

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.projLoc, 1, false, proj.Ptr())

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.batch.Vertices)*int(vertexStride), unsafe.Pointer(&r.batch.Vertices[0]), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(r.batch.Indices)*4, unsafe.Pointer(&r.batch.Indices[0]), gl.STREAM_DRAW)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(r.batch.Indices)), gl.UNSIGNED_INT, 0)

	gl.BindVertexArray(0)
	gl.UseProgram(0)

	if prevBlend == gl.FALSE {
		gl.Disable(gl.BLEND)
	}
	if prevDepth == gl.TRUE {
		gl.Enable(gl.DEPTH_TEST)
	}
	if prevCull == gl.TRUE {
		gl.Enable(gl.CULL_FACE)
	}
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
