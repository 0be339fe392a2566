// Package viewer implements the interactive shadow preview.
package viewer

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/shadowmesh/internal/config"
	"github.com/Faultbox/shadowmesh/internal/engine/input"
	"github.com/Faultbox/shadowmesh/internal/engine/meshgl"
	"github.com/Faultbox/shadowmesh/internal/engine/screenshot"
	"github.com/Faultbox/shadowmesh/internal/engine/window"
	"github.com/Faultbox/shadowmesh/internal/logger"
	"github.com/Faultbox/shadowmesh/pkg/math"
	"github.com/Faultbox/shadowmesh/pkg/paint"
)

const title = "shadowview"

// Viewer is the preview application.
type Viewer struct {
	running  bool
	window   *window.Window
	renderer *meshgl.Renderer
	input    *input.Input
	scene    *Scene
	capture  *screenshot.Capture
	frame    paint.Mesh
	log      *zap.Logger
}

// New creates the window, GL renderer and scene.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		log:     logger.Named("viewer"),
		scene:   NewScene(cfg),
		capture: screenshot.New("screenshots", title),
	}
	v.log.Info("initializing viewer",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("theme", cfg.Render.Theme))

	// Create window (this also creates OpenGL context)
	var err error
	v.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	w, h := v.window.GetSize()
	v.renderer, err = meshgl.New(w, h)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()
	v.updateTitle()
	return v, nil
}

// Run starts the main loop and returns when the window is closed.
func (v *Viewer) Run() error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting main loop")

	for v.running {
		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}
		v.handleInput()

		// 2. Render
		v.render()

		if v.input.IsKeyPressed(sdl.K_F12) {
			v.saveScreenshot()
		}

		// 3. Present (swap buffers)
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("vertices", len(v.frame.Vertices)),
				zap.Int("triangles", v.frame.TriangleCount()))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleInput() {
	if w, h, ok := v.input.Resized(); ok {
		v.renderer.Resize(w, h)
	}
	if v.input.IsKeyPressed(sdl.K_t) {
		v.scene.ToggleTheme()
		v.log.Info("theme changed", zap.String("theme", v.scene.Theme()))
		v.updateTitle()
	}
	if v.input.IsKeyPressed(sdl.K_a) {
		v.scene.ToggleAntiAlias()
		v.log.Info("anti-aliasing changed", zap.Bool("enabled", v.scene.AntiAlias()))
		v.updateTitle()
	}
}

// render draws the current frame.
func (v *Viewer) render() {
	w, h := v.window.GetSize()
	dw, dh := v.window.GetDrawableSize()
	mx, my := v.input.Mouse()

	v.scene.Build(&v.frame, math.V2(float32(w), float32(h)), math.V2(float32(mx), float32(my)))

	v.renderer.Clear(v.scene.Background(), dw, dh)
	v.renderer.Begin()
	v.renderer.Add(&v.frame)
	v.renderer.End()
}

func (v *Viewer) saveScreenshot() {
	dw, dh := v.window.GetDrawableSize()
	pixels := make([]byte, dw*dh*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(dw), int32(dh), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	img, err := screenshot.FromGLPixels(pixels, dw, dh)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	path, err := v.capture.Save(img)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

func (v *Viewer) updateTitle() {
	aa := "on"
	if !v.scene.AntiAlias() {
		aa = "off"
	}
	v.window.SetTitle(fmt.Sprintf("%s - %s theme, panel AA %s (T theme, A anti-alias, F12 screenshot)", title, v.scene.Theme(), aa))
}

// Close releases the renderer and window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
