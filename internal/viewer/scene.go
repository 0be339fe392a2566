package viewer

import (
	"github.com/Faultbox/shadowmesh/internal/config"
	"github.com/Faultbox/shadowmesh/pkg/math"
	"github.com/Faultbox/shadowmesh/pkg/paint"
)

// Popup size in points.
var popupSize = math.V2(220, 140)

// popupOffset keeps the popup clear of the cursor.
var popupOffset = math.V2(16, 16)

// Scene lays out a window panel and a popup following the cursor, each casting
// its theme shadow, and tessellates them into one mesh per frame.
type Scene struct {
	cfg  config.Config
	tess *paint.Tessellator

	shadows paint.Shadows
	panel   paint.Color32
	bg      paint.Color32

	scratch paint.Mesh
}

// NewScene creates a scene from a validated config. The config is copied.
func NewScene(cfg *config.Config) *Scene {
	s := &Scene{cfg: *cfg}
	s.apply()
	return s
}

func (s *Scene) apply() {
	s.tess = paint.NewTessellator(s.cfg.Render.Tessellation)
	s.shadows = s.cfg.ThemeShadows()
	s.panel = s.cfg.PanelColor()
	bg, err := s.cfg.BackgroundColor()
	if err != nil {
		bg = paint.Black
	}
	s.bg = bg
}

// ToggleTheme switches between the dark and light theme.
func (s *Scene) ToggleTheme() {
	if s.cfg.DarkTheme() {
		s.cfg.Render.Theme = config.ThemeLight
	} else {
		s.cfg.Render.Theme = config.ThemeDark
	}
	// An explicit background belongs to the theme it was configured for.
	s.cfg.Render.Background = ""
	s.apply()
}

// ToggleAntiAlias switches feathering of the panel edges. Shadows are always feathered.
func (s *Scene) ToggleAntiAlias() {
	s.cfg.Render.Tessellation.AntiAlias = !s.cfg.Render.Tessellation.AntiAlias
	s.apply()
}

// Theme returns the active theme name.
func (s *Scene) Theme() string {
	return s.cfg.Render.Theme
}

// AntiAlias reports whether panel edges are feathered.
func (s *Scene) AntiAlias() bool {
	return s.cfg.Render.Tessellation.AntiAlias
}

// Background returns the clear color.
func (s *Scene) Background() paint.Color32 {
	return s.bg
}

// Layout returns the window panel centered on screen and the popup next to mouse.
// The popup is kept inside the screen when it fits.
func (s *Scene) Layout(screen, mouse math.Vec2) (window, popup math.Rect) {
	margin := screen.Scale(0.2)
	window = math.RectFromMinMax(margin, screen.Sub(margin))

	pos := mouse.Add(popupOffset)
	pos.X = min(pos.X, screen.X-popupSize.X)
	pos.Y = min(pos.Y, screen.Y-popupSize.Y)
	pos = pos.Max(math.V2(0, 0))
	popup = math.RectFromMinSize(pos, popupSize)
	return window, popup
}

// Build replaces out with the frame's triangles, back to front: window shadow,
// window panel, popup shadow, popup panel.
func (s *Scene) Build(out *paint.Mesh, screen, mouse math.Vec2) {
	out.Clear()
	window, popup := s.Layout(screen, mouse)
	radius := s.cfg.Render.CornerRadius

	s.addPanel(out, s.shadows.Window, window, radius)
	s.addPanel(out, s.shadows.Popup, popup, radius)
}

func (s *Scene) addPanel(out *paint.Mesh, shadow paint.Shadow, rect math.Rect, radius float32) {
	shadowMesh := shadow.Tessellate(rect, radius)
	out.Append(&shadowMesh)

	s.scratch.Clear()
	s.tess.TessellateRect(paint.FilledRect(rect, radius, s.panel), &s.scratch)
	out.Append(&s.scratch)
}
