// Package config handles viewer and tool configuration loading.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/shadowmesh/pkg/paint"
)

// ErrInvalid is wrapped by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Render  RenderConfig  `yaml:"render"`
	Shadows ShadowsConfig `yaml:"shadows"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings for the preview windows.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// RenderConfig holds drawing settings.
type RenderConfig struct {
	Theme        string                    `yaml:"theme"`
	Background   string                    `yaml:"background"` // "#rrggbb", empty for the theme default
	CornerRadius float32                   `yaml:"corner_radius"`
	Tessellation paint.TessellationOptions `yaml:"tessellation"` // used for panels, not shadows
}

// ShadowsConfig overrides the theme shadows. Nil fields keep the theme preset.
type ShadowsConfig struct {
	Window *paint.Shadow `yaml:"window"`
	Popup  *paint.Shadow `yaml:"popup"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Render: RenderConfig{
			Theme:        ThemeDark,
			CornerRadius: 6,
			Tessellation: paint.DefaultTessellationOptions(),
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DarkTheme reports whether the dark theme is selected.
func (c *Config) DarkTheme() bool {
	return c.Render.Theme != ThemeLight
}

// ThemeShadows returns the shadows of the selected theme with any overrides applied.
func (c *Config) ThemeShadows() paint.Shadows {
	shadows := paint.ThemeShadows(c.DarkTheme())
	if c.Shadows.Window != nil {
		shadows.Window = *c.Shadows.Window
	}
	if c.Shadows.Popup != nil {
		shadows.Popup = *c.Shadows.Popup
	}
	return shadows
}

// BackgroundColor returns the configured background, or the theme default.
func (c *Config) BackgroundColor() (paint.Color32, error) {
	if c.Render.Background == "" {
		if c.DarkTheme() {
			return paint.Color32{27, 27, 27, 255}, nil
		}
		return paint.Color32{248, 248, 248, 255}, nil
	}
	bg, err := paint.ParseHex(c.Render.Background)
	if err != nil {
		return paint.Transparent, fmt.Errorf("background: %w", err)
	}
	return bg, nil
}

// PanelColor returns the fill for the rects that cast the shadows.
func (c *Config) PanelColor() paint.Color32 {
	if c.DarkTheme() {
		return paint.Color32{48, 48, 48, 255}
	}
	return paint.Color32{255, 255, 255, 255}
}

// Validate checks settings that would otherwise fail later in a confusing way.
func (c *Config) Validate() error {
	switch c.Render.Theme {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("%w: theme %q, want %q or %q", ErrInvalid, c.Render.Theme, ThemeDark, ThemeLight)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Render.CornerRadius < 0 {
		return fmt.Errorf("%w: negative corner radius %v", ErrInvalid, c.Render.CornerRadius)
	}
	if c.Render.Tessellation.AASize < 0 {
		return fmt.Errorf("%w: negative aa_size %v", ErrInvalid, c.Render.Tessellation.AASize)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
