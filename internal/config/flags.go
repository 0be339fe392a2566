package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagTheme      = flag.String("theme", "", "Theme: dark or light")
	flagNoAA       = flag.Bool("no-aa", false, "Disable anti-aliasing of panels")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagTheme != "" {
		cfg.Render.Theme = *flagTheme
	}
	if *flagNoAA {
		cfg.Render.Tessellation.AntiAlias = false
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}
