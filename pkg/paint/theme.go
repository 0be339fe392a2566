package paint

// Shadows is the pair of shadows a theme uses.
type Shadows struct {
	Window Shadow `yaml:"window"`
	Popup  Shadow `yaml:"popup"`
}

// ThemeShadows returns the preset shadows for a dark or light theme.
func ThemeShadows(dark bool) Shadows {
	if dark {
		return Shadows{Window: BigDark(), Popup: SmallDark()}
	}
	return Shadows{Window: BigLight(), Popup: SmallLight()}
}
