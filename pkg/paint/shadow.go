// Package paint turns soft shadows and rounded rectangles into colored
// triangle meshes ready for GPU upload.
package paint

import (
	"errors"
	"fmt"

	"github.com/Faultbox/shadowmesh/pkg/math"
)

// ErrUnknownPreset is returned by Preset for names outside PresetNames.
var ErrUnknownPreset = errors.New("unknown shadow preset")

// Shadow is the color and fuzziness of a soft rectangular shadow.
// The zero value is a fully transparent shadow with a hard edge.
type Shadow struct {
	// Extrusion is how far the shadow reaches outside the rect it belongs to,
	// which is also the width of its soft penumbra.
	Extrusion float32

	// Color of the opaque center of the shadow.
	Color Rgba
}

// SmallDark is for tooltips, menus and other small popups on a dark theme.
func SmallDark() Shadow {
	return Shadow{Extrusion: 16, Color: Color32FromBlackAlpha(96).Rgba()}
}

// SmallLight is for tooltips, menus and other small popups on a light theme.
func SmallLight() Shadow {
	return Shadow{Extrusion: 16, Color: Color32FromBlackAlpha(32).Rgba()}
}

// BigDark is subtle and nice on dark backgrounds.
func BigDark() Shadow {
	return Shadow{Extrusion: 32, Color: Color32FromBlackAlpha(96).Rgba()}
}

// BigLight is subtle and nice on white backgrounds.
func BigLight() Shadow {
	return Shadow{Extrusion: 32, Color: Color32FromBlackAlpha(40).Rgba()}
}

var presets = []struct {
	name string
	make func() Shadow
}{
	{"small-dark", SmallDark},
	{"small-light", SmallLight},
	{"big-dark", BigDark},
	{"big-light", BigLight},
}

// PresetNames lists the names accepted by Preset.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.name
	}
	return names
}

// Preset returns the named preset shadow.
func Preset(name string) (Shadow, error) {
	for _, p := range presets {
		if p.name == name {
			return p.make(), nil
		}
	}
	return Shadow{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// extrusion returns Extrusion with negative and NaN values treated as zero.
func (s Shadow) extrusion() float32 {
	if !(s.Extrusion > 0) {
		return 0
	}
	return s.Extrusion
}

// Shape returns the filled rounded rect the shadow of rect consists of: rect
// grown by half the extrusion so that the middle of the penumbra sits on the
// original edge, with the corner radius grown by the same amount.
func (s Shadow) Shape(rect math.Rect, cornerRadius float32) RectShape {
	half := 0.5 * s.extrusion()
	if !(cornerRadius > 0) {
		cornerRadius = 0
	}
	return RectShape{
		Rect:         rect.Expand(half),
		CornerRadius: cornerRadius + half,
		Fill:         s.Color.Color32(),
	}
}

// TessellationOptions returns the anti-aliasing setup for the shadow: a
// feather as wide as the extrusion. Zero extrusion gives a hard edge.
func (s Shadow) TessellationOptions() TessellationOptions {
	return TessellationOptions{
		AntiAlias: true,
		AASize:    s.extrusion(),
	}
}

// Tessellate returns the mesh of the shadow cast by rect with the given corner
// radius. No culling or clipping is applied.
func (s Shadow) Tessellate(rect math.Rect, cornerRadius float32) Mesh {
	return s.TessellateWith(NewTessellator(s.TessellationOptions()), rect, cornerRadius)
}

// TessellateWith fills the shadow shape using t, which is expected to be set
// up with TessellationOptions.
func (s Shadow) TessellateWith(t RectTessellator, rect math.Rect, cornerRadius float32) Mesh {
	var mesh Mesh
	t.TessellateRect(s.Shape(rect, cornerRadius), &mesh)
	return mesh
}
