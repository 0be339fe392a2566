package paint

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Color32 is an sRGB color with premultiplied alpha, one byte per channel.
// This is the per-vertex color format of a Mesh.
type Color32 [4]uint8

// Common colors.
var (
	Transparent = Color32{0, 0, 0, 0}
	Black       = Color32{0, 0, 0, 255}
	White       = Color32{255, 255, 255, 255}
)

// Color32FromBlackAlpha returns black at the given opacity.
func Color32FromBlackAlpha(a uint8) Color32 {
	return Color32{0, 0, 0, a}
}

// Color32FromRGBA premultiplies an unmultiplied sRGB color.
// Premultiplication happens in linear space.
func Color32FromRGBA(r, g, b, a uint8) Color32 {
	if a == 255 {
		return Color32{r, g, b, 255}
	}
	if a == 0 {
		return Transparent
	}
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	lr, lg, lb := c.LinearRgb()
	fa := float64(a) / 255
	pr, pg, pb := colorful.LinearRgb(lr*fa, lg*fa, lb*fa).Clamped().RGB255()
	return Color32{pr, pg, pb, a}
}

// R returns the premultiplied red channel.
func (c Color32) R() uint8 { return c[0] }

// G returns the premultiplied green channel.
func (c Color32) G() uint8 { return c[1] }

// B returns the premultiplied blue channel.
func (c Color32) B() uint8 { return c[2] }

// A returns the alpha channel.
func (c Color32) A() uint8 { return c[3] }

// IsOpaque reports whether alpha is 255.
func (c Color32) IsOpaque() bool {
	return c[3] == 255
}

// IsTransparent reports whether every channel is zero, i.e. drawing it has no effect.
func (c Color32) IsTransparent() bool {
	return c == Transparent
}

// RGBA implements color.Color. The channels are already premultiplied.
func (c Color32) RGBA() (r, g, b, a uint32) {
	r = uint32(c[0]) * 0x101
	g = uint32(c[1]) * 0x101
	b = uint32(c[2]) * 0x101
	a = uint32(c[3]) * 0x101
	return r, g, b, a
}

// Rgba converts to linear premultiplied floats.
func (c Color32) Rgba() Rgba {
	return RgbaFromColor32(c)
}

// LinearMultiply scales the color, alpha included, by factor in linear space.
func (c Color32) LinearMultiply(factor float32) Color32 {
	if factor >= 1 {
		return c
	}
	return c.Rgba().Multiply(factor).Color32()
}

// Unmultiplied returns the sRGB channels with alpha divided out.
func (c Color32) Unmultiplied() (r, g, b, a uint8) {
	switch c[3] {
	case 255:
		return c[0], c[1], c[2], 255
	case 0:
		return 0, 0, 0, 0
	}
	lin := c.Rgba()
	fa := float64(c[3]) / 255
	r, g, b = colorful.LinearRgb(float64(lin[0])/fa, float64(lin[1])/fa, float64(lin[2])/fa).Clamped().RGB255()
	return r, g, b, c[3]
}

// Hex formats the unmultiplied color as "#rrggbbaa".
func (c Color32) Hex() string {
	r, g, b, a := c.Unmultiplied()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// ParseHex parses "#rrggbb" or "#rrggbbaa" as an unmultiplied sRGB color.
func ParseHex(s string) (Color32, error) {
	var alpha uint64 = 255
	switch len(s) {
	case 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Transparent, fmt.Errorf("parse alpha of %q: %w", s, err)
		}
		alpha = a
		s = s[:7]
	default:
		return Transparent, fmt.Errorf("parse color %q: expected #rrggbb or #rrggbbaa", s)
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return Transparent, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return Color32FromRGBA(r, g, b, uint8(alpha)), nil
}

// Rgba is a linear-space color with premultiplied alpha.
type Rgba [4]float32

// RgbaFromColor32 decodes the sRGB channels to linear space.
func RgbaFromColor32(c Color32) Rgba {
	r, g, b := colorful.Color{
		R: float64(c[0]) / 255,
		G: float64(c[1]) / 255,
		B: float64(c[2]) / 255,
	}.LinearRgb()
	return Rgba{float32(r), float32(g), float32(b), float32(c[3]) / 255}
}

// RgbaFromBlackAlpha returns black at the given opacity in [0, 1].
func RgbaFromBlackAlpha(a float32) Rgba {
	return Rgba{0, 0, 0, a}
}

// R returns the linear premultiplied red channel.
func (c Rgba) R() float32 { return c[0] }

// G returns the linear premultiplied green channel.
func (c Rgba) G() float32 { return c[1] }

// B returns the linear premultiplied blue channel.
func (c Rgba) B() float32 { return c[2] }

// A returns the alpha channel.
func (c Rgba) A() float32 { return c[3] }

// IsTransparent reports whether alpha and color are all zero.
func (c Rgba) IsTransparent() bool {
	return c == Rgba{}
}

// Multiply scales every channel, alpha included.
func (c Rgba) Multiply(factor float32) Rgba {
	return Rgba{c[0] * factor, c[1] * factor, c[2] * factor, c[3] * factor}
}

// Color32 gamma-encodes to premultiplied sRGB bytes. Channels are clamped to [0, 1].
func (c Rgba) Color32() Color32 {
	r, g, b := colorful.LinearRgb(float64(c[0]), float64(c[1]), float64(c[2])).Clamped().RGB255()
	return Color32{r, g, b, unitToByte(c[3])}
}

func unitToByte(f float32) uint8 {
	if !(f > 0) {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(math.Round(float64(f) * 255))
}
