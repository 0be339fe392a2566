package paint

import (
	"image/color"
	"testing"
)

func TestColor32FromRGBA(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a uint8
		want       Color32
	}{
		{"opaque", 10, 20, 30, 255, Color32{10, 20, 30, 255}},
		{"invisible", 10, 20, 30, 0, Transparent},
		{"translucent black", 0, 0, 0, 96, Color32{0, 0, 0, 96}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Color32FromRGBA(tt.r, tt.g, tt.b, tt.a); got != tt.want {
				t.Errorf("Color32FromRGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlackAlphaRoundTrip(t *testing.T) {
	for a := 0; a <= 255; a++ {
		c := Color32FromBlackAlpha(uint8(a))
		if got := c.Rgba().Color32(); got != c {
			t.Errorf("alpha %d: round trip = %v, want %v", a, got, c)
		}
	}
}

func TestRgbaFromColor32(t *testing.T) {
	if got := White.Rgba(); got != (Rgba{1, 1, 1, 1}) {
		t.Errorf("White.Rgba() = %v, want all ones", got)
	}
	if got := Transparent.Rgba(); !got.IsTransparent() {
		t.Errorf("Transparent.Rgba() = %v, want transparent", got)
	}
}

func TestLinearMultiply(t *testing.T) {
	if got := Black.LinearMultiply(0.5); got != (Color32{0, 0, 0, 128}) {
		t.Errorf("Black * 0.5 = %v, want black @ 128", got)
	}
	if got := Black.LinearMultiply(2); got != Black {
		t.Errorf("Black * 2 = %v, want unchanged", got)
	}
	if got := Black.LinearMultiply(0); got != Transparent {
		t.Errorf("Black * 0 = %v, want transparent", got)
	}
}

func TestHex(t *testing.T) {
	if got := Color32FromBlackAlpha(96).Hex(); got != "#00000060" {
		t.Errorf("Hex() = %q, want #00000060", got)
	}
	if got := (Color32{0x33, 0x66, 0x99, 0xff}).Hex(); got != "#336699ff" {
		t.Errorf("Hex() = %q, want #336699ff", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color32
		wantErr bool
	}{
		{"#336699", Color32{0x33, 0x66, 0x99, 0xff}, false},
		{"#00000060", Color32{0, 0, 0, 96}, false},
		{"#000", Transparent, true},
		{"#00000g60", Transparent, true},
		{"#000000zz", Transparent, true},
		{"", Transparent, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUnmultipliedRoundTrip(t *testing.T) {
	c := Color32FromRGBA(200, 100, 50, 128)
	r, g, b, a := c.Unmultiplied()
	if a != 128 {
		t.Errorf("alpha = %d, want 128", a)
	}
	for _, ch := range []struct {
		got, want uint8
	}{{r, 200}, {g, 100}, {b, 50}} {
		d := int(ch.got) - int(ch.want)
		if d < -2 || d > 2 {
			t.Errorf("channel = %d, want %d +-2", ch.got, ch.want)
		}
	}
}

func TestColor32ImplementsColor(t *testing.T) {
	var c color.Color = Color32{0x10, 0x20, 0x30, 0x80}
	r, g, b, a := c.RGBA()
	if r != 0x1010 || g != 0x2020 || b != 0x3030 || a != 0x8080 {
		t.Errorf("RGBA() = %#x %#x %#x %#x, want 0x1010 0x2020 0x3030 0x8080", r, g, b, a)
	}
}
