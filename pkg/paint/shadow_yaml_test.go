package paint

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type shadowDoc struct {
	Shadow Shadow `yaml:"shadow"`
}

func TestShadowMarshalYAML(t *testing.T) {
	data, err := yaml.Marshal(SmallDark())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "extrusion: 16") {
		t.Errorf("output %q missing extrusion", out)
	}
	if !strings.Contains(out, `color: "#00000060"`) {
		t.Errorf("output %q missing quoted color", out)
	}
}

func TestShadowYAMLRoundTrip(t *testing.T) {
	for _, name := range PresetNames() {
		want, _ := Preset(name)
		data, err := yaml.Marshal(shadowDoc{Shadow: want})
		if err != nil {
			t.Fatalf("%s: Marshal: %v", name, err)
		}
		var got shadowDoc
		if err := yaml.Unmarshal(data, &got); err != nil {
			t.Fatalf("%s: Unmarshal: %v", name, err)
		}
		if got.Shadow != want {
			t.Errorf("%s: round trip = %+v, want %+v", name, got.Shadow, want)
		}
	}
}

func TestShadowUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Shadow
	}{
		{"preset name", "shadow: big-light", BigLight()},
		{"explicit", "shadow: {extrusion: 8, color: \"#00000020\"}", Shadow{Extrusion: 8, Color: Color32FromBlackAlpha(32).Rgba()}},
		{"preset override", "shadow: {preset: small-light, extrusion: 12}", Shadow{Extrusion: 12, Color: SmallLight().Color}},
		{"empty mapping", "shadow: {}", Shadow{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc shadowDoc
			if err := yaml.Unmarshal([]byte(tt.in), &doc); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if doc.Shadow != tt.want {
				t.Errorf("got %+v, want %+v", doc.Shadow, tt.want)
			}
		})
	}
}

func TestShadowUnmarshalYAMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"unknown preset", "shadow: enormous", ErrUnknownPreset},
		{"unknown base preset", "shadow: {preset: enormous}", ErrUnknownPreset},
		{"unknown field", "shadow: {blur: 3}", nil},
		{"bad extrusion", "shadow: {extrusion: wide}", nil},
		{"bad color", "shadow: {color: black}", nil},
		{"sequence", "shadow: [1, 2]", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc shadowDoc
			err := yaml.Unmarshal([]byte(tt.in), &doc)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
