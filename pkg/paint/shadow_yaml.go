package paint

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the shadow as {extrusion: <float>, color: "#rrggbbaa"}.
func (s Shadow) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "extrusion"},
			{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(float64(s.Extrusion), 'g', -1, 32)},
			{Kind: yaml.ScalarNode, Value: "color"},
			{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: s.Color.Color32().Hex()},
		},
	}, nil
}

// UnmarshalYAML accepts a preset name, or a mapping with an optional preset
// base and extrusion/color overrides:
//
//	shadow: big-dark
//	shadow: {preset: small-light, extrusion: 12}
//	shadow: {extrusion: 16, color: "#00000060"}
func (s *Shadow) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		p, err := Preset(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*s = p
		return nil
	case yaml.MappingNode:
	default:
		return fmt.Errorf("line %d: shadow must be a preset name or a mapping", value.Line)
	}

	var out Shadow
	var extrusion, color *yaml.Node
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		switch key.Value {
		case "preset":
			p, err := Preset(val.Value)
			if err != nil {
				return fmt.Errorf("line %d: %w", val.Line, err)
			}
			out = p
		case "extrusion":
			extrusion = val
		case "color":
			color = val
		default:
			return fmt.Errorf("line %d: unknown shadow field %q", key.Line, key.Value)
		}
	}

	if extrusion != nil {
		f, err := strconv.ParseFloat(extrusion.Value, 32)
		if err != nil {
			return fmt.Errorf("line %d: extrusion: %w", extrusion.Line, err)
		}
		out.Extrusion = float32(f)
	}
	if color != nil {
		c, err := ParseHex(color.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", color.Line, err)
		}
		out.Color = c.Rgba()
	}

	*s = out
	return nil
}
