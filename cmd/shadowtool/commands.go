package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/shadowmesh/internal/config"
	"github.com/Faultbox/shadowmesh/internal/logger"
	"github.com/Faultbox/shadowmesh/pkg/math"
	"github.com/Faultbox/shadowmesh/pkg/paint"
)

func cmdPresets(w io.Writer, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("presets", flag.ContinueOnError)
	format := fs.String("format", "table", "Output format: table or yaml")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	names := paint.PresetNames()
	theme := cfg.ThemeShadows()

	switch *format {
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tEXTRUSION\tCOLOR")
		for _, name := range names {
			s, err := paint.Preset(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%s\t%g\t%s\n", name, s.Extrusion, s.Color.Color32().Hex())
		}
		fmt.Fprintf(tw, "theme %s window\t%g\t%s\n", cfg.Render.Theme, theme.Window.Extrusion, theme.Window.Color.Color32().Hex())
		fmt.Fprintf(tw, "theme %s popup\t%g\t%s\n", cfg.Render.Theme, theme.Popup.Extrusion, theme.Popup.Color.Color32().Hex())
		return tw.Flush()

	case "yaml":
		doc := struct {
			Presets map[string]paint.Shadow `yaml:"presets"`
			Theme   paint.Shadows           `yaml:"theme"`
		}{
			Presets: make(map[string]paint.Shadow, len(names)),
			Theme:   theme,
		}
		for _, name := range names {
			s, err := paint.Preset(name)
			if err != nil {
				return err
			}
			doc.Presets[name] = s
		}
		return encodeYAML(w, doc)

	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

// tessellateRequest is the parsed input of the tessellate command.
type tessellateRequest struct {
	Shadow paint.Shadow
	Rect   math.Rect
	Radius float32
	Format string
}

func parseTessellateArgs(cfg *config.Config, args []string) (tessellateRequest, error) {
	fs := flag.NewFlagSet("tessellate", flag.ContinueOnError)
	preset := fs.String("preset", "", "Preset name")
	extrusion := fs.Float64("extrusion", -1, "Extrusion in points")
	color := fs.String("color", "", "Shadow color as #rrggbb or #rrggbbaa")
	rect := fs.String("rect", "0,0,100,50", "Rect as x0,y0,x1,y1")
	radius := fs.Float64("radius", float64(cfg.Render.CornerRadius), "Corner radius in points")
	format := fs.String("format", "stats", "Output format: stats, yaml or obj")
	if err := fs.Parse(args); err != nil {
		return tessellateRequest{}, errUsage
	}

	req := tessellateRequest{
		Shadow: cfg.ThemeShadows().Window,
		Radius: float32(*radius),
		Format: *format,
	}

	if *preset != "" {
		s, err := paint.Preset(*preset)
		if err != nil {
			return req, err
		}
		req.Shadow = s
	}
	if *extrusion >= 0 {
		req.Shadow.Extrusion = float32(*extrusion)
	}
	if *color != "" {
		c, err := paint.ParseHex(*color)
		if err != nil {
			return req, err
		}
		req.Shadow.Color = c.Rgba()
	}

	r, err := parseRect(*rect)
	if err != nil {
		return req, err
	}
	req.Rect = r

	switch req.Format {
	case "stats", "yaml", "obj":
	default:
		return req, fmt.Errorf("unknown format %q", req.Format)
	}
	return req, nil
}

func cmdTessellate(w io.Writer, cfg *config.Config, args []string) error {
	req, err := parseTessellateArgs(cfg, args)
	if err != nil {
		return err
	}

	mesh := req.Shadow.Tessellate(req.Rect, req.Radius)
	logger.Debug("tessellated shadow",
		zap.Float32("extrusion", req.Shadow.Extrusion),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()))

	switch req.Format {
	case "yaml":
		return encodeYAML(w, newMeshReport(req, &mesh, true))
	case "obj":
		return writeOBJ(w, &mesh)
	default:
		return writeStats(w, newMeshReport(req, &mesh, false))
	}
}

// parseRect parses "x0,y0,x1,y1".
func parseRect(s string) (math.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return math.Rect{}, fmt.Errorf("rect %q: want x0,y0,x1,y1", s)
	}
	var v [4]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return math.Rect{}, fmt.Errorf("rect %q: %w", s, err)
		}
		v[i] = float32(f)
	}
	return math.RectFromMinMax(math.V2(v[0], v[1]), math.V2(v[2], v[3])), nil
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
