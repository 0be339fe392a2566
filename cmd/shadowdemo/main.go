// shadowdemo draws every shadow preset with ebiten.
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/Faultbox/shadowmesh/internal/config"
	"github.com/Faultbox/shadowmesh/internal/ebitenmesh"
	"github.com/Faultbox/shadowmesh/internal/logger"
	"github.com/Faultbox/shadowmesh/pkg/math"
	"github.com/Faultbox/shadowmesh/pkg/paint"
)

// cell is one preset drawn in the grid.
type cell struct {
	name string
	rect math.Rect
}

// presetGrid lays the presets out in a 2x2 grid with a panel centered in each cell.
func presetGrid(screen math.Vec2) []cell {
	names := paint.PresetNames()
	cols := 2
	rows := (len(names) + cols - 1) / cols
	cellSize := math.V2(screen.X/float32(cols), screen.Y/float32(rows))

	cells := make([]cell, len(names))
	for i, name := range names {
		origin := math.V2(float32(i%cols)*cellSize.X, float32(i/cols)*cellSize.Y)
		bounds := math.RectFromMinSize(origin, cellSize)
		cells[i] = cell{name: name, rect: bounds.Expand2(cellSize.Scale(-0.25))}
	}
	return cells
}

// Game implements ebiten.Game.
type Game struct {
	cfg    *config.Config
	width  int
	height int

	bg     paint.Color32
	frame  paint.Mesh
	cells  []cell
	drawer ebitenmesh.Drawer
}

func newGame(cfg *config.Config) (*Game, error) {
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}
	return &Game{cfg: cfg, width: cfg.Window.Width, height: cfg.Window.Height, bg: bg}, nil
}

// rebuild tessellates every preset for the current screen size.
func (g *Game) rebuild() error {
	g.frame.Clear()
	g.cells = presetGrid(math.V2(float32(g.width), float32(g.height)))

	tess := paint.NewTessellator(g.cfg.Render.Tessellation)
	radius := g.cfg.Render.CornerRadius
	var panel paint.Mesh
	for _, c := range g.cells {
		shadow, err := paint.Preset(c.name)
		if err != nil {
			return err
		}
		mesh := shadow.Tessellate(c.rect, radius)
		g.frame.Append(&mesh)

		panel.Clear()
		tess.TessellateRect(paint.FilledRect(c.rect, radius, g.cfg.PanelColor()), &panel)
		g.frame.Append(&panel)
	}
	logger.Debug("rebuilt preset grid",
		zap.Int("width", g.width),
		zap.Int("height", g.height),
		zap.Int("triangles", g.frame.TriangleCount()))
	return nil
}

func (g *Game) Update() error {
	if g.cells == nil {
		return g.rebuild()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	g.drawer.Draw(screen, &g.frame)
	for _, c := range g.cells {
		s, _ := paint.Preset(c.name)
		label := fmt.Sprintf("%s  %g  %s", c.name, s.Extrusion, s.Color.Color32().Hex())
		ebitenutil.DebugPrintAt(screen, label, int(c.rect.Min.X), int(c.rect.Min.Y)+4)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.cells = nil
	}
	return g.width, g.height
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	game, err := newGame(cfg)
	if err != nil {
		logger.Error("failed to create demo", zap.Error(err))
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("shadowdemo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("demo error", zap.Error(err))
		os.Exit(1)
	}
}
