package main

import (
	"testing"

	"github.com/Faultbox/shadowmesh/internal/config"
	"github.com/Faultbox/shadowmesh/pkg/math"
	"github.com/Faultbox/shadowmesh/pkg/paint"
)

func TestPresetGrid(t *testing.T) {
	cells := presetGrid(math.V2(800, 600))
	if len(cells) != len(paint.PresetNames()) {
		t.Fatalf("len(cells) = %d, want %d", len(cells), len(paint.PresetNames()))
	}
	want := math.RectFromMinMax(math.V2(100, 75), math.V2(300, 225))
	if cells[0].rect != want {
		t.Errorf("cells[0].rect = %v, want %v", cells[0].rect, want)
	}
	if cells[0].name != "small-dark" {
		t.Errorf("cells[0].name = %q, want small-dark", cells[0].name)
	}
	last := cells[len(cells)-1].rect
	if want := math.RectFromMinMax(math.V2(500, 375), math.V2(700, 525)); last != want {
		t.Errorf("last rect = %v, want %v", last, want)
	}
}

func TestRebuild(t *testing.T) {
	game, err := newGame(config.Default())
	if err != nil {
		t.Fatalf("newGame() error = %v", err)
	}
	if err := game.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if game.frame.TriangleCount() == 0 {
		t.Error("frame has no triangles")
	}
	if !game.frame.IsValid() {
		t.Error("frame is not valid")
	}

	game.Layout(640, 480)
	if game.cells != nil {
		t.Error("Layout() with a new size did not invalidate the grid")
	}
}
