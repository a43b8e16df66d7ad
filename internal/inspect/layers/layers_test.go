package layers

import (
	"strings"
	"testing"

	"github.com/leveltools/levelscope/internal/inspect"
	"github.com/leveltools/levelscope/internal/level"
)

func TestRegistered(t *testing.T) {
	if !inspect.Exists("layers") {
		t.Fatal("layers inspection not registered")
	}
}

func TestRunOutput(t *testing.T) {
	doc := &level.Document{Layers: []level.Layer{
		{Name: "background", Type: "tiles", World: &level.World{Tiles: [][]int{{1, 2}, {3, 4}}}},
		{Type: "objects"},
	}}

	insp, err := inspect.Create("layers")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	var b strings.Builder
	if err := insp.Run(doc, "lvl.json", &b); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	expected := "Layers in lvl.json:\n" +
		"  [0] tiles (background) 2x2 tiles\n" +
		"  [1] objects (-)\n" +
		"Total: 2 layers\n"
	if b.String() != expected {
		t.Errorf("Run output:\n%q\nexpected:\n%q", b.String(), expected)
	}
}
