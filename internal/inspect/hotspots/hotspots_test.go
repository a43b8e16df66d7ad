package hotspots

import (
	"strings"
	"testing"

	"github.com/leveltools/levelscope/internal/inspect"
	"github.com/leveltools/levelscope/internal/level"
)

func TestRunDelegatesToReport(t *testing.T) {
	doc := &level.Document{Layers: []level.Layer{
		{Type: "hot_spots", World: &level.World{Tiles: [][]int{{-1, 17}}}},
	}}

	insp, err := inspect.Create("hotspots")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	var b strings.Builder
	if err := insp.Run(doc, "lvl.json", &b); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if !strings.Contains(b.String(), "[0][1] = 17 (END_LEVEL) -> pixel (32, 0)") {
		t.Errorf("Missing marker line in output: %q", b.String())
	}
	if !strings.Contains(b.String(), "Total: 1 hot spots") {
		t.Errorf("Missing total line in output: %q", b.String())
	}
}

func TestRunNoLayerIsSilent(t *testing.T) {
	insp, err := inspect.Create("hotspots")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	var b strings.Builder
	if err := insp.Run(&level.Document{}, "lvl.json", &b); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("Expected silence without a hot-spot layer, got %q", b.String())
	}
}
