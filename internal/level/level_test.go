package level

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeLevel writes content to a temp file and returns its path.
func writeLevel(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "level.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestLoadValidDocument(t *testing.T) {
	path := writeLevel(t, `{
		"layers": [
			{"name": "bg", "type": "background"},
			{"name": "markers", "type": "hot_spots", "world": {"tiles": [[0, 1], [-1, 13]]}}
		]
	}`)

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(doc.Layers) != 2 {
		t.Fatalf("Expected 2 layers, got %d", len(doc.Layers))
	}

	layer := doc.LayerByType("hot_spots")
	if layer == nil {
		t.Fatal("LayerByType(hot_spots) returned nil")
	}
	if layer.Name != "markers" {
		t.Errorf("Layer name = %q, expected %q", layer.Name, "markers")
	}
	if layer.Rows() != 2 || layer.Cols() != 2 {
		t.Errorf("Grid size = %dx%d, expected 2x2", layer.Rows(), layer.Cols())
	}
	if layer.World.Tiles[1][1] != 13 {
		t.Errorf("Tiles[1][1] = %d, expected 13", layer.World.Tiles[1][1])
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("Load() succeeded for missing file")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestLoadMalformedContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", `{"layers": [`},
		{"not json at all", `hello world`},
		{"wrong layers shape", `{"layers": 42}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeLevel(t, tc.content))
			if err == nil {
				t.Fatal("Load() succeeded for malformed content")
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestLayerByTypeAbsent(t *testing.T) {
	path := writeLevel(t, `{"layers": [{"type": "background"}]}`)

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if layer := doc.LayerByType("hot_spots"); layer != nil {
		t.Errorf("LayerByType(hot_spots) = %+v, expected nil", layer)
	}
}

func TestLayerByTypeFirstMatch(t *testing.T) {
	path := writeLevel(t, `{
		"layers": [
			{"name": "first", "type": "hot_spots", "world": {"tiles": [[1]]}},
			{"name": "second", "type": "hot_spots", "world": {"tiles": [[2]]}}
		]
	}`)

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	layer := doc.LayerByType("hot_spots")
	if layer == nil || layer.Name != "first" {
		t.Errorf("Expected first matching layer, got %+v", layer)
	}
}

func TestNonTileLayerDimensions(t *testing.T) {
	var l Layer
	if l.Rows() != 0 || l.Cols() != 0 {
		t.Errorf("Empty layer dimensions = %dx%d, expected 0x0", l.Rows(), l.Cols())
	}
}
