// Package level defines the on-disk level document format and its loader.
// A level is a JSON file holding an ordered list of layers; tile layers
// carry a row-major grid of integer tile values under "world".
package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Error kinds for load failures. Callers distinguish them with errors.Is.
var (
	// ErrNotFound means the path did not resolve to a readable file.
	ErrNotFound = errors.New("level: file not found")

	// ErrMalformed means the file content is not a valid level document.
	ErrMalformed = errors.New("level: malformed document")
)

// Document is a parsed level file.
type Document struct {
	Layers []Layer `json:"layers"`
}

// Layer is one named grid or object collection within a level.
// Only tile layers populate World; other layer kinds leave it nil.
type Layer struct {
	Name  string `json:"name,omitempty"`
	Type  string `json:"type"`
	World *World `json:"world,omitempty"`
}

// World holds a tile layer's grid: rows of columns, row-major.
// The grid is assumed rectangular; this is not enforced.
type World struct {
	Tiles [][]int `json:"tiles"`
}

// Load reads and parses the level document at path.
// The returned error wraps ErrNotFound for unreadable paths and
// ErrMalformed for content that does not parse as a level document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("level: cannot read %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	return &doc, nil
}

// LayerByType returns the first layer whose type tag matches t, or nil
// if the document has no such layer.
func (d *Document) LayerByType(t string) *Layer {
	if d == nil {
		return nil
	}
	for i := range d.Layers {
		if d.Layers[i].Type == t {
			return &d.Layers[i]
		}
	}
	return nil
}

// Rows returns the number of grid rows in the layer, 0 for non-tile layers.
func (l *Layer) Rows() int {
	if l == nil || l.World == nil {
		return 0
	}
	return len(l.World.Tiles)
}

// Cols returns the number of grid columns in the layer's first row,
// 0 for non-tile or empty layers.
func (l *Layer) Cols() int {
	if l == nil || l.World == nil || len(l.World.Tiles) == 0 {
		return 0
	}
	return len(l.World.Tiles[0])
}
