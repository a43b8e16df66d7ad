// Package layers registers an inspection that summarizes a document's layers.
package layers

import (
	"fmt"
	"io"

	"github.com/leveltools/levelscope/internal/inspect"
	"github.com/leveltools/levelscope/internal/level"
)

func init() {
	inspect.Register("layers", func() inspect.Inspection {
		return &inspection{}
	})
}

type inspection struct{}

func (*inspection) ID() string { return "layers" }

func (*inspection) Title() string { return "Layer Summary" }

// Run prints one line per layer: index, type tag, optional name, and grid
// dimensions for tile layers.
func (*inspection) Run(doc *level.Document, path string, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Layers in %s:\n", path); err != nil {
		return err
	}

	for i := range doc.Layers {
		l := &doc.Layers[i]

		name := l.Name
		if name == "" {
			name = "-"
		}

		if l.World != nil {
			_, err := fmt.Fprintf(w, "  [%d] %s (%s) %dx%d tiles\n",
				i, l.Type, name, l.Rows(), l.Cols())
			if err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "  [%d] %s (%s)\n", i, l.Type, name); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Total: %d layers\n", len(doc.Layers))
	return err
}
