// Package tiles registers an inspection that reports tile usage per layer.
package tiles

import (
	"fmt"
	"io"
	"sort"

	"github.com/leveltools/levelscope/internal/inspect"
	"github.com/leveltools/levelscope/internal/level"
)

func init() {
	inspect.Register("tiles", func() inspect.Inspection {
		return &inspection{}
	})
}

type inspection struct{}

func (*inspection) ID() string { return "tiles" }

func (*inspection) Title() string { return "Tile Statistics" }

// Run prints, for each tile layer, how many cells hold a real tile value
// and which distinct values appear. Cells with -1 or 0 count as empty.
func (*inspection) Run(doc *level.Document, path string, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Tile usage in %s:\n", path); err != nil {
		return err
	}

	for i := range doc.Layers {
		l := &doc.Layers[i]
		if l.World == nil {
			continue
		}

		total := 0
		used := 0
		seen := make(map[int]int)
		for _, row := range l.World.Tiles {
			for _, val := range row {
				total++
				if val == -1 || val == 0 {
					continue
				}
				used++
				seen[val]++
			}
		}

		_, err := fmt.Fprintf(w, "  [%d] %s: %d/%d cells used\n", i, l.Type, used, total)
		if err != nil {
			return err
		}

		values := make([]int, 0, len(seen))
		for v := range seen {
			values = append(values, v)
		}
		sort.Ints(values)

		for _, v := range values {
			if _, err := fmt.Fprintf(w, "      value %d x%d\n", v, seen[v]); err != nil {
				return err
			}
		}
	}

	return nil
}
