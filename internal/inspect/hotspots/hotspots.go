// Package hotspots registers the hot-spot marker report as an inspection.
package hotspots

import (
	"io"

	"github.com/leveltools/levelscope/internal/hotspot"
	"github.com/leveltools/levelscope/internal/inspect"
	"github.com/leveltools/levelscope/internal/level"
)

func init() {
	inspect.Register("hotspots", func() inspect.Inspection {
		return &inspection{}
	})
}

type inspection struct{}

func (*inspection) ID() string { return "hotspots" }

func (*inspection) Title() string { return "Hot-Spot Markers" }

// Run prints the hot-spot report. A document without a hot-spot layer
// produces no output and no error.
func (*inspection) Run(doc *level.Document, path string, w io.Writer) error {
	_, _, err := hotspot.Report(w, path, doc)
	return err
}
