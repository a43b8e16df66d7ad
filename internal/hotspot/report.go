package hotspot

import (
	"fmt"
	"io"

	"github.com/leveltools/levelscope/internal/level"
)

// Report scans doc's hot-spot layer and writes the marker report to w:
// a header naming path, one line per marker with its grid cell, code,
// label and pixel coordinates, and a trailing total. If the document has
// no hot-spot layer nothing is written and found is false; the caller
// decides whether to surface that.
func Report(w io.Writer, path string, doc *level.Document) (count int, found bool, err error) {
	layer := doc.LayerByType(LayerType)
	if layer == nil {
		return 0, false, nil
	}

	if _, err := fmt.Fprintf(w, "Hot spots in %s:\n", path); err != nil {
		return 0, true, err
	}

	spots := Scan(layer)
	for _, s := range spots {
		_, err := fmt.Fprintf(w, "  [%d][%d] = %d (%s) -> pixel (%d, %d)\n",
			s.Row, s.Col, int(s.Code), s.Code.Name(), s.PixelX(), s.PixelY())
		if err != nil {
			return len(spots), true, err
		}
	}

	if _, err := fmt.Fprintf(w, "Total: %d hot spots\n", len(spots)); err != nil {
		return len(spots), true, err
	}

	return len(spots), true, nil
}
