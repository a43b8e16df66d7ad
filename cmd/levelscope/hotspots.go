package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/leveltools/levelscope/internal/hotspot"
	"github.com/leveltools/levelscope/internal/level"
	"github.com/leveltools/levelscope/internal/storage"
)

var hotspotsCmd = &cobra.Command{
	Use:   "hotspots [level.json]",
	Short: "Report hot-spot markers in a level",
	Long: `Scan a level's hot_spots layer and print every marker cell:
its grid position, numeric code, trigger name, and pixel coordinates.

Without a path argument the configured default level is scanned.
A level without a hot_spots layer produces no report and exits 0.

Examples:
  levelscope hotspots
  levelscope hotspots levels/rooftop.json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHotspots,
}

func runHotspots(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	path := levelArg(args, cfg)

	doc, err := level.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	count, found, err := hotspot.Report(os.Stdout, path, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}

	if !found {
		// Stdout stays silent for levels without the layer; the notice
		// goes to stderr so piped output is unaffected.
		log.Warn("level has no hot_spots layer", "level", path)
		return
	}

	// Record the scan, best-effort
	store, err := storage.Open(historyDBPath(cfg))
	if err != nil {
		log.Warn("could not open scan history", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveScan(path, "hotspots", count); err != nil {
		log.Warn("could not record scan", "error", err)
	}
}
