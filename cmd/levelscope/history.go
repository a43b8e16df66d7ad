package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leveltools/levelscope/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [level.json]",
	Short: "Show recent scans",
	Long: `Display recent scan records from the history database.

With a path argument only scans of that level are shown.

Examples:
  levelscope history
  levelscope history levels/rooftop.json
  levelscope history --limit 25`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Maximum records to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := storage.Open(historyDBPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scan history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var records []storage.ScanRecord
	if len(args) > 0 {
		records, err = store.ScansForLevel(args[0], flagHistoryLimit)
	} else {
		records, err = store.RecentScans(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scans: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent scans")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No scans recorded yet.")
		fmt.Println()
		fmt.Println("Run 'levelscope hotspots <level.json>' to record the first scan.")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-12s  %-8s  %s\n", "Date", "Inspection", "Markers", "Level")
	fmt.Printf("  %-16s  %-12s  %-8s  %s\n", "----", "----------", "-------", "-----")

	// Print records
	for _, r := range records {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-12s  %-8d  %s\n", dateStr, r.Inspection, r.SpotCount, r.LevelPath)
	}
}
