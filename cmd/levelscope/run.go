package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leveltools/levelscope/internal/inspect"
	"github.com/leveltools/levelscope/internal/level"
)

var runCmd = &cobra.Command{
	Use:   "run <inspection> [level.json]",
	Short: "Run a specific inspection",
	Long: `Run one of the registered inspections against a level file.

Examples:
  levelscope run hotspots
  levelscope run layers levels/rooftop.json
  levelscope run tiles levels/rooftop.json`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runRun,
}

func runRun(cmd *cobra.Command, args []string) {
	id := args[0]

	// Check if inspection exists
	if !inspect.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown inspection %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'levelscope list' to see available inspections.")
		os.Exit(1)
	}

	insp, err := inspect.Create(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating inspection: %v\n", err)
		os.Exit(1)
	}

	cfg := loadConfig()
	path := levelArg(args[1:], cfg)

	doc, err := level.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := insp.Run(doc, path, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error running inspection: %v\n", err)
		os.Exit(1)
	}
}
