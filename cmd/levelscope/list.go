package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leveltools/levelscope/internal/inspect"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available inspections",
	Long:  `Shows a list of all inspections registered in levelscope.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	inspections := inspect.List()

	if len(inspections) == 0 {
		fmt.Println("No inspections available.")
		return
	}

	fmt.Println("Available inspections:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, in := range inspections {
		if len(in.ID) > maxIDLen {
			maxIDLen = len(in.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print inspections
	for _, in := range inspections {
		fmt.Printf("  %-*s  %s\n", maxIDLen, in.ID, in.Title)
	}

	fmt.Println()
	fmt.Println("Run 'levelscope run <id> [level.json]' to run an inspection.")
}
