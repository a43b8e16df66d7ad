// levelscope is a terminal toolkit for inspecting game level files.
//
// Usage:
//
//	levelscope hotspots [level.json]   - Report hot-spot markers in a level
//	levelscope list                    - List available inspections
//	levelscope run <inspection> [lvl]  - Run a specific inspection
//	levelscope browse [level.json]     - Browse hot spots interactively
//	levelscope history [level.json]    - Show recent scans
//	levelscope serve [level.json]      - Serve the browser over SSH
//
// Global flags:
//
//	--config <path>  - Use a specific config file
//	--db <path>      - Set scan history database path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leveltools/levelscope/internal/config"

	// Import inspections to register them
	_ "github.com/leveltools/levelscope/internal/inspect/hotspots"
	_ "github.com/leveltools/levelscope/internal/inspect/layers"
	_ "github.com/leveltools/levelscope/internal/inspect/tiles"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "levelscope",
	Short: "Levelscope - Inspect game level files in your terminal",
	Long: `Levelscope is a terminal toolkit for inspecting tile-map level files.
It locates the special marker tiles ("hot spots") that drive gameplay
triggers and reports their grid cells and world coordinates.

Available commands:
  hotspots - Report hot-spot markers in a level
  list     - Show all available inspections
  run      - Run a specific inspection
  browse   - Browse hot spots interactively
  history  - View recent scans
  serve    - Serve the browser over SSH

Examples:
  levelscope hotspots
  levelscope hotspots levels/rooftop.json
  levelscope run layers levels/rooftop.json
  levelscope browse levels/rooftop.json
  levelscope serve levels/rooftop.json --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scan history database (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(hotspotsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the tool config, honoring the --config flag.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// levelArg resolves the level path from an optional positional argument,
// falling back to the configured default.
func levelArg(args []string, cfg config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.DefaultLevel
}

// historyDBPath resolves the scan history database path.
func historyDBPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.HistoryDB
}
