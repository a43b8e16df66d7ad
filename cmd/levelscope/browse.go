package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leveltools/levelscope/internal/level"
	"github.com/leveltools/levelscope/internal/platform/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [level.json]",
	Short: "Browse hot spots interactively",
	Long: `Open an interactive table of the level's hot-spot markers.

Controls:
  Up/Down     - Scroll markers
  Tab/S-Tab   - Cycle category filter
  Q/Esc       - Quit

Examples:
  levelscope browse
  levelscope browse levels/rooftop.json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	path := levelArg(args, cfg)

	doc, err := level.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunBrowser(doc, path, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
		os.Exit(1)
	}
}
