package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve 9x9 Sudoku puzzles by exhaustive search or constraint propagation",
	Long: `sudoku bundles two independent solving engines behind one CLI:

  solve   exhaustive depth-first search with chronological backtracking
  reduce  naked-singles constraint propagation (may leave cells open)
  serve   JSON API exposing both engines

Puzzles are given as 81 characters, row-major, with '0' or '.' for empty
cells; whitespace is ignored.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
