package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engines/internal/domain"
	"svw.info/sudoku-engines/internal/render"
	"svw.info/sudoku-engines/internal/solver"
)

var (
	solveFile  string
	reduceFile string
)

var solveCmd = &cobra.Command{
	Use:   "solve [puzzle]",
	Short: "Solve a puzzle with the backtracking engine",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := readPuzzle(args, solveFile)
		if err != nil {
			return err
		}
		out, st, err := solver.NewBacktrackingSolver().Solve(cmd.Context(), b)
		if err != nil {
			if errors.Is(err, solver.ErrUnsolvable) {
				return fmt.Errorf("unsolvable after %d search steps", st.Nodes)
			}
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), render.Text(out))
		fmt.Fprintf(cmd.OutOrStdout(), "\nsolved in %v (%d search steps)\n", st.Duration, st.Nodes)
		return nil
	},
}

var reduceCmd = &cobra.Command{
	Use:   "reduce [puzzle]",
	Short: "Narrow a puzzle with the constraint-propagation engine",
	Long: `reduce applies naked-singles propagation only. Puzzles needing deeper
inference come back partially reduced, with the remaining candidates of
every open cell listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := readPuzzle(args, reduceFile)
		if err != nil {
			return err
		}
		rd, st, err := solver.NewPropagationSolver().Reduce(cmd.Context(), b)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), render.Reduction(rd))
		fmt.Fprintf(cmd.OutOrStdout(), "%d eliminations in %v\n", st.Nodes, st.Duration)
		return nil
	},
}

// readPuzzle takes the puzzle from the argument, or from --file, or stdin
// when the file is "-".
func readPuzzle(args []string, file string) (*domain.Board, error) {
	switch {
	case len(args) == 1:
		return domain.Parse(args[0])
	case file == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return domain.Parse(string(data))
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		return domain.Parse(strings.TrimSpace(string(data)))
	default:
		return nil, errors.New("pass the puzzle as an argument or via --file")
	}
}

func init() {
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "read the puzzle from a file ('-' for stdin)")
	reduceCmd.Flags().StringVarP(&reduceFile, "file", "f", "", "read the puzzle from a file ('-' for stdin)")
	rootCmd.AddCommand(solveCmd, reduceCmd)
}
