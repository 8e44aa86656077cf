package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"maninstone.dev/sudoku/internal/domain"
	"maninstone.dev/sudoku/internal/solver"
)

var (
	solveStrategy string
	solveTimeout  time.Duration
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve a puzzle given as an 81-character string",
		Long: `Solve a puzzle given as an 81-character string ('.' or '0' = empty),
either as an argument or on stdin.

Examples:
  sudoku solve 53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79
  cat puzzle.txt | sudoku solve --strategy rowmajor`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}
	solveCmd.Flags().StringVar(&solveStrategy, "strategy", "mrv", "cell selection: mrv|rowmajor")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 30*time.Second, "solve timeout")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	var input string
	if len(args) == 1 {
		input = args[0]
	} else {
		sc := bufio.NewScanner(os.Stdin)
		if !sc.Scan() {
			return fmt.Errorf("no puzzle on stdin: %w", sc.Err())
		}
		input = sc.Text()
	}

	grid, err := domain.ParseGrid(input)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), solveTimeout)
	defer cancel()

	s := solver.NewBacktrackingSolver(solver.ParseStrategy(solveStrategy))
	out, st, err := s.Solve(ctx, &domain.Board{Values: grid})
	if err != nil {
		return fmt.Errorf("solve: %w (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	fmt.Print(domain.Pretty(&out.Values))
	fmt.Printf("solved in %v, %d nodes\n", st.Duration.Round(time.Microsecond), st.Nodes)
	return nil
}
