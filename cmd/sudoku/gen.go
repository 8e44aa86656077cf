package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"maninstone.dev/sudoku/internal/domain"
	"maninstone.dev/sudoku/internal/generator"
	"maninstone.dev/sudoku/internal/solver"
)

var (
	genCount      int
	genDifficulty string
	genSeed       int64
	genTimeout    time.Duration
	genOutput     string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Sudoku puzzles",
		Long: `Generate one or more puzzles with a unique solution.

Examples:
  sudoku gen --difficulty hard
  sudoku gen -n 5 --difficulty easy --seed 42
  sudoku gen -n 10 -o puzzles.json`,
		RunE: runGen,
	}
	genCmd.Flags().IntVarP(&genCount, "number", "n", 1, "number of puzzles to generate")
	genCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", "medium", "easy|medium|hard|expert")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "base seed (0 = current time)")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 10*time.Second, "generation timeout per puzzle")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "write puzzles as JSON to this file")
	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	diff := domain.ParseDifficulty(genDifficulty)
	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := solver.NewBacktrackingSolver(solver.StrategyMRV)
	g := generator.NewUniqueGenerator(s)

	puzzles := make([]*domain.Puzzle, 0, genCount)
	for i := 0; i < genCount; i++ {
		ctx, cancel := context.WithTimeout(cmd.Context(), genTimeout)
		p, st, err := g.Generate(ctx, seed+int64(i), diff)
		cancel()
		if err != nil {
			return fmt.Errorf("generate puzzle %d: %w", i+1, err)
		}
		p.ID = uuid.New().String()
		puzzles = append(puzzles, p)
		fmt.Printf("# %s (%s, seed %d, %v)\n", p.ID, diff, p.Seed, st.Duration.Round(time.Millisecond))
		fmt.Println(domain.FormatGrid(&p.Board.Values))
	}

	if genOutput == "" {
		return nil
	}
	f, err := os.Create(genOutput)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(puzzles); err != nil {
		return err
	}
	fmt.Printf("wrote %d puzzles to %s\n", len(puzzles), genOutput)
	return nil
}
