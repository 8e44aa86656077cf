// Package generator produces puzzles with a unique solution.
package generator

import (
	"context"
	"math/rand"
	"time"

	"maninstone.dev/sudoku/internal/domain"
	"maninstone.dev/sudoku/internal/ports"
	"maninstone.dev/sudoku/internal/solver"
)

// UniqueGenerator creates puzzles by filling a full random solution and
// carving givens out while the provided Solver still reports uniqueness.
type UniqueGenerator struct {
	Solver ports.Solver
	// CarveBudget bounds the carving phase; generation returns whatever
	// it has when the budget runs out. Zero means the default.
	CarveBudget time.Duration
}

const defaultCarveBudget = 900 * time.Millisecond

func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Generate creates a puzzle with a unique solution using seed and target
// difficulty. The same seed yields the same puzzle.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var full domain.Grid
	if !fillRandom(ctx, rng, &full) {
		return nil, ports.Stats{Duration: time.Since(start)}, context.Canceled
	}

	puz := full
	var fixed [9][9]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = true
		}
	}

	order := rng.Perm(81)
	budget := g.CarveBudget
	if budget == 0 {
		budget = defaultCarveBudget
	}
	deadline := start.Add(budget)
	target := targetGivens(diff)
	givens := 81
	nodes := 0

	for _, pos := range order {
		if givens <= target || time.Now().After(deadline) {
			break
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		fixed[r][c] = false
		unique, st, err := g.Solver.Unique(ctx, &domain.Board{Values: puz})
		nodes += st.Nodes
		if err != nil || !unique {
			puz[r][c] = old
			fixed[r][c] = true
			continue
		}
		givens--
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      domain.Board{Values: puz, Fixed: fixed},
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom completes an empty grid into a full valid solution by
// backtracking with a freshly shuffled digit order at every cell.
func fillRandom(ctx context.Context, rng *rand.Rand, grid *domain.Grid) bool {
	var nums [9]uint8
	for i := range nums {
		nums[i] = uint8(i + 1)
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		if grid[r][c] != 0 {
			return dfs(nr, nc)
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			if solver.IsValid(grid, r, c, v) {
				grid[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}
