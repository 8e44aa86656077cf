package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maninstone.dev/sudoku/internal/domain"
	"maninstone.dev/sudoku/internal/ports"
)

var (
	ErrNoSolution    = errors.New("puzzle has no solution")
	ErrInvalidPuzzle = errors.New("puzzle violates Sudoku constraints")
	ErrCanceled      = errors.New("solve canceled")
)

// Strategy selects how the backtracking search picks its next cell.
type Strategy int

const (
	// StrategyRowMajor branches on the first empty cell in scan order.
	StrategyRowMajor Strategy = iota
	// StrategyMRV branches on the empty cell with the fewest legal digits.
	StrategyMRV
)

// ParseStrategy maps a label to a Strategy, defaulting to MRV.
func ParseStrategy(s string) Strategy {
	switch s {
	case "rowmajor", "row-major", "naive":
		return StrategyRowMajor
	default:
		return StrategyMRV
	}
}

// BacktrackingSolver implements ports.Solver on top of the engine
// functions. Unlike the raw engine it rejects malformed input up front,
// counts search nodes, and honors context cancellation.
type BacktrackingSolver struct {
	strategy Strategy
}

func NewBacktrackingSolver(strategy Strategy) *BacktrackingSolver {
	return &BacktrackingSolver{strategy: strategy}
}

// checkGivens rejects out-of-range digits and pre-filled conflicts before
// any search runs. Without this a conflicted board can be "completed"
// around its conflict and reported as solved.
func checkGivens(g *domain.Grid) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			if v > 9 {
				return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidPuzzle, r, c, v)
			}
			g[r][c] = 0
			ok := IsValid(g, r, c, v)
			g[r][c] = v
			if !ok {
				return fmt.Errorf("%w: duplicate %d at (%d,%d)", ErrInvalidPuzzle, v, r, c)
			}
		}
	}
	return nil
}

// nextEmpty returns the first empty cell in row-major order.
func nextEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	if err := checkGivens(&grid); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := s.pick(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if IsValid(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if ctx.Err() != nil {
			return nil, st, ErrCanceled
		}
		return nil, st, ErrNoSolution
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// pick applies the configured cell-selection strategy.
func (s *BacktrackingSolver) pick(g *domain.Grid) (int, int, bool) {
	if s.strategy == StrategyMRV {
		cell, ok := FindNextCell(g)
		return cell.Row, cell.Col, ok
	}
	return nextEmpty(g)
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	if err := checkGivens(&grid); err != nil {
		return false, ports.Stats{Duration: time.Since(start)}, err
	}
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		r, c, ok := s.pick(&grid)
		if !ok {
			count++
			return count >= 2
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if IsValid(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
