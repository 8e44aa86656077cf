// Package solver implements 9x9 Sudoku solving by recursive backtracking.
//
// The low-level engine operates directly on a domain.Grid and comes in two
// flavors: a plain row-major search (SolveFrom) and a heuristic-guided
// search (SolveMRV) that always branches on the empty cell with the fewest
// legal digits. Both mutate the grid in place and restore it exactly when a
// branch fails, so an unsolvable grid is left untouched.
package solver

import "maninstone.dev/sudoku/internal/domain"

// IsValid reports whether digit v can be placed at (row, col) without
// repeating v in the cell's row, column, or 3x3 block. The target cell is
// assumed empty; its own zero value never matches a digit 1-9.
func IsValid(g *domain.Grid, row, col int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[row][i] == v || g[i][col] == v {
			return false
		}
	}
	br, bc := 3*(row/3), 3*(col/3)
	for r := br; r < br+3; r++ {
		for c := bc; c < bc+3; c++ {
			if g[r][c] == v {
				return false
			}
		}
	}
	return true
}

// SolveFrom fills the grid by depth-first search in row-major order,
// starting at (row, col). Pre-filled cells are skipped. Returns true once
// the traversal passes the last row, meaning every cell holds a digit that
// was legal at placement time. On failure every placement made by this call
// has been undone.
func SolveFrom(g *domain.Grid, row, col int) bool {
	if row == 9 {
		return true
	}
	if col == 9 {
		return SolveFrom(g, row+1, 0)
	}
	if g[row][col] != 0 {
		return SolveFrom(g, row, col+1)
	}
	for v := uint8(1); v <= 9; v++ {
		if IsValid(g, row, col, v) {
			g[row][col] = v
			if SolveFrom(g, row, col+1) {
				return true
			}
			g[row][col] = 0
		}
	}
	return false
}

// Candidate is an empty cell chosen for branching, with the number of
// digits currently legal there.
type Candidate struct {
	Row     int
	Col     int
	Options int
}

// FindNextCell scans the grid for the empty cell with the fewest legal
// digits (probing 1 through 9). Ties keep the earliest cell in row-major
// order. A cell with exactly one option is returned immediately without
// finishing the scan. The second result is false when no empty cell
// remains.
func FindNextCell(g *domain.Grid) (Candidate, bool) {
	best := Candidate{Row: -1, Col: -1, Options: 10}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				continue
			}
			options := 0
			for v := uint8(1); v <= 9; v++ {
				if IsValid(g, r, c, v) {
					options++
				}
			}
			if options < best.Options {
				best = Candidate{Row: r, Col: c, Options: options}
				if options == 1 {
					return best, true
				}
			}
		}
	}
	if best.Row == -1 {
		return Candidate{}, false
	}
	return best, true
}

// SolveMRV fills the grid by depth-first search, branching on the most
// constrained empty cell at every level. Cell selection is recomputed from
// scratch on each recursive step; no candidate state is carried between
// levels. Placement and undo discipline are identical to SolveFrom.
func SolveMRV(g *domain.Grid) bool {
	cell, ok := FindNextCell(g)
	if !ok {
		return true
	}
	for v := uint8(1); v <= 9; v++ {
		if IsValid(g, cell.Row, cell.Col, v) {
			g[cell.Row][cell.Col] = v
			if SolveMRV(g) {
				return true
			}
			g[cell.Row][cell.Col] = 0
		}
	}
	return false
}

// Solve runs SolveMRV when useMRV is set, otherwise SolveFrom starting at
// the top-left corner.
func Solve(g *domain.Grid, useMRV bool) bool {
	if useMRV {
		return SolveMRV(g)
	}
	return SolveFrom(g, 0, 0)
}
