// Package validator provides fast whole-board constraint checking.
package validator

import (
	"context"

	"maninstone.dev/sudoku/internal/domain"
)

// FastValidator scans each unit once with a digit bitmask.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// unit yields the coordinates of the i-th cell of a row, column, or box.
type unit func(i int) (r, c int)

func rowUnit(r int) unit { return func(i int) (int, int) { return r, i } }
func colUnit(c int) unit { return func(i int) (int, int) { return i, c } }
func boxUnit(b int) unit {
	br, bc := (b/3)*3, (b%3)*3
	return func(i int) (int, int) { return br + i/3, bc + i%3 }
}

// scan appends the coordinate of every repeated digit in the unit.
func scan(g *domain.Grid, u unit, conf []domain.CellCoord) []domain.CellCoord {
	seen := 0
	for i := 0; i < 9; i++ {
		r, c := u(i)
		v := g[r][c]
		if v == 0 || v > 9 {
			continue
		}
		bit := 1 << v
		if seen&bit != 0 {
			conf = append(conf, domain.CellCoord{Row: r, Col: c})
		}
		seen |= bit
	}
	return conf
}

// Validate reports whether the board's non-empty cells are mutually
// consistent, returning the coordinate of every later duplicate.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for i := 0; i < 9; i++ {
		conf = scan(&b.Values, rowUnit(i), conf)
		conf = scan(&b.Values, colUnit(i), conf)
		conf = scan(&b.Values, boxUnit(i), conf)
	}
	return len(conf) == 0, conf, nil
}
