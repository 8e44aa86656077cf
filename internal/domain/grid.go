package domain

import (
	"fmt"
	"strings"
)

// ParseGrid builds a Grid from an 81-character puzzle string read in
// row-major order. '.' and '0' are empty, '1'-'9' are givens.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	s = strings.TrimSpace(s)
	if len(s) != 81 {
		return g, fmt.Errorf("puzzle string must be exactly 81 characters, got %d", len(s))
	}
	for i := 0; i < 81; i++ {
		ch := s[i]
		switch {
		case ch == '.' || ch == '0':
			// empty, already zero
		case ch >= '1' && ch <= '9':
			g[i/9][i%9] = uint8(ch - '0')
		default:
			return Grid{}, fmt.Errorf("invalid character %q at position %d", ch, i)
		}
	}
	return g, nil
}

// FormatGrid renders a Grid as an 81-character string with '.' for empties.
func FormatGrid(g *Grid) string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + g[r][c])
			}
		}
	}
	return sb.String()
}

// Pretty renders a Grid with box separators for terminal output.
func Pretty(g *Grid) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				sb.WriteString("| ")
			}
			if g[r][c] == 0 {
				sb.WriteString(". ")
			} else {
				sb.WriteByte('0' + g[r][c])
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
