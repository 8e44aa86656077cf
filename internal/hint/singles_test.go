package hint

import (
	"context"
	"testing"

	"maninstone.dev/sudoku/internal/domain"
)

func TestSinglesHint(t *testing.T) {
	h := NewSingles()
	ctx := context.Background()

	t.Run("forced cell is suggested", func(t *testing.T) {
		var g domain.Grid
		g[2] = [9]uint8{4, 8, 0, 1, 6, 3, 7, 5, 9} // (2,2) must be 2
		hint, ok, err := h.Hint(ctx, &domain.Board{Values: g}, domain.StrategySingles)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatal("expected a naked single")
		}
		if len(hint.Cells) != 1 || hint.Cells[0] != (domain.CellCoord{Row: 2, Col: 2}) {
			t.Fatalf("hint cells = %v, want [(2,2)]", hint.Cells)
		}
		if hint.Strategy != domain.StrategySingles {
			t.Fatalf("strategy = %v, want singles", hint.Strategy)
		}
	})

	t.Run("no single on empty board", func(t *testing.T) {
		_, ok, err := h.Hint(ctx, &domain.Board{}, domain.StrategyXWing)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("empty board has no naked single")
		}
	})

	t.Run("tier below singles yields nothing", func(t *testing.T) {
		var g domain.Grid
		g[2] = [9]uint8{4, 8, 0, 1, 6, 3, 7, 5, 9}
		_, ok, err := h.Hint(ctx, &domain.Board{Values: g}, domain.StrategyTier(-1))
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("tier cap should suppress the hint")
		}
	})
}
