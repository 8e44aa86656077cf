package validator

import (
	"context"
	"testing"

	"maninstone.dev/sudoku/internal/domain"
)

func TestValidate(t *testing.T) {
	v := New()
	ctx := context.Background()

	t.Run("empty board ok", func(t *testing.T) {
		ok, conf, err := v.Validate(ctx, &domain.Board{})
		if err != nil || !ok || len(conf) != 0 {
			t.Fatalf("ok=%v conf=%v err=%v", ok, conf, err)
		}
	})

	t.Run("row duplicate", func(t *testing.T) {
		var g domain.Grid
		g[3][1], g[3][7] = 6, 6
		ok, conf, err := v.Validate(ctx, &domain.Board{Values: g})
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("expected conflict")
		}
		found := false
		for _, c := range conf {
			if c.Row == 3 && c.Col == 7 {
				found = true
			}
		}
		if !found {
			t.Fatalf("conflicts %v missing the later duplicate (3,7)", conf)
		}
	})

	t.Run("column duplicate", func(t *testing.T) {
		var g domain.Grid
		g[0][5], g[8][5] = 2, 2
		ok, _, err := v.Validate(ctx, &domain.Board{Values: g})
		if err != nil || ok {
			t.Fatalf("ok=%v err=%v, expected column conflict", ok, err)
		}
	})

	t.Run("box duplicate", func(t *testing.T) {
		var g domain.Grid
		g[6][0], g[8][2] = 9, 9
		ok, _, err := v.Validate(ctx, &domain.Board{Values: g})
		if err != nil || ok {
			t.Fatalf("ok=%v err=%v, expected box conflict", ok, err)
		}
	})

	t.Run("consistent partial board", func(t *testing.T) {
		var g domain.Grid
		g[0][0], g[0][1], g[1][0], g[4][4] = 1, 2, 3, 1
		ok, conf, err := v.Validate(ctx, &domain.Board{Values: g})
		if err != nil || !ok {
			t.Fatalf("ok=%v conf=%v err=%v", ok, conf, err)
		}
	})
}
