package storage

import (
	"context"
	"errors"
	"testing"

	"maninstone.dev/sudoku/internal/domain"
	"maninstone.dev/sudoku/internal/ports"
)

func testRoundTrip(t *testing.T, s ports.Storage) {
	t.Helper()
	ctx := context.Background()

	p := &domain.Puzzle{
		ID:         "test-puzzle-1",
		Seed:       42,
		Difficulty: domain.Hard,
		Name:       "round trip",
		CreatedAt:  1700000000,
	}
	p.Board.Values[0][0] = 5
	p.Board.Fixed[0][0] = true

	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load(ctx, p.ID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.ID != p.ID || got.Seed != p.Seed || got.Difficulty != p.Difficulty {
		t.Fatalf("loaded puzzle differs: %+v", got)
	}
	if got.Board.Values != p.Board.Values || got.Board.Fixed != p.Board.Fixed {
		t.Fatal("loaded board differs")
	}

	metas, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	found := false
	for _, m := range metas {
		if m.ID == p.ID {
			found = true
			if m.Difficulty != domain.Hard || m.Name != "round trip" {
				t.Fatalf("listing entry differs: %+v", m)
			}
		}
	}
	if !found {
		t.Fatalf("saved puzzle missing from listing: %v", metas)
	}

	if _, err := s.Load(ctx, "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load of missing id: err = %v, want ErrNotFound", err)
	}

	if err := s.Save(ctx, &domain.Puzzle{}); err == nil {
		t.Fatal("Save without ID should fail")
	}
}

func TestFSStore(t *testing.T) {
	s := NewFS(t.TempDir())
	defer s.Close()
	testRoundTrip(t, s)
}

func TestBadgerStore(t *testing.T) {
	s, err := NewBadger("") // in-memory
	if err != nil {
		t.Fatalf("NewBadger failed: %v", err)
	}
	defer s.Close()
	testRoundTrip(t, s)
}

func TestBadgerStoreOnDisk(t *testing.T) {
	dir := t.TempDir()
	s, err := NewBadger(dir)
	if err != nil {
		t.Fatalf("NewBadger(%s) failed: %v", dir, err)
	}
	defer s.Close()
	testRoundTrip(t, s)
}

// Redis round trips need a live server; run them only when one is local.
func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	s, err := NewRedis(ctx, "localhost:6379", "", 15)
	if err != nil {
		t.Skipf("redis not available: %v", err)
	}
	defer s.Close()
	testRoundTrip(t, s)
}
