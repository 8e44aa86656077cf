package domain

import (
	"strings"
	"testing"
)

const samplePuzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid(samplePuzzle)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	if g[0][0] != 5 || g[0][1] != 3 || g[0][2] != 0 {
		t.Fatalf("row 0 parsed wrong: %v", g[0])
	}
	if g[8][8] != 9 {
		t.Fatalf("cell (8,8) = %d, want 9", g[8][8])
	}
	if FormatGrid(&g) != samplePuzzle {
		t.Fatalf("round trip mismatch:\n%s\n%s", FormatGrid(&g), samplePuzzle)
	}
}

func TestParseGridZerosAndDots(t *testing.T) {
	dots := strings.ReplaceAll(samplePuzzle, ".", "0")
	a, err := ParseGrid(samplePuzzle)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseGrid(dots)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatal("'.' and '0' should parse identically")
	}
}

func TestParseGridErrors(t *testing.T) {
	if _, err := ParseGrid("123"); err == nil {
		t.Fatal("short string should fail")
	}
	bad := strings.Replace(samplePuzzle, ".", "x", 1)
	if _, err := ParseGrid(bad); err == nil {
		t.Fatal("invalid character should fail")
	}
}

func TestPretty(t *testing.T) {
	g, err := ParseGrid(samplePuzzle)
	if err != nil {
		t.Fatal(err)
	}
	out := Pretty(&g)
	if !strings.Contains(out, "| ") || len(strings.Split(strings.TrimSpace(out), "\n")) != 11 {
		t.Fatalf("unexpected pretty output:\n%s", out)
	}
}

func TestDifficultyRoundTrip(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard, Expert} {
		if ParseDifficulty(d.String()) != d {
			t.Fatalf("difficulty %v does not round trip", d)
		}
	}
	if ParseDifficulty("nonsense") != Medium {
		t.Fatal("unknown label should default to medium")
	}
}
