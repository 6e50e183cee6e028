package model

import (
	"slices"
	"testing"
)

var kindLetters = map[byte]PieceKind{
	'K': King,
	'Q': Queen,
	'R': Rook,
	'B': Bishop,
	'N': Knight,
	'P': Pawn,
}

// setupBoard builds a board from placements such as "wKe1" or "bQe8".
func setupBoard(t *testing.T, placements ...string) *Board {
	t.Helper()
	b := NewEmptyBoard()
	for _, p := range placements {
		if len(p) != 4 {
			t.Fatalf("bad placement %q", p)
		}
		team := White
		if p[0] == 'b' {
			team = Black
		}
		kind, ok := kindLetters[p[1]]
		if !ok {
			t.Fatalf("bad piece letter in %q", p)
		}
		if _, err := b.Place(kind, team, sq(t, p[2:])); err != nil {
			t.Fatalf("place %q: %v", p, err)
		}
	}
	return b
}

func sq(t *testing.T, s string) Square {
	t.Helper()
	square, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("parse square: %v", err)
	}
	return square
}

func squares(t *testing.T, names ...string) []Square {
	t.Helper()
	out := make([]Square, 0, len(names))
	for _, n := range names {
		out = append(out, sq(t, n))
	}
	slices.Sort(out)
	return out
}

func playMoves(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if _, err := g.Play(sq(t, m[:2]), sq(t, m[2:])); err != nil {
			t.Fatalf("play %s: %v", m, err)
		}
	}
}

func assertDestinations(t *testing.T, b *Board, from string, want ...string) {
	t.Helper()
	got := b.LegalDestinations(sq(t, from))
	if !slices.Equal(got, squares(t, want...)) {
		t.Fatalf("destinations from %s = %v, want %v", from, got, want)
	}
}
