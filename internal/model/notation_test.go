package model

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		pieces []string
		from   string
		to     string
		want   string
	}{
		{
			name:   "rook from the a-file",
			pieces: []string{"wKe2", "bKe8", "wRa1", "wRh1"},
			from:   "a1", to: "d1",
			want: "Rad1",
		},
		{
			name:   "rook from the h-file",
			pieces: []string{"wKe2", "bKe8", "wRa1", "wRh1"},
			from:   "h1", to: "d1",
			want: "Rhd1",
		},
		{
			name:   "rooks sharing a file use the rank",
			pieces: []string{"wKh2", "bKh8", "wRa1", "wRa5"},
			from:   "a1", to: "a3",
			want: "R1a3",
		},
		{
			name:   "blocked rook does not count",
			pieces: []string{"wKe2", "bKe8", "wRa1", "wRh1", "wNf1"},
			from:   "a1", to: "d1",
			want: "Rd1",
		},
		{
			name:   "knights on different files",
			pieces: []string{"wKh3", "bKh8", "wNb1", "wNf1"},
			from:   "b1", to: "d2",
			want: "Nbd2",
		},
		{
			name:   "knights on the same file",
			pieces: []string{"wKh3", "bKh8", "wNg1", "wNg5"},
			from:   "g5", to: "f3",
			want: "N5f3",
		},
		{
			name:   "pinned knight is no rival",
			pieces: []string{"wKh5", "bKh8", "wNb1", "wNf3", "bBe2"},
			from:   "b1", to: "d2",
			want: "Nd2",
		},
		{
			name:   "three queens need file and rank",
			pieces: []string{"wKh5", "bKh8", "wQa1", "wQa3", "wQc1"},
			from:   "a1", to: "b2",
			want: "Qa1b2",
		},
		{
			name:   "capture",
			pieces: []string{"wKe1", "bKe8", "wBc4", "bPf7"},
			from:   "c4", to: "f7",
			want: "Bxf7",
		},
		{
			name:   "pawn push",
			pieces: []string{"wKe1", "bKe8", "wPd2"},
			from:   "d2", to: "d4",
			want: "d4",
		},
		{
			name:   "pawn capture names the origin file",
			pieces: []string{"wKe1", "bKe8", "wPe4", "bPd5"},
			from:   "e4", to: "d5",
			want: "exd5",
		},
		{
			name:   "king move",
			pieces: []string{"wKe1", "bKe8"},
			from:   "e8", to: "d7",
			want: "Kd7",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setupBoard(t, tt.pieces...)
			move, err := NewMove(b, sq(t, tt.from), sq(t, tt.to))
			if err != nil {
				t.Fatalf("new move: %v", err)
			}
			if got := Format(move); got != tt.want {
				t.Fatalf("Format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatAfterApplyUsesSnapshot(t *testing.T) {
	b := setupBoard(t, "wKe2", "bKe8", "wRa1", "wRh1")

	first, err := NewMove(b, sq(t, "a1"), sq(t, "d1"))
	if err != nil {
		t.Fatalf("new move: %v", err)
	}
	b.Apply(first)

	// d1 is now taken, so the h1 rook can no longer go there, but the
	// recorded move still formats against the position it was played in.
	if got := first.Notation(); got != "Rad1" {
		t.Fatalf("Notation = %q, want Rad1", got)
	}
	if b.Validate(sq(t, "h1"), sq(t, "d1")) {
		t.Fatalf("h1 rook moved onto its own rook")
	}
}

func TestStartingKnightMove(t *testing.T) {
	g := NewGame("g", DefaultTimeControl)
	ply, err := g.Play(sq(t, "b1"), sq(t, "c3"))
	if err != nil {
		t.Fatalf("Nc3: %v", err)
	}
	if ply.Notation != "Nc3" {
		t.Fatalf("notation = %q, want Nc3", ply.Notation)
	}
}
