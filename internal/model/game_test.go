package model

import (
	"errors"
	"testing"
	"time"
)

func TestEnPassant(t *testing.T) {
	g := NewGame("ep", DefaultTimeControl)
	playMoves(t, g, "a2a4", "h7h6", "a4a5", "b7b5")

	board := g.Board()
	if got := board.EnPassantTarget().String(); got != "b6" {
		t.Fatalf("en passant target = %s, want b6", got)
	}
	assertDestinations(t, board, "a5", "a6", "b6")

	ply, err := g.Play(sq(t, "a5"), sq(t, "b6"))
	if err != nil {
		t.Fatalf("en passant capture: %v", err)
	}
	if !ply.EnPassant || ply.CapturedPiece == nil || ply.CapturedPiece.Square.String() != "b5" {
		t.Fatalf("ply = %+v, want en passant capture of the b5 pawn", ply)
	}
	if ply.Notation != "axb6" {
		t.Fatalf("notation = %q, want axb6", ply.Notation)
	}

	board = g.Board()
	if _, ok := board.PieceAt(sq(t, "b5")); ok {
		t.Fatalf("jumped pawn still on b5")
	}
	pawn, ok := board.PieceAt(sq(t, "b6"))
	if !ok || pawn.Kind != Pawn || pawn.Team != White {
		t.Fatalf("b6 holds %v", pawn)
	}
	if board.EnPassantTarget() != NoSquare {
		t.Fatalf("en passant target survived a capture")
	}

	state := g.State()
	if len(state.CapturedPieces.White) != 1 || state.CapturedPieces.White[0].Kind != Pawn {
		t.Fatalf("captured by white = %v", state.CapturedPieces.White)
	}
	if !state.CapturedPieces.White[0].Captured() {
		t.Fatalf("captured pawn still has a square")
	}
}

func TestEnPassantOnlyOnTheNextMove(t *testing.T) {
	g := NewGame("ep-late", DefaultTimeControl)
	playMoves(t, g, "a2a4", "h7h6", "a4a5", "b7b5", "h2h3", "h6h5")

	if g.Board().EnPassantTarget() != NoSquare {
		t.Fatalf("en passant target not cleared")
	}
	_, err := g.Play(sq(t, "a5"), sq(t, "b6"))
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("late en passant error = %v, want ErrIllegalMove", err)
	}
}

func TestEnPassantNeedsADoubleStep(t *testing.T) {
	g := NewGame("ep-single", DefaultTimeControl)
	playMoves(t, g, "a2a4", "b7b6", "a4a5", "b6b5")

	if g.Board().EnPassantTarget() != NoSquare {
		t.Fatalf("single steps created an en passant target")
	}
	if _, err := g.Play(sq(t, "a5"), sq(t, "b6")); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("error = %v, want ErrIllegalMove", err)
	}
}

func TestPlayErrors(t *testing.T) {
	g := NewGame("errors", DefaultTimeControl)

	if _, err := g.Play(sq(t, "e7"), sq(t, "e5")); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("black first: %v", err)
	}
	if _, err := g.Play(sq(t, "e4"), sq(t, "e5")); !errors.Is(err, ErrNoPiece) {
		t.Fatalf("empty origin: %v", err)
	}
	if _, err := g.Play(sq(t, "e2"), sq(t, "e5")); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("triple step: %v", err)
	}
	if _, err := g.Play(sq(t, "g1"), sq(t, "g1")); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("same square: %v", err)
	}
	if len(g.History()) != 0 {
		t.Fatalf("rejected moves reached the history")
	}
	if g.ToMove() != White {
		t.Fatalf("rejected moves changed the turn")
	}
}

func TestMakeMoveChecksSeat(t *testing.T) {
	g := NewGame("seats", DefaultTimeControl)
	white, err := g.AddPlayer("alice")
	if err != nil || white != White {
		t.Fatalf("first player = %s, %v", white, err)
	}
	black, err := g.AddPlayer("bob")
	if err != nil || black != Black {
		t.Fatalf("second player = %s, %v", black, err)
	}
	if again, _ := g.AddPlayer("alice"); again != White {
		t.Fatalf("rejoining moved alice to %s", again)
	}
	if _, err := g.AddPlayer("carol"); !errors.Is(err, ErrGameFull) {
		t.Fatalf("third player: %v", err)
	}

	if _, err := g.MakeMove("carol", sq(t, "e2"), sq(t, "e4")); !errors.Is(err, ErrNotInGame) {
		t.Fatalf("spectator move: %v", err)
	}
	if _, err := g.MakeMove("bob", sq(t, "e7"), sq(t, "e5")); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("bob out of turn: %v", err)
	}
	if _, err := g.MakeMove("alice", sq(t, "e2"), sq(t, "e4")); err != nil {
		t.Fatalf("alice: %v", err)
	}
	if _, err := g.MakeMove("alice", sq(t, "d2"), sq(t, "d4")); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("alice twice: %v", err)
	}
	if _, err := g.MakeMove("bob", sq(t, "e7"), sq(t, "e5")); err != nil {
		t.Fatalf("bob: %v", err)
	}
}

func TestHistoryAndKingTracking(t *testing.T) {
	g := NewGame("history", DefaultTimeControl)
	playMoves(t, g, "e2e4", "d7d5", "e4d5", "d8d5", "e1e2", "d5e4")

	want := []string{"e4", "d5", "exd5", "Qxd5", "Ke2", "Qe4"}
	history := g.History()
	if len(history) != len(want) {
		t.Fatalf("history has %d plies, want %d", len(history), len(want))
	}
	for i, ply := range history {
		if ply.Notation != want[i] {
			t.Fatalf("ply %d = %q, want %q", i, ply.Notation, want[i])
		}
	}

	board := g.Board()
	if got := board.KingSquare(White).String(); got != "e2" {
		t.Fatalf("white king cached at %s", got)
	}
	if !board.kingCacheConsistent() {
		t.Fatalf("king cache out of sync")
	}

	state := g.State()
	if state.LastMove == nil || state.LastMove.Notation != "Qe4" {
		t.Fatalf("last move = %+v", state.LastMove)
	}
	if len(state.CapturedPieces.White) != 1 || len(state.CapturedPieces.Black) != 1 {
		t.Fatalf("captured = %+v", state.CapturedPieces)
	}
	if state.ToMove != White {
		t.Fatalf("to move = %s", state.ToMove)
	}
}

func TestReset(t *testing.T) {
	g := NewGame("reset", DefaultTimeControl)
	g.AddPlayer("alice")
	playMoves(t, g, "e2e4", "d7d5", "e4d5")

	g.Reset()

	state := g.State()
	if len(state.History) != 0 || len(state.CapturedPieces.White) != 0 || state.LastMove != nil {
		t.Fatalf("reset kept history: %+v", state)
	}
	if state.ToMove != White {
		t.Fatalf("to move after reset = %s", state.ToMove)
	}
	if len(state.Pieces) != 32 {
		t.Fatalf("%d pieces after reset", len(state.Pieces))
	}
	if state.Players.White.ID != "alice" {
		t.Fatalf("reset unseated alice")
	}
	if state.Clocks.White != DefaultTimeControl.Start.Milliseconds() {
		t.Fatalf("white clock = %d", state.Clocks.White)
	}
}

func TestClockIncrement(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewClock(TimeControl{Start: time.Minute, Increment: 2 * time.Second})
	c.now = func() time.Time { return now }

	c.Start()
	now = now.Add(5 * time.Second)
	if got := c.TimeLeft(); got != 55*time.Second {
		t.Fatalf("running clock shows %s", got)
	}
	c.Stop()
	if got := c.TimeLeft(); got != 55*time.Second {
		t.Fatalf("stopped clock shows %s, want 55s", got)
	}
	c.AddIncrement()
	if got := c.TimeLeft(); got != 57*time.Second {
		t.Fatalf("after increment clock shows %s, want 57s", got)
	}

	c.Stop()
	if got := c.TimeLeft(); got != 57*time.Second {
		t.Fatalf("second stop changed the clock to %s", got)
	}

	c.Reset()
	if got := c.TimeLeft(); got != time.Minute {
		t.Fatalf("reset clock shows %s", got)
	}
}

func TestFirstMoveEarnsIncrement(t *testing.T) {
	control := TimeControl{Start: time.Minute, Increment: 2 * time.Second}
	g := NewGame("increment", control)
	playMoves(t, g, "e2e4")

	state := g.State()
	if want := (control.Start + control.Increment).Milliseconds(); state.Clocks.White != want {
		t.Fatalf("white clock after first move = %dms, want %dms", state.Clocks.White, want)
	}
	if state.Clocks.Black > control.Start.Milliseconds() {
		t.Fatalf("black credited before moving: %dms", state.Clocks.Black)
	}
}
