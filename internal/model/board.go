package model

import "fmt"

var backRank = [boardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board owns every piece of a game. Pieces live in an arena indexed by ID and
// cells hold ID+1 for the occupant of each square, 0 meaning empty.
type Board struct {
	pieces            []Piece
	cells             [boardSize * boardSize]int
	whiteKingPosition Square
	blackKingPosition Square
	enPassantTarget   Square
}

// NewBoard returns a board in the standard starting arrangement.
func NewBoard() *Board {
	b := NewEmptyBoard()
	b.Reset()
	return b
}

// NewEmptyBoard returns a board with no pieces, for setting up positions
// with Place.
func NewEmptyBoard() *Board {
	return &Board{
		whiteKingPosition: NoSquare,
		blackKingPosition: NoSquare,
		enPassantTarget:   NoSquare,
	}
}

// Reset repopulates all 32 pieces in their starting squares.
func (b *Board) Reset() {
	*b = *NewEmptyBoard()
	for _, team := range []Team{White, Black} {
		for file, kind := range backRank {
			sq, _ := SquareAt(file, team.backRank())
			b.mustPlace(kind, team, sq)
		}
		for file := 0; file < boardSize; file++ {
			sq, _ := SquareAt(file, team.pawnRank())
			b.mustPlace(Pawn, team, sq)
		}
	}
}

// Place puts a new piece on an empty square. A pawn placed off its starting
// rank counts as having moved.
func (b *Board) Place(kind PieceKind, team Team, sq Square) (Piece, error) {
	if !sq.Valid() {
		return Piece{}, fmt.Errorf("%w: %d", ErrInvalidSquare, sq)
	}
	if b.cells[sq] != 0 {
		return Piece{}, fmt.Errorf("%w: %s", ErrSquareTaken, sq)
	}
	if kind == King && b.KingSquare(team).Valid() {
		return Piece{}, fmt.Errorf("%w: %s", ErrDuplicateKing, team)
	}
	if !kind.valid() || (team != White && team != Black) {
		return Piece{}, fmt.Errorf("%w: %q", ErrInvalidPiece, string(team)+" "+string(kind))
	}

	piece := Piece{
		ID:       len(b.pieces),
		Kind:     kind,
		Team:     team,
		Square:   sq,
		HasMoved: kind == Pawn && sq.Rank() != team.pawnRank(),
	}
	b.pieces = append(b.pieces, piece)
	b.cells[sq] = piece.ID + 1
	if kind == King {
		b.setKingSquare(team, sq)
	}
	return piece, nil
}

func (b *Board) mustPlace(kind PieceKind, team Team, sq Square) {
	if _, err := b.Place(kind, team, sq); err != nil {
		panic(err)
	}
}

// SetEnPassantTarget marks the empty square behind a pawn that has just
// advanced two squares. NoSquare clears it.
func (b *Board) SetEnPassantTarget(sq Square) {
	b.enPassantTarget = sq
}

func (b *Board) EnPassantTarget() Square {
	return b.enPassantTarget
}

// PieceAt returns a copy of the occupant of sq.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	p := b.at(sq)
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

func (b *Board) at(sq Square) *Piece {
	if !sq.Valid() || b.cells[sq] == 0 {
		return nil
	}
	return &b.pieces[b.cells[sq]-1]
}

// Piece returns the arena record for id, captured or not.
func (b *Board) Piece(id int) (Piece, bool) {
	if id < 0 || id >= len(b.pieces) {
		return Piece{}, false
	}
	return b.pieces[id], true
}

// Pieces lists the active pieces of team ordered by square.
func (b *Board) Pieces(team Team) []Piece {
	pieces := []Piece{}
	for sq := Square(0); sq.Valid(); sq++ {
		if p := b.at(sq); p != nil && p.Team == team {
			pieces = append(pieces, *p)
		}
	}
	return pieces
}

func (b *Board) KingSquare(team Team) Square {
	if team == White {
		return b.whiteKingPosition
	}
	return b.blackKingPosition
}

func (b *Board) setKingSquare(team Team, sq Square) {
	switch team {
	case White:
		b.whiteKingPosition = sq
	case Black:
		b.blackKingPosition = sq
	}
}

// Apply commits a move that has already been validated: the origin is
// cleared, the captured piece (if any) leaves the board and the mover lands
// on the destination. The en-passant target only survives for one move.
func (b *Board) Apply(move Move) {
	b.enPassantTarget = NoSquare

	if move.Captured != nil {
		victim := &b.pieces[move.Captured.ID]
		if b.cells[victim.Square] == victim.ID+1 {
			b.cells[victim.Square] = 0
		}
		victim.Square = NoSquare
	}

	piece := &b.pieces[move.Piece.ID]
	b.cells[move.From] = 0
	b.cells[move.To] = piece.ID + 1
	piece.Square = move.To
	piece.HasMoved = true

	switch piece.Kind {
	case King:
		b.setKingSquare(piece.Team, move.To)
	case Pawn:
		if abs(move.To.Rank()-move.From.Rank()) == 2 {
			b.enPassantTarget, _ = move.From.Offset(Offset{Rank: piece.Team.forward()})
		}
	}
}

// Clone copies the board so later moves leave the copy untouched.
func (b *Board) Clone() *Board {
	c := *b
	c.pieces = append([]Piece(nil), b.pieces...)
	return &c
}

// kingCacheConsistent compares the cached king squares with a full scan.
func (b *Board) kingCacheConsistent() bool {
	found := map[Team]Square{White: NoSquare, Black: NoSquare}
	for sq := Square(0); sq.Valid(); sq++ {
		if p := b.at(sq); p != nil && p.Kind == King {
			found[p.Team] = sq
		}
	}
	return found[White] == b.whiteKingPosition && found[Black] == b.blackKingPosition
}
