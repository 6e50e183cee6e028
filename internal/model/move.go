package model

import (
	"encoding/json"
	"fmt"
)

// MoveRequest is the origin and destination a client asks for.
type MoveRequest struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// UnmarshalJSON rejects requests that leave out either square, which would
// otherwise decode as a1.
func (r *MoveRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		From *Square `json:"from"`
		To   *Square `json:"to"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.From == nil || raw.To == nil {
		return fmt.Errorf("%w: move needs both from and to", ErrInvalidSquare)
	}
	r.From, r.To = *raw.From, *raw.To
	return nil
}

// Move is an accepted relocation. Board is the position as it stood before
// the move and is used for notation only.
type Move struct {
	Team      Team
	Piece     Piece
	From      Square
	To        Square
	Captured  *Piece
	EnPassant bool
	Board     *Board
}

// NewMove validates from->to on b and records the resulting move without
// applying it.
func NewMove(b *Board, from, to Square) (Move, error) {
	piece := b.at(from)
	if piece == nil {
		return Move{}, fmt.Errorf("%w: %s", ErrNoPiece, from)
	}
	if !b.Validate(from, to) {
		return Move{}, fmt.Errorf("%w: %s %s-%s", ErrIllegalMove, piece.Kind, from, to)
	}

	move := Move{
		Team:  piece.Team,
		Piece: *piece,
		From:  from,
		To:    to,
		Board: b.Clone(),
	}
	if occupant := b.at(to); occupant != nil {
		captured := *occupant
		move.Captured = &captured
	} else if victim := b.enPassantVictim(piece, to); victim != nil && from.File() != to.File() {
		captured := *victim
		move.Captured = &captured
		move.EnPassant = true
	}
	return move, nil
}

// Notation renders the move in algebraic notation.
func (m Move) Notation() string {
	return Format(m)
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s %s-%s", m.Team, m.Piece.Kind, m.From, m.To)
}
