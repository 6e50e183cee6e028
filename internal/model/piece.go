package model

import (
	"fmt"
	"strings"
)

type Team string

const (
	White Team = "white"
	Black Team = "black"
)

func (t Team) Opponent() Team {
	if t == White {
		return Black
	}
	return White
}

// forward is the rank step a pawn of this team advances by.
func (t Team) forward() int {
	if t == White {
		return 1
	}
	return -1
}

func (t Team) pawnRank() int {
	if t == White {
		return 1
	}
	return 6
}

func (t Team) backRank() int {
	if t == White {
		return 0
	}
	return 7
}

type PieceKind string

const (
	King   PieceKind = "king"
	Queen  PieceKind = "queen"
	Rook   PieceKind = "rook"
	Bishop PieceKind = "bishop"
	Knight PieceKind = "knight"
	Pawn   PieceKind = "pawn"
)

func (k PieceKind) valid() bool {
	switch k {
	case King, Queen, Rook, Bishop, Knight, Pawn:
		return true
	}
	return false
}

// NotationPrefix is the letter a move by this kind starts with.
func (k PieceKind) NotationPrefix() string {
	switch k {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	panic(fmt.Sprintf("unknown piece kind %q", string(k)))
}

func (k PieceKind) iconLetter() string {
	if k == Pawn {
		return "p"
	}
	return strings.ToLower(k.NotationPrefix())
}

// Piece is a copy of a board-owned piece record. ID stays fixed for the
// lifetime of the piece; Square is NoSquare once the piece is captured.
type Piece struct {
	ID       int       `json:"id"`
	Kind     PieceKind `json:"kind"`
	Team     Team      `json:"team"`
	Square   Square    `json:"square"`
	HasMoved bool      `json:"hasMoved"`
}

// Icon names the static image used to draw the piece, e.g. "wn" or "bp".
func (p Piece) Icon() string {
	return string(p.Team[0]) + p.Kind.iconLetter()
}

func (p Piece) Captured() bool {
	return !p.Square.Valid()
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s@%s", p.Team, p.Kind, p.Square)
}
