package model

import "errors"

var (
	ErrInvalidSquare = errors.New("invalid square")
	ErrInvalidPiece  = errors.New("invalid piece")
	ErrNoPiece       = errors.New("no piece at from square")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrIllegalMove   = errors.New("illegal move")
	ErrSquareTaken   = errors.New("square already occupied")
	ErrDuplicateKing = errors.New("team already has a king")
	ErrGameFull      = errors.New("game is full")
	ErrNotInGame     = errors.New("player not in game")
)
