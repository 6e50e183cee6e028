// Package position loads positions written in Forsyth-Edwards Notation onto
// a model.Board.
package position

import (
	"errors"
	"fmt"

	"github.com/chessbored/backend/internal/model"
	"github.com/notnil/chess"
)

var ErrInvalidFEN = errors.New("invalid FEN")

var kinds = map[chess.PieceType]model.PieceKind{
	chess.King:   model.King,
	chess.Queen:  model.Queen,
	chess.Rook:   model.Rook,
	chess.Bishop: model.Bishop,
	chess.Knight: model.Knight,
	chess.Pawn:   model.Pawn,
}

// FromFEN builds a board from fen and returns it with the side to move.
// Both sides must have exactly one king.
func FromFEN(fen string) (*model.Board, model.Team, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	pos := chess.NewGame(opt).Position()

	board := model.NewEmptyBoard()
	for sq, piece := range pos.Board().SquareMap() {
		target, ok := model.SquareAt(int(sq.File()), int(sq.Rank()))
		if !ok {
			return nil, "", fmt.Errorf("%w: square %s", ErrInvalidFEN, sq)
		}
		if _, err := board.Place(kinds[piece.Type()], team(piece.Color()), target); err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrInvalidFEN, err)
		}
	}
	for _, t := range []model.Team{model.White, model.Black} {
		if !board.KingSquare(t).Valid() {
			return nil, "", fmt.Errorf("%w: no %s king", ErrInvalidFEN, t)
		}
	}

	if ep := pos.EnPassantSquare(); ep != chess.NoSquare {
		target, _ := model.SquareAt(int(ep.File()), int(ep.Rank()))
		board.SetEnPassantTarget(target)
	}
	return board, team(pos.Turn()), nil
}

func team(c chess.Color) model.Team {
	if c == chess.Black {
		return model.Black
	}
	return model.White
}
