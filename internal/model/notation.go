package model

import "strings"

const captureNotation = "x"

// Format converts a move into algebraic notation such as "Nc3", "exd5" or
// "Rad1". When another piece of the same kind and team could also have
// reached the destination, the origin file is added, or the origin rank if
// the files match, or both.
func Format(move Move) string {
	var sb strings.Builder
	sb.WriteString(move.Piece.Kind.NotationPrefix())
	if move.Piece.Kind == Pawn {
		if move.Captured != nil {
			sb.WriteString(move.From.FileNotation())
		}
	} else {
		sb.WriteString(disambiguation(move))
	}
	if move.Captured != nil {
		sb.WriteString(captureNotation)
	}
	sb.WriteString(move.To.String())
	return sb.String()
}

func disambiguation(move Move) string {
	if move.Board == nil {
		return ""
	}
	sameFile, sameRank, rivals := false, false, 0
	for _, p := range move.Board.Pieces(move.Team) {
		if p.ID == move.Piece.ID || p.Kind != move.Piece.Kind {
			continue
		}
		if !move.Board.Validate(p.Square, move.To) {
			continue
		}
		rivals++
		sameFile = sameFile || p.Square.File() == move.From.File()
		sameRank = sameRank || p.Square.Rank() == move.From.Rank()
	}

	switch {
	case rivals == 0:
		return ""
	case !sameFile:
		return move.From.FileNotation()
	case !sameRank:
		return move.From.RankNotation()
	}
	return move.From.String()
}
