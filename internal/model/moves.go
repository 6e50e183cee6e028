package model

import "fmt"

// canMoveTo dispatches to the geometry of the piece's kind and then applies
// the pin constraint shared by every kind.
func (b *Board) canMoveTo(piece *Piece, dest Square) bool {
	if !dest.Valid() || dest == piece.Square {
		return false
	}
	var ok bool
	switch piece.Kind {
	case Pawn:
		ok = b.pawnCanMoveTo(piece, dest)
	case Knight:
		ok = knightShape(piece.Square, dest) && b.canLand(piece, dest)
	case Bishop, Rook, Queen:
		ok = b.sliderCanMoveTo(piece, dest)
	case King:
		ok = kingShape(piece.Square, dest) && b.canLand(piece, dest)
	default:
		panic(fmt.Sprintf("unknown piece kind %q", string(piece.Kind)))
	}
	return ok && b.staysOnPin(piece, dest)
}

// possibleDestinations enumerates every square canMoveTo accepts.
func (b *Board) possibleDestinations(piece *Piece) []Square {
	switch piece.Kind {
	case Pawn:
		return b.pawnDestinations(piece)
	case Knight:
		return b.stepDestinations(piece, knightDirs)
	case Bishop:
		return b.rayDestinations(piece, bishopDirs)
	case Rook:
		return b.rayDestinations(piece, rookDirs)
	case Queen:
		return b.rayDestinations(piece, queenDirs)
	case King:
		return b.stepDestinations(piece, queenDirs)
	}
	panic(fmt.Sprintf("unknown piece kind %q", string(piece.Kind)))
}

// canLand reports whether piece may finish on dest: the square is empty or
// holds an enemy other than the king.
func (b *Board) canLand(piece *Piece, dest Square) bool {
	occupant := b.at(dest)
	return occupant == nil || (occupant.Team != piece.Team && occupant.Kind != King)
}

func knightShape(from, to Square) bool {
	df := abs(to.File() - from.File())
	dr := abs(to.Rank() - from.Rank())
	return (df == 2 && dr == 1) || (df == 1 && dr == 2)
}

func kingShape(from, to Square) bool {
	df := abs(to.File() - from.File())
	dr := abs(to.Rank() - from.Rank())
	return df <= 1 && dr <= 1 && from != to
}

func (b *Board) stepDestinations(piece *Piece, dirs []Offset) []Square {
	squares := []Square{}
	for _, dir := range dirs {
		target, ok := piece.Square.Offset(dir)
		if ok && b.canLand(piece, target) && b.staysOnPin(piece, target) {
			squares = append(squares, target)
		}
	}
	return squares
}

func (b *Board) sliderCanMoveTo(piece *Piece, dest Square) bool {
	dir, ok := direction(piece.Square, dest)
	if !ok || !attacksAlong(piece.Kind, dir) {
		return false
	}
	pos, _ := piece.Square.Offset(dir)
	for pos != dest {
		if b.at(pos) != nil {
			return false
		}
		pos, _ = pos.Offset(dir)
	}
	return b.canLand(piece, dest)
}

// rayDestinations walks each ray until the edge or the first occupied
// square, which is included only when it holds a capturable enemy. A pinned
// piece keeps only the rays along its pin.
func (b *Board) rayDestinations(piece *Piece, dirs []Offset) []Square {
	axis, pinned := b.pinAxis(piece)
	squares := []Square{}
	for _, dir := range dirs {
		if pinned && dir != axis && dir != axis.reverse() {
			continue
		}
		target, ok := piece.Square.Offset(dir)
		for ok {
			if b.at(target) != nil {
				if b.canLand(piece, target) {
					squares = append(squares, target)
				}
				break
			}
			squares = append(squares, target)
			target, ok = target.Offset(dir)
		}
	}
	return squares
}

func (b *Board) pawnCanMoveTo(piece *Piece, dest Square) bool {
	fwd := piece.Team.forward()
	df := dest.File() - piece.Square.File()
	dr := dest.Rank() - piece.Square.Rank()

	switch {
	case df == 0 && dr == fwd:
		return b.at(dest) == nil
	case df == 0 && dr == 2*fwd:
		if piece.HasMoved || piece.Square.Rank() != piece.Team.pawnRank() {
			return false
		}
		skipped, _ := piece.Square.Offset(Offset{Rank: fwd})
		return b.at(skipped) == nil && b.at(dest) == nil
	case abs(df) == 1 && dr == fwd:
		if b.at(dest) != nil {
			return b.canLand(piece, dest)
		}
		return b.enPassantVictim(piece, dest) != nil
	}
	return false
}

// enPassantVictim returns the enemy pawn a diagonal step onto the empty
// square dest would take en passant, or nil.
func (b *Board) enPassantVictim(piece *Piece, dest Square) *Piece {
	if piece.Kind != Pawn || dest != b.enPassantTarget || b.at(dest) != nil {
		return nil
	}
	behind, ok := dest.Offset(Offset{Rank: -piece.Team.forward()})
	if !ok {
		return nil
	}
	victim := b.at(behind)
	if victim == nil || victim.Kind != Pawn || victim.Team == piece.Team {
		return nil
	}
	return victim
}

func (b *Board) pawnDestinations(piece *Piece) []Square {
	fwd := piece.Team.forward()
	candidates := []Offset{{Rank: fwd}, {Rank: 2 * fwd}, {File: -1, Rank: fwd}, {File: 1, Rank: fwd}}
	squares := []Square{}
	for _, o := range candidates {
		target, ok := piece.Square.Offset(o)
		if ok && b.canMoveTo(piece, target) {
			squares = append(squares, target)
		}
	}
	return squares
}
