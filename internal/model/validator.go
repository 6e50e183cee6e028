package model

import "slices"

// Validate reports whether the piece standing on from may legally move to
// to. It never changes the board.
func (b *Board) Validate(from, to Square) bool {
	if from == to {
		return false
	}
	piece := b.at(from)
	if piece == nil {
		return false
	}
	return b.canMoveTo(piece, to)
}

// LegalDestinations lists, in square order, every square the piece on from
// may move to.
func (b *Board) LegalDestinations(from Square) []Square {
	piece := b.at(from)
	if piece == nil {
		return []Square{}
	}
	squares := b.possibleDestinations(piece)
	slices.Sort(squares)
	return squares
}
