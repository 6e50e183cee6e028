package model

// IsPinned reports whether the piece on sq is absolutely pinned to its own
// king.
func (b *Board) IsPinned(sq Square) bool {
	_, pinned := b.PinAxis(sq)
	return pinned
}

// PinAxis returns the unit step from the king towards the pinned piece on
// sq. A pinned piece may only move along this line, in either direction.
func (b *Board) PinAxis(sq Square) (Offset, bool) {
	piece := b.at(sq)
	if piece == nil {
		return Offset{}, false
	}
	return b.pinAxis(piece)
}

func (b *Board) pinAxis(piece *Piece) (Offset, bool) {
	if piece.Kind == King {
		return Offset{}, false
	}
	king := b.KingSquare(piece.Team)
	if !king.Valid() {
		return Offset{}, false
	}
	dir, ok := direction(king, piece.Square)
	if !ok {
		return Offset{}, false
	}

	reachedPiece := false
	pos := king
	for {
		next, ok := pos.Offset(dir)
		if !ok {
			return Offset{}, false
		}
		pos = next

		if pos == piece.Square {
			reachedPiece = true
			continue
		}
		occupant := b.at(pos)
		if occupant == nil {
			continue
		}
		// something already shields the king
		if !reachedPiece || occupant.Team == piece.Team {
			return Offset{}, false
		}
		if attacksAlong(occupant.Kind, dir) {
			return dir, true
		}
		return Offset{}, false
	}
}

// staysOnPin reports whether moving piece to dest keeps it on its pin line,
// which is trivially true for a piece that is not pinned.
func (b *Board) staysOnPin(piece *Piece, dest Square) bool {
	axis, pinned := b.pinAxis(piece)
	if !pinned {
		return true
	}
	dir, ok := direction(piece.Square, dest)
	return ok && (dir == axis || dir == axis.reverse())
}

// attacksAlong reports whether a sliding piece of kind attacks down a line
// running in dir. Pawns and knights never attack along a ray.
func attacksAlong(kind PieceKind, dir Offset) bool {
	switch kind {
	case Queen:
		return true
	case Bishop:
		return dir.diagonal()
	case Rook:
		return !dir.diagonal()
	}
	return false
}
