package model

import (
	"encoding/json"
	"fmt"
)

const boardSize = 8

// Square is one of the 64 board positions, indexed rank*8+file with a1 = 0.
// The only ways to build one are SquareAt, ParseSquare and Square.Offset, all
// of which refuse coordinates outside the board.
type Square int8

// NoSquare is where captured pieces are parked.
const NoSquare Square = -1

type Offset struct {
	File int
	Rank int
}

var (
	rookDirs   = []Offset{{File: 1, Rank: 0}, {File: -1, Rank: 0}, {File: 0, Rank: 1}, {File: 0, Rank: -1}}
	bishopDirs = []Offset{{File: 1, Rank: 1}, {File: 1, Rank: -1}, {File: -1, Rank: 1}, {File: -1, Rank: -1}}
	queenDirs  = append(append([]Offset{}, rookDirs...), bishopDirs...)
	knightDirs = []Offset{{File: 2, Rank: 1}, {File: 2, Rank: -1}, {File: -2, Rank: 1}, {File: -2, Rank: -1}, {File: 1, Rank: 2}, {File: 1, Rank: -2}, {File: -1, Rank: 2}, {File: -1, Rank: -2}}
)

func boundaryCheck(file, rank int) bool {
	return file >= 0 && file < boardSize && rank >= 0 && rank < boardSize
}

// SquareAt returns the square at the given zero-based file and rank.
func SquareAt(file, rank int) (Square, bool) {
	if !boundaryCheck(file, rank) {
		return NoSquare, false
	}
	return Square(rank*boardSize + file), true
}

// ParseSquare reads algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	sq, ok := SquareAt(int(s[0]-'a'), int(s[1]-'1'))
	if !ok {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return sq, nil
}

// MustParseSquare is ParseSquare for literals known to be valid.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

func (s Square) Valid() bool {
	return s >= 0 && s < boardSize*boardSize
}

func (s Square) File() int {
	return int(s) % boardSize
}

func (s Square) Rank() int {
	return int(s) / boardSize
}

// Offset steps from s by o, reporting false when the result leaves the board.
func (s Square) Offset(o Offset) (Square, bool) {
	if !s.Valid() {
		return NoSquare, false
	}
	return SquareAt(s.File()+o.File, s.Rank()+o.Rank)
}

func (s Square) FileNotation() string {
	return fmt.Sprintf("%c", 'a'+s.File())
}

func (s Square) RankNotation() string {
	return fmt.Sprintf("%d", s.Rank()+1)
}

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return s.FileNotation() + s.RankNotation()
}

func (s Square) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(s.String())
}

func (s *Square) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = NoSquare
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	sq, err := ParseSquare(raw)
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

// direction returns the unit step leading from one square to another and
// whether the two share a rank, file or diagonal.
func direction(from, to Square) (Offset, bool) {
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()
	if df == 0 && dr == 0 {
		return Offset{}, false
	}
	if df != 0 && dr != 0 && abs(df) != abs(dr) {
		return Offset{}, false
	}
	return Offset{File: sign(df), Rank: sign(dr)}, true
}

func (o Offset) diagonal() bool {
	return o.File != 0 && o.Rank != 0
}

func (o Offset) reverse() Offset {
	return Offset{File: -o.File, Rank: -o.Rank}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
