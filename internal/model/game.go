package model

import (
	"fmt"
	"sync"

	"github.com/apex/log"
)

// Game is one session: the board, whose turn it is, the move list and the
// two clocks. All methods are safe for concurrent use; moves are applied one
// at a time under the game lock.
type Game struct {
	ID         string
	mu         sync.Mutex
	board      *Board
	toMove     Team
	history    []Ply
	captured   CapturedPieces
	players    Players
	whiteClock *Clock
	blackClock *Clock
}

// Ply is one accepted move as it appears in the move list.
type Ply struct {
	Team          Team   `json:"team"`
	Piece         Piece  `json:"piece"`
	From          Square `json:"from"`
	To            Square `json:"to"`
	CapturedPiece *Piece `json:"capturedPiece"`
	EnPassant     bool   `json:"enPassant"`
	Notation      string `json:"notation"`
}

// CapturedPieces lists, per team, the pieces that team has taken.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

type ClockState struct {
	White int64 `json:"white"`
	Black int64 `json:"black"`
}

// GameState is the snapshot sent to clients.
type GameState struct {
	ID              string         `json:"id"`
	Pieces          []Piece        `json:"pieces"`
	ToMove          Team           `json:"toMove"`
	History         []Ply          `json:"history"`
	CapturedPieces  CapturedPieces `json:"capturedPieces"`
	LastMove        *Ply           `json:"lastMove"`
	EnPassantTarget Square         `json:"enPassantTarget"`
	Players         Players        `json:"players"`
	Clocks          ClockState     `json:"clocks"`
}

func NewGame(id string, control TimeControl) *Game {
	return NewGameFromBoard(id, NewBoard(), White, control)
}

// NewGameFromBoard starts a session from an arbitrary position.
func NewGameFromBoard(id string, board *Board, toMove Team, control TimeControl) *Game {
	return &Game{
		ID:         id,
		board:      board,
		toMove:     toMove,
		history:    make([]Ply, 0),
		captured:   newCapturedPieces(),
		whiteClock: NewClock(control),
		blackClock: NewClock(control),
	}
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]Piece, 0),
		Black: make([]Piece, 0),
	}
}

// AddPlayer seats playerID on the first free side.
func (g *Game) AddPlayer(playerID string) (Team, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if team, ok := g.players.TeamOf(playerID); ok {
		return team, nil
	}
	if g.players.White.ID == "" {
		g.players.White = Seat{ID: playerID, Team: White}
		return White, nil
	}
	if g.players.Black.ID == "" {
		g.players.Black = Seat{ID: playerID, Team: Black}
		return Black, nil
	}
	return "", ErrGameFull
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.players.TeamOf(playerID)
	return ok
}

// MakeMove plays from->to on behalf of a seated player.
func (g *Game) MakeMove(playerID string, from, to Square) (Ply, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	team, ok := g.players.TeamOf(playerID)
	if !ok {
		return Ply{}, ErrNotInGame
	}
	if team != g.toMove {
		return Ply{}, ErrNotYourTurn
	}
	return g.play(from, to)
}

// Play moves the piece on from to to for whichever side is to move.
func (g *Game) Play(from, to Square) (Ply, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.play(from, to)
}

func (g *Game) play(from, to Square) (Ply, error) {
	piece, ok := g.board.PieceAt(from)
	if !ok {
		return Ply{}, fmt.Errorf("%w: %s", ErrNoPiece, from)
	}
	if piece.Team != g.toMove {
		return Ply{}, ErrNotYourTurn
	}
	move, err := NewMove(g.board, from, to)
	if err != nil {
		return Ply{}, err
	}

	ply := Ply{
		Team:          move.Team,
		Piece:         move.Piece,
		From:          move.From,
		To:            move.To,
		CapturedPiece: move.Captured,
		EnPassant:     move.EnPassant,
		Notation:      Format(move),
	}

	mover := g.clock(g.toMove)
	mover.Stop()
	mover.AddIncrement()
	g.board.Apply(move)
	if !g.board.kingCacheConsistent() {
		log.WithFields(log.Fields{"game": g.ID, "move": move.String()}).Error("king position cache out of sync with board")
	}

	if move.Captured != nil {
		taken, _ := g.board.Piece(move.Captured.ID)
		switch move.Team {
		case White:
			g.captured.White = append(g.captured.White, taken)
		case Black:
			g.captured.Black = append(g.captured.Black, taken)
		}
	}
	g.history = append(g.history, ply)
	g.toMove = g.toMove.Opponent()
	g.clock(g.toMove).Start()

	log.WithFields(log.Fields{
		"game":     g.ID,
		"team":     ply.Team,
		"notation": ply.Notation,
	}).Debug("move played")
	return ply, nil
}

func (g *Game) clock(team Team) *Clock {
	if team == White {
		return g.whiteClock
	}
	return g.blackClock
}

// LegalDestinations lists the squares the piece on from may move to.
func (g *Game) LegalDestinations(from Square) []Square {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.LegalDestinations(from)
}

// Reset puts the pieces back, clears the history and restarts the clocks.
// Seated players keep their sides.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.board.Reset()
	g.toMove = White
	g.history = make([]Ply, 0)
	g.captured = newCapturedPieces()
	g.whiteClock.Reset()
	g.blackClock.Reset()
}

// Board returns a copy of the current position.
func (g *Game) Board() *Board {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.Clone()
}

func (g *Game) ToMove() Team {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.toMove
}

func (g *Game) History() []Ply {
	g.mu.Lock()
	defer g.mu.Unlock()

	return append([]Ply(nil), g.history...)
}

func (g *Game) State() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	state := GameState{
		ID:              g.ID,
		Pieces:          append(g.board.Pieces(White), g.board.Pieces(Black)...),
		ToMove:          g.toMove,
		History:         append(make([]Ply, 0, len(g.history)), g.history...),
		CapturedPieces:  g.captured,
		EnPassantTarget: g.board.EnPassantTarget(),
		Players:         g.players,
		Clocks: ClockState{
			White: g.whiteClock.TimeLeft().Milliseconds(),
			Black: g.blackClock.TimeLeft().Milliseconds(),
		},
	}
	if n := len(g.history); n > 0 {
		last := g.history[n-1]
		state.LastMove = &last
	}
	state.CapturedPieces.White = append(make([]Piece, 0, len(g.captured.White)), g.captured.White...)
	state.CapturedPieces.Black = append(make([]Piece, 0, len(g.captured.Black)), g.captured.Black...)
	return state
}
