// service/game_manager.go
package service

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/apex/log"
	"github.com/chessbored/backend/internal/model"
	"github.com/chessbored/backend/internal/ws"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

// Subscriber receives state broadcasts. Implementations must be safe for
// concurrent use; sockets are wrapped in a ws.Conn.
type Subscriber interface {
	WriteJSON(v interface{}) error
}

type GameManager struct {
	games       map[string]*model.Game
	subscribers map[string]map[string]Subscriber // gameID -> playerID -> connection
	sending     map[string]*sync.Mutex
	control     model.TimeControl
	mu          sync.RWMutex
}

func NewGameManager(control model.TimeControl) *GameManager {
	return &GameManager{
		games:       make(map[string]*model.Game),
		subscribers: make(map[string]map[string]Subscriber),
		sending:     make(map[string]*sync.Mutex),
		control:     control,
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	return gm.AddGame(model.NewGame(gameID, gm.control))
}

func (gm *GameManager) AddGame(game *model.Game) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[game.ID]; exists {
		return ErrGameExists
	}
	gm.games[game.ID] = game
	gm.subscribers[game.ID] = make(map[string]Subscriber)
	gm.sending[game.ID] = &sync.Mutex{}
	return nil
}

func (gm *GameManager) TimeControl() model.TimeControl {
	return gm.control
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Team, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.AddPlayer(playerID)
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.State(), nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, from, to model.Square) (model.Ply, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.Ply{}, err
	}
	ply, err := game.MakeMove(playerID, from, to)
	if err != nil {
		return model.Ply{}, err
	}
	gm.Broadcast(gameID)
	return ply, nil
}

func (gm *GameManager) ResetGame(gameID string, playerID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	if !game.IsPlayerInGame(playerID) {
		return model.ErrNotInGame
	}
	game.Reset()
	gm.Broadcast(gameID)
	return nil
}

// RegisterConnection subscribes playerID to state broadcasts for gameID. A
// second connection for the same player replaces the first.
func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn Subscriber) error {
	gm.mu.Lock()
	subs, exists := gm.subscribers[gameID]
	if !exists {
		gm.mu.Unlock()
		return ErrGameNotFound
	}
	subs[playerID] = conn
	gm.mu.Unlock()

	log.WithFields(log.Fields{"game": gameID, "player": playerID}).Info("connection registered")
	gm.Broadcast(gameID)
	return nil
}

// UnregisterConnection removes conn from gameID. It does nothing when the
// player has since registered a newer connection.
func (gm *GameManager) UnregisterConnection(gameID string, playerID string, conn Subscriber) {
	if gm.dropConnection(gameID, playerID, conn) {
		log.WithFields(log.Fields{"game": gameID, "player": playerID}).Info("connection unregistered")
	}
}

func (gm *GameManager) dropConnection(gameID string, playerID string, conn Subscriber) bool {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	subs, exists := gm.subscribers[gameID]
	if !exists || subs[playerID] != conn {
		return false
	}
	delete(subs, playerID)
	return true
}

// Broadcast sends the current state of gameID to every subscriber, dropping
// those whose write fails. Broadcasts for one game go out one at a time and
// read the state only once they hold the turn, so the last one sent always
// carries the latest position. No manager lock is held while writing.
func (gm *GameManager) Broadcast(gameID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}

	gm.mu.RLock()
	sending := gm.sending[gameID]
	gm.mu.RUnlock()
	sending.Lock()
	defer sending.Unlock()

	payload, err := json.Marshal(game.State())
	if err != nil {
		log.WithError(err).WithField("game", gameID).Error("failed to marshal state")
		return
	}
	msg := ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: json.RawMessage(payload),
	}

	gm.mu.RLock()
	targets := make(map[string]Subscriber, len(gm.subscribers[gameID]))
	for playerID, conn := range gm.subscribers[gameID] {
		targets[playerID] = conn
	}
	gm.mu.RUnlock()

	for playerID, conn := range targets {
		if err := conn.WriteJSON(msg); err != nil {
			log.WithError(err).WithFields(log.Fields{"game": gameID, "player": playerID}).Warn("failed to send state")
			gm.dropConnection(gameID, playerID, conn)
		}
	}
}
