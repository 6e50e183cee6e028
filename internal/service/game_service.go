package service

import (
	"fmt"

	"github.com/chessbored/backend/internal/model"
	"github.com/chessbored/backend/internal/position"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

// CreateGame starts a game from the standard position, or from fen when it
// is not empty.
func (gs *GameService) CreateGame(fen string) (string, error) {
	gameID := uuid.New().String()

	game := model.NewGame(gameID, gs.gameManager.TimeControl())
	if fen != "" {
		board, toMove, err := position.FromFEN(fen)
		if err != nil {
			return "", err
		}
		game = model.NewGameFromBoard(gameID, board, toMove, gs.gameManager.TimeControl())
	}

	if err := gs.gameManager.AddGame(game); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.Team, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) LegalDestinations(gameID string, from model.Square) ([]model.Square, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.LegalDestinations(from), nil
}

func (gs *GameService) HandleMove(gameID string, playerID string, move model.MoveRequest) (model.Ply, error) {
	return gs.gameManager.MakeMove(gameID, playerID, move.From, move.To)
}

func (gs *GameService) ResetGame(gameID string, playerID string) error {
	return gs.gameManager.ResetGame(gameID, playerID)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn Subscriber) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn Subscriber) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}
