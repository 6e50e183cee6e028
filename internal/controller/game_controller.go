package controller

import (
	"errors"

	"github.com/apex/log"
	"github.com/chessbored/backend/internal/model"
	"github.com/chessbored/backend/internal/position"
	"github.com/chessbored/backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	FEN string `json:"fen"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return errorResponse(c, fiber.StatusBadRequest, err)
		}
	}

	gameID, err := gc.gameService.CreateGame(req.FEN)
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	log.WithField("game", gameID).Info("game created")
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	team, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	log.WithFields(log.Fields{"game": gameID, "player": playerID, "team": team}).Info("player joined")
	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   team,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.JSON(gameState)
}

// GetLegalMoves returns the destinations of the piece on :square, for move
// hints.
func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	from, err := model.ParseSquare(c.Params("square"))
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err)
	}
	squares, err := gc.gameService.LegalDestinations(c.Params("gameId"), from)
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.JSON(fiber.Map{
		"square":       from,
		"destinations": squares,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var move model.MoveRequest
	if err := c.BodyParser(&move); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err)
	}
	ply, err := gc.gameService.HandleMove(gameID, playerID, move)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"game": gameID, "player": playerID}).Debug("move rejected")
		return errorResponse(c, statusFor(err), err)
	}
	return c.JSON(ply)
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.ResetGame(gameID, playerID); err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.JSON(fiber.Map{
		"message": "Game reset",
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrNotInGame):
		return fiber.StatusForbidden
	case errors.Is(err, model.ErrGameFull), errors.Is(err, model.ErrNotYourTurn):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrIllegalMove), errors.Is(err, model.ErrNoPiece):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, model.ErrInvalidSquare), errors.Is(err, position.ErrInvalidFEN):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func errorResponse(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
