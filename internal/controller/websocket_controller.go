package controller

import (
	"encoding/json"
	"fmt"

	"github.com/apex/log"
	"github.com/chessbored/backend/internal/model"
	"github.com/chessbored/backend/internal/service"
	"github.com/chessbored/backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals("wsGameID").(string)
	playerID, _ := c.Locals("wsPlayerID").(string)
	logger := log.WithFields(log.Fields{"game": gameID, "player": playerID})

	conn := ws.NewConn(c)
	if err := wsc.gameService.RegisterConnection(gameID, playerID, conn); err != nil {
		logger.WithError(err).Warn("failed to register connection")
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			logger.WithError(err).Debug("read error")
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			logger.WithError(err).Debug("parse error")
			wsc.sendError(conn, err)
			continue
		}

		reply, err := wsc.handleMessage(gameID, playerID, msg)
		if err != nil {
			logger.WithError(err).Debug("handle error")
			wsc.sendError(conn, err)
			continue
		}
		if reply != nil {
			if err := conn.WriteJSON(reply); err != nil {
				logger.WithError(err).Debug("write error")
				break
			}
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID, conn)
}

// handleMessage dispatches one client message. Moves and resets answer via
// the state broadcast, so only legal-move queries return a direct reply.
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) (*ws.Message, error) {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return nil, err
		}
		_, err := wsc.gameService.HandleMove(gameID, playerID, move)
		return nil, err

	case ws.MessageTypeLegalMoves:
		var req ws.LegalMovesRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return nil, err
		}
		from, err := model.ParseSquare(req.Square)
		if err != nil {
			return nil, err
		}
		squares, err := wsc.gameService.LegalDestinations(gameID, from)
		if err != nil {
			return nil, err
		}
		resp := ws.LegalMovesResponse{Square: from.String(), Destinations: make([]string, 0, len(squares))}
		for _, sq := range squares {
			resp.Destinations = append(resp.Destinations, sq.String())
		}
		reply, err := ws.NewMessage(ws.MessageTypeLegalMoves, resp)
		return &reply, err

	case ws.MessageTypeReset:
		return nil, wsc.gameService.ResetGame(gameID, playerID)
	}
	return nil, fmt.Errorf("unknown message type: %s", msg.Type)
}

func (wsc *WebSocketController) sendError(c *ws.Conn, err error) {
	msg, mErr := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()})
	if mErr != nil {
		return
	}
	c.WriteJSON(msg)
}
