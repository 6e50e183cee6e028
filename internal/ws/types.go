package ws

import (
	"encoding/json"
	"sync"
)

// MessageType represents the different kinds of messages exchanged over a
// game socket
type MessageType string

const (
	MessageTypeMove       MessageType = "move"
	MessageTypeLegalMoves MessageType = "legalMoves"
	MessageTypeReset      MessageType = "reset"
	MessageTypeGameState  MessageType = "gameState"
	MessageTypeError      MessageType = "error"
)

// Message is the envelope for every socket message
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// LegalMovesRequest asks for the destinations of the piece on Square
type LegalMovesRequest struct {
	Square string `json:"square"`
}

type LegalMovesResponse struct {
	Square       string   `json:"square"`
	Destinations []string `json:"destinations"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage marshals payload into a Message of type t.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}

// JSONWriter is the write side of a socket. *websocket.Conn satisfies it.
type JSONWriter interface {
	WriteJSON(v interface{}) error
}

// Conn serializes writes to one socket. The read loop replies on it while
// other players' moves broadcast state to it, and the underlying connection
// allows only one writer at a time.
type Conn struct {
	mu sync.Mutex
	w  JSONWriter
}

func NewConn(w JSONWriter) *Conn {
	return &Conn{w: w}
}

func (c *Conn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w.WriteJSON(v)
}
