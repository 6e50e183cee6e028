package model

// Seat is a player sitting at one side of the board.
type Seat struct {
	ID   string `json:"id"`
	Team Team   `json:"team"`
}

type Players struct {
	White Seat `json:"white"`
	Black Seat `json:"black"`
}

// TeamOf returns the side playerID is seated on.
func (p Players) TeamOf(playerID string) (Team, bool) {
	switch {
	case playerID == "":
		return "", false
	case p.White.ID == playerID:
		return White, true
	case p.Black.ID == playerID:
		return Black, true
	}
	return "", false
}
