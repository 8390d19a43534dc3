package ronda

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"quince-server/pkg/deck"
)

// LogMessage is the format the engine sends game-log messages in.
// If Players is empty, assume it's a general statement, otherwise the message
// will be rendered like "{player} did X, Y, Z"
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Players []string     `json:"players"`
	Cards   []*deck.Card `json:"cards"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

func newLogMessage(player string, cards []*deck.Card, format string, a ...interface{}) *LogMessage {
	var players []string
	if player != "" {
		players = []string{player}
	}

	return &LogMessage{
		UUID:    uuid.New().String(),
		Players: players,
		Cards:   cards,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}
