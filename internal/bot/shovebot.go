package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/showdown/internal/game"
)

// ShoveBot goes all-in at every decision.
type ShoveBot struct {
	logger *log.Logger
}

// NewShoveBot creates a ShoveBot.
func NewShoveBot(logger *log.Logger) *ShoveBot {
	return &ShoveBot{logger: logger}
}

// Decide implements game.Decider.
func (s *ShoveBot) Decide(req game.DecisionRequest) game.Action {
	if req.Chips <= 0 {
		return game.Fold()
	}
	return game.AllIn(req.Chips)
}
