package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/showdown/internal/game"
)

// CallBot is a calling station: it checks when it can, calls when it can
// afford to and puts the rest of its stack in when it cannot.
type CallBot struct {
	logger *log.Logger
}

// NewCallBot creates a CallBot.
func NewCallBot(logger *log.Logger) *CallBot {
	return &CallBot{logger: logger}
}

// Decide implements game.Decider.
func (c *CallBot) Decide(req game.DecisionRequest) game.Action {
	legal := game.LegalActions(req)
	switch {
	case has(legal, game.ActionCheck):
		return game.Check()
	case has(legal, game.ActionCall):
		return game.Call()
	case has(legal, game.ActionAllIn):
		c.logger.Debug("call-bot calling all-in", "player", req.Player, "to_call", req.ToCall, "chips", req.Chips)
		return game.AllIn(req.Chips)
	default:
		return game.Fold()
	}
}
