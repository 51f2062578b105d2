package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/showdown/internal/game"
)

// RandBot picks uniformly among the legal actions, raising a random amount.
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a RandBot drawing from rng.
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

// Decide implements game.Decider.
func (r *RandBot) Decide(req game.DecisionRequest) game.Action {
	legal := game.LegalActions(req)
	if len(legal) == 0 {
		return game.Fold()
	}

	var action game.Action
	switch legal[r.rng.IntN(len(legal))] {
	case game.ActionFold:
		action = game.Fold()
	case game.ActionCheck:
		action = game.Check()
	case game.ActionCall:
		action = game.Call()
	case game.ActionRaise:
		action = game.Raise(1 + r.rng.IntN(req.Chips-req.ToCall))
	case game.ActionAllIn:
		action = game.AllIn(req.Chips)
	}
	r.logger.Debug("rand-bot decision", "player", req.Player, "action", action)
	return action
}
