// Package bot provides ready-made deciders for simulated players.
package bot

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/showdown/internal/game"
)

// ErrUnknownStrategy is returned by New for an unrecognised strategy name.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy names accepted by New.
const (
	StrategyRandom = "random"
	StrategyCall   = "call"
	StrategyFold   = "fold"
	StrategyShove  = "shove"
	StrategyChart  = "chart"
)

// Strategies lists every strategy name in a stable order.
var Strategies = []string{StrategyRandom, StrategyCall, StrategyFold, StrategyShove, StrategyChart}

// Known reports whether name is a strategy New can build.
func Known(name string) bool {
	return slices.Contains(Strategies, name)
}

// New builds the decider for a strategy. rng is only used by strategies that
// randomise and must not be shared across goroutines.
func New(name string, rng *rand.Rand, logger *log.Logger) (game.Decider, error) {
	switch name {
	case StrategyRandom:
		return NewRandBot(rng, logger), nil
	case StrategyCall:
		return NewCallBot(logger), nil
	case StrategyFold:
		return NewFoldBot(logger), nil
	case StrategyShove:
		return NewShoveBot(logger), nil
	case StrategyChart:
		return NewChartBot(logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

func has(legal []game.ActionKind, kind game.ActionKind) bool {
	return slices.Contains(legal, kind)
}

// passive checks when free and calls when affordable, otherwise folds.
func passive(req game.DecisionRequest) game.Action {
	legal := game.LegalActions(req)
	switch {
	case has(legal, game.ActionCheck):
		return game.Check()
	case has(legal, game.ActionCall):
		return game.Call()
	default:
		return game.Fold()
	}
}
