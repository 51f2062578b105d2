package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/showdown/internal/game"
	"github.com/lox/showdown/poker"
)

// ChartBot plays a push-fold preflop chart and checks or calls after the
// flop with any made hand.
type ChartBot struct {
	logger *log.Logger
}

// NewChartBot creates a ChartBot.
func NewChartBot(logger *log.Logger) *ChartBot {
	return &ChartBot{logger: logger}
}

// Decide implements game.Decider.
func (c *ChartBot) Decide(req game.DecisionRequest) game.Action {
	if req.Street == game.Preflop {
		return c.preflop(req)
	}

	hand, err := poker.Evaluate(append(append([]poker.Card{}, req.HoleCards...), req.Board...))
	if err != nil {
		c.logger.Warn("chart-bot could not evaluate", "player", req.Player, "err", err)
		return passive(req)
	}
	if hand.Category >= poker.TwoPair && has(game.LegalActions(req), game.ActionRaise) {
		return game.Raise(min(max(req.Pot/2, 1), req.Chips-req.ToCall))
	}
	if hand.Category >= poker.Pair || req.ToCall == 0 {
		return passive(req)
	}
	return game.Fold()
}

func (c *ChartBot) preflop(req game.DecisionRequest) game.Action {
	category := poker.CategorizeHoleCards(req.HoleCards)
	c.logger.Debug("chart-bot preflop", "player", req.Player, "hole", poker.FormatCards(req.HoleCards), "category", category)

	switch category {
	case poker.CategoryPremium:
		return game.AllIn(req.Chips)
	case poker.CategoryStrong, poker.CategoryMedium:
		return passive(req)
	default:
		if req.ToCall == 0 {
			return game.Check()
		}
		return game.Fold()
	}
}
