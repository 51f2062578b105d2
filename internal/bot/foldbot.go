package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/showdown/internal/game"
)

// FoldBot checks when it is free and folds to any bet.
type FoldBot struct {
	logger *log.Logger
}

// NewFoldBot creates a FoldBot.
func NewFoldBot(logger *log.Logger) *FoldBot {
	return &FoldBot{logger: logger}
}

// Decide implements game.Decider.
func (f *FoldBot) Decide(req game.DecisionRequest) game.Action {
	if req.ToCall == 0 {
		return game.Check()
	}
	return game.Fold()
}
