package game

import (
	"github.com/lox/showdown/poker"
)

// ScriptedDecider replays a fixed list of actions and records every request
// it was asked to answer. Once the script runs out it checks when it can
// and folds otherwise.
type ScriptedDecider struct {
	Actions  []Action
	Requests []DecisionRequest
}

// NewScriptedDecider creates a decider that plays actions in order.
func NewScriptedDecider(actions ...Action) *ScriptedDecider {
	return &ScriptedDecider{Actions: actions}
}

// Decide implements Decider.
func (d *ScriptedDecider) Decide(req DecisionRequest) Action {
	d.Requests = append(d.Requests, req)
	if len(d.Actions) == 0 {
		if req.ToCall == 0 {
			return Check()
		}
		return Fold()
	}
	next := d.Actions[0]
	d.Actions = d.Actions[1:]
	return next
}

// Calls returns how many times the decider was asked to act.
func (d *ScriptedDecider) Calls() int {
	return len(d.Requests)
}

// StackDeck orders cards so a hand dealt with the given button hands each
// seat its hole cards and then runs out the board. holes is indexed by
// seat.
func StackDeck(button int, holes [][]poker.Card, board []poker.Card) []poker.Card {
	n := len(holes)
	cards := make([]poker.Card, 0, 2*n+len(board))
	for round := 0; round < 2; round++ {
		for i := 1; i <= n; i++ {
			cards = append(cards, holes[(button+i)%n][round])
		}
	}
	return append(cards, board...)
}

// MustStackedDeck builds a stacked card source from StackDeck's layout and
// panics on duplicate cards.
func MustStackedDeck(button int, holes [][]poker.Card, board []poker.Card) *poker.Deck {
	deck, err := poker.NewStackedDeck(StackDeck(button, holes, board)...)
	if err != nil {
		panic(err)
	}
	return deck
}
