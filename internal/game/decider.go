package game

import (
	"fmt"

	"github.com/lox/showdown/poker"
)

// DecisionRequest is everything a player is shown when asked to act.
type DecisionRequest struct {
	HandID     string
	Player     PlayerID
	Street     Street
	Pot        int
	Board      []poker.Card
	HoleCards  []poker.Card
	ToCall     int
	Chips      int
	CurrentBet int
	Blinds     []BlindPost
	History    []StreetActions
}

// Decider chooses an action for a player. It is called synchronously and
// the hand blocks until it returns.
type Decider interface {
	Decide(req DecisionRequest) Action
}

// DeciderFunc adapts a function to the Decider interface.
type DeciderFunc func(req DecisionRequest) Action

// Decide implements Decider.
func (f DeciderFunc) Decide(req DecisionRequest) Action {
	return f(req)
}

// LegalActions lists the action kinds that ValidateAction would accept for
// the request. Raise is listed only when at least one chip can go in above
// the call.
func LegalActions(req DecisionRequest) []ActionKind {
	if req.Chips <= 0 {
		return nil
	}
	legal := []ActionKind{ActionFold}
	if req.ToCall == 0 {
		legal = append(legal, ActionCheck)
	}
	if req.ToCall > 0 && req.Chips >= req.ToCall {
		legal = append(legal, ActionCall)
	}
	if req.Chips > req.ToCall {
		legal = append(legal, ActionRaise)
	}
	return append(legal, ActionAllIn)
}

// ValidateAction checks an action against the request it answers. Errors
// wrap ErrIllegalAction.
func ValidateAction(req DecisionRequest, a Action) error {
	switch a.Kind {
	case ActionFold:
		return nil
	case ActionCheck:
		if req.ToCall != 0 {
			return fmt.Errorf("%w: cannot check facing %d", ErrIllegalAction, req.ToCall)
		}
	case ActionCall:
		if req.ToCall <= 0 {
			return fmt.Errorf("%w: nothing to call", ErrIllegalAction)
		}
		if req.Chips < req.ToCall {
			return fmt.Errorf("%w: call of %d with %d chips", ErrIllegalAction, req.ToCall, req.Chips)
		}
	case ActionRaise:
		if a.Amount <= 0 {
			return fmt.Errorf("%w: raise amount must be positive, got %d", ErrIllegalAction, a.Amount)
		}
		if req.Chips < req.ToCall+a.Amount {
			return fmt.Errorf("%w: raise of %d over %d with %d chips", ErrIllegalAction, a.Amount, req.ToCall, req.Chips)
		}
	case ActionAllIn:
		if req.Chips <= 0 {
			return fmt.Errorf("%w: no chips to go all-in with", ErrIllegalAction)
		}
	default:
		return fmt.Errorf("%w: unknown action kind %d", ErrIllegalAction, a.Kind)
	}
	return nil
}
