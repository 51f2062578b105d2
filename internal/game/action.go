package game

import "fmt"

// ActionKind tags the variant of an Action.
type ActionKind uint8

const (
	ActionFold ActionKind = iota
	ActionCheck
	ActionCall
	ActionRaise
	ActionAllIn
)

func (k ActionKind) String() string {
	switch k {
	case ActionFold:
		return "fold"
	case ActionCheck:
		return "check"
	case ActionCall:
		return "call"
	case ActionRaise:
		return "raise"
	case ActionAllIn:
		return "allin"
	default:
		return "unknown"
	}
}

// Action is a player decision. Amount is only meaningful for Raise (the
// increase over the current bet) and AllIn (chips committed). Build actions
// with the constructors below rather than by hand.
type Action struct {
	Kind   ActionKind
	Amount int
}

func Fold() Action  { return Action{Kind: ActionFold} }
func Check() Action { return Action{Kind: ActionCheck} }
func Call() Action  { return Action{Kind: ActionCall} }

// Raise increases the current bet by amount on top of what is owed.
func Raise(amount int) Action { return Action{Kind: ActionRaise, Amount: amount} }

// AllIn commits the whole stack. The engine records the actual stack size,
// so the amount passed here is informational.
func AllIn(amount int) Action { return Action{Kind: ActionAllIn, Amount: amount} }

func (a Action) String() string {
	switch a.Kind {
	case ActionRaise, ActionAllIn:
		return fmt.Sprintf("%s %d", a.Kind, a.Amount)
	default:
		return a.Kind.String()
	}
}

// PlayerAction is one entry of the action history. Forced marks a fold the
// engine substituted for an illegal action. Chips is what the action moved
// into the pot.
type PlayerAction struct {
	Player PlayerID
	Action Action
	Chips  int
	Forced bool
}

// StreetActions is the action log of one street.
type StreetActions struct {
	Street  Street
	Actions []PlayerAction
}

// BlindPost records a forced blind. Amount is below the nominal blind when
// the poster's stack was short.
type BlindPost struct {
	Player PlayerID
	Amount int
	Big    bool
}
