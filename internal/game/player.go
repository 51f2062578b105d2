package game

import (
	"fmt"

	"github.com/lox/showdown/poker"
)

// PlayerID identifies a player for as long as they sit at the table. IDs are
// never reused or shifted when other players leave.
type PlayerID int

// PlayerState is a player's standing within the current hand.
type PlayerState uint8

const (
	Active PlayerState = iota
	Folded
	AllIn
)

func (s PlayerState) String() string {
	switch s {
	case Active:
		return "active"
	case Folded:
		return "folded"
	case AllIn:
		return "all-in"
	default:
		return "unknown"
	}
}

// Player is a seat's stack plus its per-hand bookkeeping.
type Player struct {
	ID        PlayerID
	Name      string
	Chips     int
	HoleCards []poker.Card
	State     PlayerState
	Committed int // Total put into the pot this hand
	StreetBet int // Put in on the current street
}

// NewPlayer creates a player with a fresh stack.
func NewPlayer(id PlayerID, name string, chips int) *Player {
	return &Player{ID: id, Name: name, Chips: chips}
}

func (p *Player) String() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("player-%d", p.ID)
}

// InHand reports whether the player still has a claim on the pot.
func (p *Player) InHand() bool {
	return p.State != Folded
}

// CanAct reports whether the player can still make decisions.
func (p *Player) CanAct() bool {
	return p.State == Active
}

// commit moves chips from the stack into the pot. Committing the last chip
// puts the player all-in.
func (p *Player) commit(amount int) int {
	if amount > p.Chips {
		amount = p.Chips
	}
	p.Chips -= amount
	p.Committed += amount
	p.StreetBet += amount
	if p.Chips == 0 && p.State == Active {
		p.State = AllIn
	}
	return amount
}

// ResetForNextHand clears transient per-hand state.
func (p *Player) ResetForNextHand() {
	p.HoleCards = nil
	p.State = Active
	p.Committed = 0
	p.StreetBet = 0
}
