package game

import (
	"slices"
	"time"

	"github.com/lox/showdown/poker"
)

// PlayerRecord is a player's view of a finished hand.
type PlayerRecord struct {
	ID            PlayerID
	Name          string
	Seat          int
	StartingChips int
	FinalChips    int
	Committed     int
	HoleCards     []poker.Card
	State         PlayerState
}

// Net is the player's chip change over the hand.
func (r PlayerRecord) Net() int {
	return r.FinalChips - r.StartingChips
}

// HandRecord is the complete history of one settled hand.
type HandRecord struct {
	ID          string
	Number      int
	Button      PlayerID
	SmallBlind  int
	BigBlind    int
	Players     []PlayerRecord
	Board       []poker.Card
	Blinds      []BlindPost
	Streets     []StreetActions
	Settlement  *Settlement
	ForcedFolds int
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Pot is the total chips contested in the hand.
func (r *HandRecord) Pot() int {
	pot := 0
	for _, p := range r.Players {
		pot += p.Committed
	}
	return pot
}

// Player looks up a player's record by id.
func (r *HandRecord) Player(id PlayerID) (PlayerRecord, bool) {
	for _, p := range r.Players {
		if p.ID == id {
			return p, true
		}
	}
	return PlayerRecord{}, false
}

// Winners lists players who received chips, in seat order.
func (r *HandRecord) Winners() []PlayerID {
	var winners []PlayerID
	for _, p := range r.Players {
		if r.Settlement != nil && r.Settlement.Awards[p.ID] > 0 {
			winners = append(winners, p.ID)
		}
	}
	return winners
}

// Busted lists players who finished the hand with no chips.
func (r *HandRecord) Busted() []PlayerID {
	var busted []PlayerID
	for _, p := range r.Players {
		if p.FinalChips == 0 {
			busted = append(busted, p.ID)
		}
	}
	return busted
}

// SidePots reports whether the pot was split into more than one layer.
func (r *HandRecord) SidePots() bool {
	return r.Settlement != nil && len(r.Settlement.Layers) > 1
}

// SplitPot reports whether any layer was shared between winners.
func (r *HandRecord) SplitPot() bool {
	if r.Settlement == nil {
		return false
	}
	for _, layer := range r.Settlement.Layers {
		if len(layer.Winners) > 1 {
			return true
		}
	}
	return false
}

func (h *Hand) record(settlement *Settlement, started time.Time) *HandRecord {
	players := make([]PlayerRecord, len(h.players))
	for i, p := range h.players {
		players[i] = PlayerRecord{
			ID:            p.ID,
			Name:          p.Name,
			Seat:          i,
			StartingChips: h.starting[p.ID],
			FinalChips:    p.Chips,
			Committed:     p.Committed,
			HoleCards:     slices.Clone(p.HoleCards),
			State:         p.State,
		}
	}

	return &HandRecord{
		ID:          h.id,
		Number:      h.number,
		Button:      h.players[h.button].ID,
		SmallBlind:  h.smallBlind,
		BigBlind:    h.bigBlind,
		Players:     players,
		Board:       h.Board(),
		Blinds:      slices.Clone(h.blinds),
		Streets:     slices.Clone(h.history),
		Settlement:  settlement,
		ForcedFolds: h.forcedFolds,
		StartedAt:   started,
		FinishedAt:  h.clock.Now(),
	}
}
