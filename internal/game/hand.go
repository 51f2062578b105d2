package game

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/showdown/poker"
)

// CardSource deals cards one at a time. Each card is dealt at most once per
// hand; poker.ErrDeckExhausted signals the source ran dry.
type CardSource interface {
	DealNext() (poker.Card, error)
}

// Phase is where a hand is in its lifecycle.
type Phase uint8

const (
	CollectingBlinds Phase = iota
	Betting
	HandComplete
)

func (p Phase) String() string {
	switch p {
	case CollectingBlinds:
		return "collecting blinds"
	case Betting:
		return "betting"
	case HandComplete:
		return "hand complete"
	default:
		return "unknown"
	}
}

// Hand runs a single hand from blinds to settlement. Players are borrowed
// from the table for the duration of Play and must be given in seat order.
type Hand struct {
	id         string
	number     int
	players    []*Player
	deciders   map[PlayerID]Decider
	button     int
	smallBlind int
	bigBlind   int
	deck       CardSource

	logger *log.Logger
	bus    *EventBus
	clock  quartz.Clock

	phase       Phase
	street      Street
	runout      []poker.Card
	board       []poker.Card
	blinds      []BlindPost
	history     []StreetActions
	starting    map[PlayerID]int
	forcedFolds int
}

// NewHand prepares a hand. button indexes the dealer within players.
func NewHand(deck CardSource, players []*Player, deciders map[PlayerID]Decider, button, smallBlind, bigBlind int, opts ...HandOption) *Hand {
	cfg := defaultHandConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	id := cfg.resolveID()
	return &Hand{
		id:         id,
		number:     cfg.number,
		players:    players,
		deciders:   deciders,
		button:     button,
		smallBlind: smallBlind,
		bigBlind:   bigBlind,
		deck:       deck,
		logger:     cfg.logger.With("hand", id),
		bus:        cfg.bus,
		clock:      cfg.clock,
		phase:      CollectingBlinds,
	}
}

// ID returns the hand identifier.
func (h *Hand) ID() string { return h.id }

// Phase returns the current lifecycle phase.
func (h *Hand) Phase() Phase { return h.phase }

// Street returns the street being played, or the last one played.
func (h *Hand) Street() Street { return h.street }

// Board returns the community cards revealed so far.
func (h *Hand) Board() []poker.Card { return slices.Clone(h.board) }

// Pot returns the chips committed by every player.
func (h *Hand) Pot() int {
	pot := 0
	for _, p := range h.players {
		pot += p.Committed
	}
	return pot
}

// Play runs the hand to completion and applies the awards to the players'
// stacks. A card source failure aborts the hand before any chip moves.
func (h *Hand) Play() (*HandRecord, error) {
	if len(h.players) < 2 {
		return nil, fmt.Errorf("%w: hand needs 2, have %d", ErrNotEnoughPlayers, len(h.players))
	}
	if h.button < 0 || h.button >= len(h.players) {
		return nil, fmt.Errorf("button %d out of range for %d players", h.button, len(h.players))
	}

	started := h.clock.Now()
	h.starting = make(map[PlayerID]int, len(h.players))
	for _, p := range h.players {
		h.starting[p.ID] = p.Chips
	}

	if err := h.deal(); err != nil {
		for _, p := range h.players {
			p.HoleCards = nil
		}
		return nil, fmt.Errorf("deal hand %s: %w", h.id, err)
	}

	h.postBlinds()
	h.publish(HandStartedEvent{
		HandID:  h.id,
		Button:  h.players[h.button].ID,
		Players: h.playerIDs(),
		Blinds:  h.blinds,
		At:      h.clock.Now(),
	})

	h.phase = Betting
	for _, street := range Streets {
		h.street = street
		if street != Preflop {
			h.startStreet(street)
		}
		if h.contenders() <= 1 {
			break
		}
		h.runStreet()
		if h.contenders() <= 1 {
			break
		}
	}

	settlement, err := Settle(h.players, h.board, h.button)
	if err != nil {
		h.logger.Error("Settlement failed", "err", err)
		return nil, fmt.Errorf("settle hand %s: %w", h.id, err)
	}
	for id, amount := range settlement.Awards {
		h.player(id).Chips += amount
	}
	h.phase = HandComplete

	record := h.record(settlement, started)
	h.logger.Debug("Hand complete", "pot", record.Pot(), "showdown", settlement.Showdown, "layers", len(settlement.Layers))
	h.publish(HandFinishedEvent{Record: record, At: record.FinishedAt})
	return record, nil
}

// deal draws every card the hand could need up front: two per player and
// the full board.
func (h *Hand) deal() error {
	n := len(h.players)
	for _, p := range h.players {
		p.HoleCards = make([]poker.Card, 0, 2)
	}
	for round := 0; round < 2; round++ {
		for i := 1; i <= n; i++ {
			p := h.players[(h.button+i)%n]
			card, err := h.deck.DealNext()
			if err != nil {
				return err
			}
			p.HoleCards = append(p.HoleCards, card)
		}
	}

	h.runout = make([]poker.Card, 0, 5)
	for len(h.runout) < 5 {
		card, err := h.deck.DealNext()
		if err != nil {
			return err
		}
		h.runout = append(h.runout, card)
	}
	return nil
}

// postBlinds takes the small blind from the seat after the button and the
// big blind from the next. Short stacks post what they have and go all-in.
func (h *Hand) postBlinds() {
	n := len(h.players)
	sb := h.players[(h.button+1)%n]
	bb := h.players[(h.button+2)%n]

	for _, blind := range []struct {
		p      *Player
		amount int
		big    bool
	}{
		{sb, h.smallBlind, false},
		{bb, h.bigBlind, true},
	} {
		posted := blind.p.commit(blind.amount)
		h.blinds = append(h.blinds, BlindPost{Player: blind.p.ID, Amount: posted, Big: blind.big})
		h.logger.Debug("Blind posted", "player", blind.p, "amount", posted, "big", blind.big)
	}
}

// startStreet clears street bets and reveals the street's community cards.
func (h *Hand) startStreet(street Street) {
	for _, p := range h.players {
		p.StreetBet = 0
	}
	h.board = h.runout[:street.BoardSize()]
	h.publish(StreetDealtEvent{
		HandID: h.id,
		Street: street,
		Board:  h.Board(),
		Pot:    h.Pot(),
		At:     h.clock.Now(),
	})
	h.logger.Debug("Street dealt", "street", street, "board", poker.FormatCards(h.board))
}

// contenders counts players who have not folded.
func (h *Hand) contenders() int {
	count := 0
	for _, p := range h.players {
		if p.InHand() {
			count++
		}
	}
	return count
}

func (h *Hand) player(id PlayerID) *Player {
	for _, p := range h.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (h *Hand) playerIDs() []PlayerID {
	ids := make([]PlayerID, len(h.players))
	for i, p := range h.players {
		ids[i] = p.ID
	}
	return ids
}

func (h *Hand) publish(event Event) {
	h.bus.Publish(event)
}
