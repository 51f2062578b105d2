package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/showdown/internal/gameid"
)

// DeckFactory returns a fresh card source for each hand.
type DeckFactory func() CardSource

// TableConfig holds the table's stakes and collaborators.
type TableConfig struct {
	SmallBlind int
	BigBlind   int
	Logger     *log.Logger
	Clock      quartz.Clock
	Events     *EventBus
}

// Seat pairs a player with the policy that acts for them.
type Seat struct {
	Player  *Player
	Decider Decider
}

// Table owns players across hands: it deals each hand, moves the button and
// removes players who have lost their stack.
type Table struct {
	config      TableConfig
	decks       DeckFactory
	logger      *log.Logger
	seats       []*Seat
	nextID      PlayerID
	button      PlayerID
	handsPlayed int
	totalChips  int
}

// NewTable creates an empty table.
func NewTable(config TableConfig, decks DeckFactory) *Table {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Table{
		config: config,
		decks:  decks,
		logger: config.Logger,
	}
}

// AddPlayer seats a player clockwise of everyone already seated. The first
// player seated starts with the button.
func (t *Table) AddPlayer(name string, chips int, decider Decider) *Player {
	p := NewPlayer(t.nextID, name, chips)
	t.nextID++
	if len(t.seats) == 0 {
		t.button = p.ID
	}
	t.seats = append(t.seats, &Seat{Player: p, Decider: decider})
	t.totalChips += chips
	return p
}

// Players returns the seated players in seat order.
func (t *Table) Players() []*Player {
	players := make([]*Player, len(t.seats))
	for i, s := range t.seats {
		players[i] = s.Player
	}
	return players
}

// Button returns the id of the player holding the dealer button.
func (t *Table) Button() PlayerID { return t.button }

// HandsPlayed returns the number of completed hands.
func (t *Table) HandsPlayed() int { return t.handsPlayed }

// TotalChips is the number of chips brought to the table.
func (t *Table) TotalChips() int { return t.totalChips }

// PlayHand plays one hand. On a card source failure nothing changes: no
// chips move and the button stays where it was.
func (t *Table) PlayHand() (*HandRecord, error) {
	if len(t.seats) < 2 {
		return nil, fmt.Errorf("%w: %d seated", ErrNotEnoughPlayers, len(t.seats))
	}

	players := t.Players()
	deciders := make(map[PlayerID]Decider, len(t.seats))
	button := 0
	for i, s := range t.seats {
		deciders[s.Player.ID] = s.Decider
		if s.Player.ID == t.button {
			button = i
		}
	}

	number := t.handsPlayed + 1
	hand := NewHand(t.decks(), players, deciders, button, t.config.SmallBlind, t.config.BigBlind,
		WithHandID(gameid.Generate()),
		WithHandNumber(number),
		WithLogger(t.logger),
		WithEventBus(t.config.Events),
		WithClock(t.config.Clock),
	)
	record, err := hand.Play()
	if err != nil {
		t.logger.Error("Hand aborted", "hand", hand.ID(), "err", err)
		return nil, err
	}
	t.handsPlayed = number

	t.finishHand()
	if err := t.ValidateChipConservation(); err != nil {
		t.logger.Error("Chip conservation failed", "hand", record.ID, "err", err)
		return record, err
	}
	return record, nil
}

// PlayHands plays up to n hands, stopping early once a single player holds
// every chip.
func (t *Table) PlayHands(n int) ([]*HandRecord, error) {
	var records []*HandRecord
	for i := 0; i < n && len(t.seats) >= 2; i++ {
		record, err := t.PlayHand()
		if err != nil {
			return records, err
		}
		records = append(records, record)
	}
	return records, nil
}

// finishHand removes busted players, resets everyone else and passes the
// button to the next surviving seat.
func (t *Table) finishHand() {
	old := t.button
	survivors := t.seats[:0]
	for _, s := range t.seats {
		if s.Player.Chips == 0 {
			t.logger.Info("Player eliminated", "player", s.Player, "hands", t.handsPlayed)
			continue
		}
		s.Player.ResetForNextHand()
		survivors = append(survivors, s)
	}
	clear(t.seats[len(survivors):])
	t.seats = survivors

	if len(t.seats) == 0 {
		return
	}
	// Seats are in ascending id order, so clockwise is the next larger id.
	t.button = t.seats[0].Player.ID
	for _, s := range t.seats {
		if s.Player.ID > old {
			t.button = s.Player.ID
			break
		}
	}
}

// ValidateChipConservation checks that the seated stacks still add up to
// the chips brought to the table.
func (t *Table) ValidateChipConservation() error {
	total := 0
	for _, s := range t.seats {
		total += s.Player.Chips
	}
	if total != t.totalChips {
		return fmt.Errorf("%w: table holds %d, expected %d", ErrChipConservation, total, t.totalChips)
	}
	return nil
}
