package phh

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/showdown/internal/game"
	"github.com/lox/showdown/poker"
)

// headsUpShove plays a heads-up hand where the small blind shoves and the
// button calls with aces.
func headsUpShove(t *testing.T) *game.HandRecord {
	t.Helper()

	holes := [][]poker.Card{poker.MustParseCards("As Ah"), poker.MustParseCards("Ks Kh")}
	deck := game.MustStackedDeck(0, holes, poker.MustParseCards("2c 7d 9h Jc 3s"))
	players := []*game.Player{game.NewPlayer(0, "alice", 100), game.NewPlayer(1, "bob", 100)}
	deciders := map[game.PlayerID]game.Decider{
		0: game.NewScriptedDecider(game.Call()),
		1: game.NewScriptedDecider(game.AllIn(100)),
	}
	hand := game.NewHand(deck, players, deciders, 0, 5, 10,
		game.WithHandID("hand-1"),
		game.WithHandNumber(7),
		game.WithLogger(log.New(io.Discard)),
	)

	record, err := hand.Play()
	require.NoError(t, err)
	record.StartedAt = time.Date(2024, time.March, 2, 14, 30, 5, 0, time.UTC)
	return record
}

func TestFromRecordHeadsUpShove(t *testing.T) {
	t.Parallel()

	h := FromRecord(headsUpShove(t), "main")

	assert.Equal(t, NoLimitHoldem, h.Variant)
	assert.Equal(t, "main", h.Table)
	assert.Equal(t, "hand-1", h.Hand)
	assert.Equal(t, 2, h.SeatCount)
	assert.Equal(t, []string{"bob", "alice"}, h.Players, "p1 is the small blind")
	assert.Equal(t, []int{2, 1}, h.Seats)
	assert.Equal(t, []int{0, 0}, h.Antes)
	assert.Equal(t, []int{5, 10}, h.BlindsOrStraddles)
	assert.Equal(t, 10, h.MinBet)
	assert.Equal(t, []int{100, 100}, h.StartingStacks)
	assert.Equal(t, []int{0, 200}, h.FinishingStacks)
	assert.Equal(t, []int{0, 200}, h.Winnings)
	assert.Equal(t, []string{
		"d dh p1 KsKh",
		"d dh p2 AsAh",
		"p1 cbr 100",
		"p2 cc",
		"d db 2c7d9h",
		"d db Jc",
		"d db 3s",
	}, h.Actions)

	assert.Equal(t, "14:30:05", h.Time)
	assert.Equal(t, "UTC", h.TimeZone)
	assert.Equal(t, []int{2, 3, 2024}, []int{h.Day, h.Month, h.Year})
	assert.Equal(t, 7, h.Metadata["hand_number"])
}

func TestFromRecordFoldedPreflop(t *testing.T) {
	t.Parallel()

	record := &game.HandRecord{
		ID:         "hand-2",
		Button:     0,
		SmallBlind: 1,
		BigBlind:   2,
		Players: []game.PlayerRecord{
			{ID: 0, Name: "a", Seat: 0, StartingChips: 50, FinalChips: 50},
			{ID: 1, Name: "b", Seat: 1, StartingChips: 50, FinalChips: 49},
			{ID: 2, Name: "c", Seat: 2, StartingChips: 50, FinalChips: 51},
		},
		Blinds: []game.BlindPost{{Player: 1, Amount: 1}, {Player: 2, Amount: 2, Big: true}},
		Streets: []game.StreetActions{{
			Street: game.Preflop,
			Actions: []game.PlayerAction{
				{Player: 0, Action: game.Fold()},
				{Player: 1, Action: game.Fold(), Forced: true},
			},
		}},
		Settlement: &game.Settlement{Awards: map[game.PlayerID]int{2: 3}},
	}

	h := FromRecord(record, "")
	assert.Equal(t, []string{"b", "c", "a"}, h.Players)
	assert.Equal(t, []int{1, 2, 0}, h.BlindsOrStraddles)
	assert.Equal(t, []int{0, 3, 0}, h.Winnings)
	assert.Equal(t, []string{"p3 f", "p1 f # illegal action"}, h.Actions)
	assert.Empty(t, h.Time, "zero start time is omitted")
}

func TestFormatAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		action      game.PlayerAction
		total, high int
		want        string
	}{
		{"fold", game.PlayerAction{Action: game.Fold()}, 0, 10, "p1 f"},
		{"check", game.PlayerAction{Action: game.Check()}, 0, 0, "p1 cc"},
		{"call", game.PlayerAction{Action: game.Call(), Chips: 10}, 10, 10, "p1 cc"},
		{"raise", game.PlayerAction{Action: game.Raise(20), Chips: 30}, 30, 10, "p1 cbr 30"},
		{"all-in over the bet", game.PlayerAction{Action: game.AllIn(40), Chips: 40}, 40, 10, "p1 cbr 40"},
		{"all-in short of the bet", game.PlayerAction{Action: game.AllIn(4), Chips: 4}, 4, 10, "p1 cc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatAction(0, tt.action, tt.total, tt.high))
		})
	}
}
