package phh

import (
	"fmt"
	"strings"

	"github.com/lox/showdown/internal/game"
	"github.com/lox/showdown/poker"
)

// FromRecord converts a settled hand into a PHH hand history. Bets are
// written as street totals, the way PHH "cbr" expects them.
func FromRecord(record *game.HandRecord, table string) *HandHistory {
	order := seatOrder(record)
	index := make(map[game.PlayerID]int, len(order))
	for i, p := range order {
		index[p.ID] = i
	}

	n := len(order)
	h := &HandHistory{
		Variant:           NoLimitHoldem,
		Table:             table,
		SeatCount:         n,
		Seats:             make([]int, n),
		Antes:             make([]int, n),
		BlindsOrStraddles: make([]int, n),
		MinBet:            record.BigBlind,
		StartingStacks:    make([]int, n),
		FinishingStacks:   make([]int, n),
		Winnings:          make([]int, n),
		Players:           make([]string, n),
		Hand:              record.ID,
		Metadata: map[string]any{
			"hand_number":  record.Number,
			"forced_folds": record.ForcedFolds,
		},
	}
	for i, p := range order {
		h.Seats[i] = p.Seat + 1
		h.StartingStacks[i] = p.StartingChips
		h.FinishingStacks[i] = p.FinalChips
		h.Players[i] = p.Name
		if record.Settlement != nil {
			h.Winnings[i] = record.Settlement.Awards[p.ID]
		}
	}
	for _, blind := range record.Blinds {
		h.BlindsOrStraddles[index[blind.Player]] = blind.Amount
	}

	if !record.StartedAt.IsZero() {
		at := record.StartedAt.UTC()
		h.Time = at.Format("15:04:05")
		h.TimeZone = "UTC"
		h.Day, h.Month, h.Year = at.Day(), int(at.Month()), at.Year()
	}

	h.Actions = actions(record, order, index)
	return h
}

// seatOrder lists players starting from the small blind.
func seatOrder(record *game.HandRecord) []game.PlayerRecord {
	button := 0
	for i, p := range record.Players {
		if p.ID == record.Button {
			button = i
		}
	}
	n := len(record.Players)
	order := make([]game.PlayerRecord, 0, n)
	for i := 1; i <= n; i++ {
		order = append(order, record.Players[(button+i)%n])
	}
	return order
}

func actions(record *game.HandRecord, order []game.PlayerRecord, index map[game.PlayerID]int) []string {
	var out []string
	for i, p := range order {
		if len(p.HoleCards) > 0 {
			out = append(out, fmt.Sprintf("d dh p%d %s", i+1, joinCards(p.HoleCards)))
		}
	}

	bets := make(map[game.PlayerID]int, len(order))
	for _, blind := range record.Blinds {
		bets[blind.Player] += blind.Amount
	}

	for _, street := range record.Streets {
		if street.Street != game.Preflop {
			clear(bets)
			lo, hi := (street.Street - 1).BoardSize(), street.Street.BoardSize()
			if len(record.Board) >= hi {
				out = append(out, "d db "+joinCards(record.Board[lo:hi]))
			}
		}

		high := 0
		for _, bet := range bets {
			high = max(high, bet)
		}
		for _, pa := range street.Actions {
			bets[pa.Player] += pa.Chips
			out = append(out, formatAction(index[pa.Player], pa, bets[pa.Player], high))
			high = max(high, bets[pa.Player])
		}
	}
	return out
}

// formatAction renders one action. total is the player's street total after
// the action; high is the street's largest bet before it.
func formatAction(seat int, pa game.PlayerAction, total, high int) string {
	player := fmt.Sprintf("p%d", seat+1)
	switch pa.Action.Kind {
	case game.ActionFold:
		if pa.Forced {
			return player + " f # illegal action"
		}
		return player + " f"
	case game.ActionRaise:
		return fmt.Sprintf("%s cbr %d", player, total)
	case game.ActionAllIn:
		if total > high {
			return fmt.Sprintf("%s cbr %d", player, total)
		}
		return player + " cc"
	default:
		return player + " cc"
	}
}

func joinCards(cards []poker.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}
