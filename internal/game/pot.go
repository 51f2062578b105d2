package game

import (
	"fmt"
	"slices"

	"github.com/lox/showdown/poker"
)

// PotLayer is one slice of the pot, capped at a contribution level. Only
// unfolded players who put in at least Cap can win it.
type PotLayer struct {
	Cap      int
	Amount   int
	Eligible []PlayerID
	Winners  []PlayerID
}

// Settlement is the outcome of distributing a finished hand's pot.
type Settlement struct {
	Layers   []PotLayer
	Awards   map[PlayerID]int
	Showdown bool
	Hands    map[PlayerID]poker.EvaluatedHand
}

// Total is the number of chips awarded.
func (s *Settlement) Total() int {
	total := 0
	for _, amount := range s.Awards {
		total += amount
	}
	return total
}

// Settle splits committed chips into capped layers and awards each layer to
// the best eligible hand. Players must be in seat order; button indexes the
// dealer within players. When only one player is unfolded they take every
// layer without any hand being evaluated. Settle does not modify players.
func Settle(players []*Player, board []poker.Card, button int) (*Settlement, error) {
	var contenders []*Player
	committed := 0
	for _, p := range players {
		committed += p.Committed
		if p.InHand() {
			contenders = append(contenders, p)
		}
	}
	if len(contenders) == 0 {
		return nil, ErrNoContenders
	}

	s := &Settlement{
		Layers: buildLayers(players, contenders),
		Awards: make(map[PlayerID]int, len(contenders)),
	}

	if len(contenders) == 1 {
		winner := contenders[0].ID
		for i := range s.Layers {
			s.Layers[i].Winners = []PlayerID{winner}
			s.Awards[winner] += s.Layers[i].Amount
		}
	} else {
		if err := s.showdown(players, contenders, board, button); err != nil {
			return nil, err
		}
	}

	if total := s.Total(); total != committed {
		return nil, fmt.Errorf("%w: awarded %d of %d committed", ErrChipConservation, total, committed)
	}
	return s, nil
}

// buildLayers derives caps from every all-in contender's contribution plus
// the largest contender contribution. Each player pays into a layer whatever
// part of their contribution falls between the previous cap and this one.
func buildLayers(players, contenders []*Player) []PotLayer {
	var caps []int
	top := 0
	for _, p := range contenders {
		if p.State == AllIn {
			caps = append(caps, p.Committed)
		}
		top = max(top, p.Committed)
	}
	caps = append(caps, top)
	slices.Sort(caps)
	caps = slices.Compact(caps)

	var layers []PotLayer
	prev := 0
	for _, c := range caps {
		if c <= prev {
			continue
		}
		layer := PotLayer{Cap: c}
		for _, p := range players {
			layer.Amount += min(p.Committed, c) - min(p.Committed, prev)
		}
		for _, p := range contenders {
			if p.Committed >= c {
				layer.Eligible = append(layer.Eligible, p.ID)
			}
		}
		layers = append(layers, layer)
		prev = c
	}

	// Dead money above the top cap can only come from folded players. It
	// goes to the top layer so nothing is left unassigned.
	dead := 0
	for _, p := range players {
		dead += max(p.Committed-prev, 0)
	}
	if dead > 0 {
		if len(layers) == 0 {
			layer := PotLayer{Cap: prev}
			for _, p := range contenders {
				layer.Eligible = append(layer.Eligible, p.ID)
			}
			layers = append(layers, layer)
		}
		layers[len(layers)-1].Amount += dead
	}
	return layers
}

func (s *Settlement) showdown(players, contenders []*Player, board []poker.Card, button int) error {
	s.Showdown = true
	s.Hands = make(map[PlayerID]poker.EvaluatedHand, len(contenders))
	for _, p := range contenders {
		cards := make([]poker.Card, 0, len(p.HoleCards)+len(board))
		cards = append(append(cards, p.HoleCards...), board...)
		hand, err := poker.BestOfSeven(cards)
		if err != nil {
			return fmt.Errorf("evaluate %s: %w", p, err)
		}
		s.Hands[p.ID] = hand
	}

	order := seatOrderFromButton(players, button)
	for i := range s.Layers {
		layer := &s.Layers[i]
		layer.Winners = s.bestOf(layer.Eligible)
		slices.SortFunc(layer.Winners, func(a, b PlayerID) int {
			return order[a] - order[b]
		})

		share := layer.Amount / len(layer.Winners)
		remainder := layer.Amount % len(layer.Winners)
		for j, id := range layer.Winners {
			award := share
			if j < remainder {
				award++
			}
			s.Awards[id] += award
		}
	}
	return nil
}

// bestOf returns every eligible player holding the strongest hand.
func (s *Settlement) bestOf(eligible []PlayerID) []PlayerID {
	var (
		winners []PlayerID
		best    poker.EvaluatedHand
	)
	for _, id := range eligible {
		hand := s.Hands[id]
		switch {
		case len(winners) == 0:
			winners, best = []PlayerID{id}, hand
		case hand.Beats(best):
			winners, best = []PlayerID{id}, hand
		case hand.Ties(best):
			winners = append(winners, id)
		}
	}
	return winners
}

// seatOrderFromButton ranks players by distance clockwise from the button,
// the first seat after the button being 0.
func seatOrderFromButton(players []*Player, button int) map[PlayerID]int {
	n := len(players)
	order := make(map[PlayerID]int, n)
	for i, p := range players {
		order[p.ID] = ((i-button-1)%n + n) % n
	}
	return order
}
