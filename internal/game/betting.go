package game

import (
	"slices"
)

// bettingRound is the state of one street of betting.
type bettingRound struct {
	currentBet int
	acted      map[PlayerID]bool
	log        *StreetActions
}

// runStreet asks players to act, clockwise, until every active player has
// acted since the last raise and matched the current bet, or only one
// player is left in the hand.
func (h *Hand) runStreet() {
	n := len(h.players)
	h.history = append(h.history, StreetActions{Street: h.street})
	round := &bettingRound{
		acted: make(map[PlayerID]bool, n),
		log:   &h.history[len(h.history)-1],
	}

	start := (h.button + 1) % n
	if h.street == Preflop {
		round.currentBet = h.bigBlind
		start = (h.button + 3) % n
	}

	pos := start
	for h.contenders() > 1 {
		idx, ok := h.nextToAct(round, pos)
		if !ok {
			return
		}
		h.act(round, h.players[idx])
		pos = (idx + 1) % n
	}
}

// nextToAct finds the first seat from pos, clockwise, that still owes a
// decision.
func (h *Hand) nextToAct(round *bettingRound, pos int) (int, bool) {
	n := len(h.players)
	active := 0
	for _, p := range h.players {
		if p.CanAct() {
			active++
		}
	}

	for i := 0; i < n; i++ {
		idx := (pos + i) % n
		p := h.players[idx]
		if !p.CanAct() {
			continue
		}
		owes := p.StreetBet < round.currentBet
		// A lone active player facing nobody who can respond only acts
		// when they still owe chips.
		if active < 2 && !owes {
			continue
		}
		if owes || !round.acted[p.ID] {
			return idx, true
		}
	}
	return 0, false
}

// act obtains, validates and applies one decision.
func (h *Hand) act(round *bettingRound, p *Player) {
	req := h.request(round, p)

	var action Action
	if decider := h.deciders[p.ID]; decider != nil {
		action = decider.Decide(req)
	} else {
		action = Fold()
		h.logger.Warn("No decider for player", "player", p)
	}

	forced := false
	if err := ValidateAction(req, action); err != nil {
		h.logger.Warn("Illegal action, forcing fold", "player", p, "action", action, "to_call", req.ToCall, "chips", req.Chips, "err", err)
		action, forced = Fold(), true
		h.forcedFolds++
	}

	chips := 0
	switch action.Kind {
	case ActionFold:
		p.State = Folded
	case ActionCheck:
	case ActionCall:
		chips = p.commit(req.ToCall)
	case ActionRaise:
		chips = p.commit(req.ToCall + action.Amount)
		round.reopen(p)
	case ActionAllIn:
		chips = p.commit(p.Chips)
		action.Amount = chips
		if p.StreetBet > round.currentBet {
			round.reopen(p)
		}
	}
	round.acted[p.ID] = true

	entry := PlayerAction{Player: p.ID, Action: action, Chips: chips, Forced: forced}
	round.log.Actions = append(round.log.Actions, entry)
	h.logger.Debug("Player action", "player", p, "street", h.street, "action", action, "chips", chips, "pot", h.Pot())
	h.publish(PlayerActedEvent{
		HandID:   h.id,
		Street:   h.street,
		Action:   entry,
		PotAfter: h.Pot(),
		At:       h.clock.Now(),
	})
}

// reopen raises the current bet to p's street bet. Everyone else has to
// act again.
func (r *bettingRound) reopen(p *Player) {
	r.currentBet = p.StreetBet
	clear(r.acted)
}

func (h *Hand) request(round *bettingRound, p *Player) DecisionRequest {
	history := make([]StreetActions, len(h.history))
	for i, street := range h.history {
		history[i] = StreetActions{Street: street.Street, Actions: slices.Clone(street.Actions)}
	}

	return DecisionRequest{
		HandID:     h.id,
		Player:     p.ID,
		Street:     h.street,
		Pot:        h.Pot(),
		Board:      h.Board(),
		HoleCards:  slices.Clone(p.HoleCards),
		ToCall:     max(round.currentBet-p.StreetBet, 0),
		Chips:      p.Chips,
		CurrentBet: round.currentBet,
		Blinds:     slices.Clone(h.blinds),
		History:    history,
	}
}
