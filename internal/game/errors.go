package game

import "errors"

var (
	// ErrIllegalAction is returned by ValidateAction when an action does not
	// fit the acting player's situation. The hand recovers by folding them.
	ErrIllegalAction = errors.New("illegal action")

	// ErrChipConservation means chips were created or lost while settling.
	ErrChipConservation = errors.New("chip conservation violated")

	// ErrNotEnoughPlayers is returned when a hand cannot start with fewer
	// than two funded players.
	ErrNotEnoughPlayers = errors.New("not enough players")

	// ErrNoContenders is returned when settlement finds no unfolded player.
	ErrNoContenders = errors.New("no contenders")
)
