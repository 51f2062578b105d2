// Package game runs no-limit hold'em hands between pluggable deciders.
//
// A Hand drives one deal from blinds to settlement:
//
//	deck := poker.NewDeck(randutil.New(42))
//	hand := game.NewHand(deck, players, deciders, button, 1, 2)
//	record, err := hand.Play()
//
// Players act through the Decider interface. Every returned action is checked
// with ValidateAction; an illegal action is replaced by a fold and the hand
// continues.
//
// Settle splits the committed chips into capped layers (side pots) and
// awards each layer to the best eligible hands, sharing ties chip for chip.
//
// A Table owns players across hands. It rotates the button, removes players
// who have busted and checks that no chips were created or lost.
package game
