package poker

import (
	"fmt"
	rand "math/rand/v2"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = NumRanks * NumSuits

// Deck is a standard 52-card deck dealt from the top.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a deck shuffled with the given RNG. A nil RNG leaves the
// deck in suit-major order, which is only useful in tests.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	d.Shuffle()
	return d
}

// NewStackedDeck creates a deck that deals exactly the given cards in order.
// Duplicates are rejected so a stacked deck can never hand out a card twice.
func NewStackedDeck(cards ...Card) (*Deck, error) {
	var seen [DeckSize]bool
	for _, c := range cards {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: card %v out of range", ErrInvalidInput, c)
		}
		if seen[c.index()] {
			return nil, fmt.Errorf("%w: duplicate card %s", ErrInvalidInput, c)
		}
		seen[c.index()] = true
	}
	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked}, nil
}

// Shuffle reshuffles every card and resets the deal position (Fisher-Yates).
func (d *Deck) Shuffle() {
	d.next = 0
	if d.rng == nil {
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// DealNext deals the top card, or returns ErrDeckExhausted.
func (d *Deck) DealNext() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, ErrDeckExhausted
	}
	card := d.cards[d.next]
	d.next++
	return card, nil
}

// Remaining returns the number of cards left to deal.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
