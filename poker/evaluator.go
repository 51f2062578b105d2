package poker

import (
	"fmt"
	"sort"
)

// Category is the class of a five card hand. Values are ordered so that a
// stronger category is numerically greater.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	Trips
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
	RoyalFlush
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case Trips:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case Quads:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandSize is the number of cards in an evaluated hand.
const HandSize = 5

// EvaluatedHand is the best five cards found in a card set. Cards are laid
// out in order of significance for the category: the quad rank before its
// kicker, trips before the pair, a wheel as 5-4-3-2-A.
type EvaluatedHand struct {
	Category Category
	Cards    [HandSize]Card
}

// String renders the hand as "Flush [Js 9s 7s 5s 2s]".
func (h EvaluatedHand) String() string {
	return fmt.Sprintf("%s [%s]", h.Category, FormatCards(h.Cards[:]))
}

// Evaluate finds the best five card hand among 5 to 7 cards. The input does
// not need to be sorted. Duplicate or out-of-range cards and wrong sizes
// return ErrInvalidInput.
func Evaluate(cards []Card) (EvaluatedHand, error) {
	if err := validateCards(cards); err != nil {
		return EvaluatedHand{}, err
	}

	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	sortByRankDesc(sorted)

	best := bestGrouped(sorted)
	if straight, ok := bestStraight(sorted); ok && straight.Category > best.Category {
		best = straight
	}
	if flush, ok := bestFlush(sorted); ok && flush.Category > best.Category {
		best = flush
	}
	return best, nil
}

// MustEvaluate is Evaluate for inputs known to be valid. It panics on error.
func MustEvaluate(cards []Card) EvaluatedHand {
	hand, err := Evaluate(cards)
	if err != nil {
		panic(err)
	}
	return hand
}

func validateCards(cards []Card) error {
	if len(cards) < HandSize || len(cards) > 7 {
		return fmt.Errorf("%w: need 5 to 7 cards, got %d", ErrInvalidInput, len(cards))
	}
	var seen [NumRanks * NumSuits]bool
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: card %v out of range", ErrInvalidInput, c)
		}
		if seen[c.index()] {
			return fmt.Errorf("%w: duplicate card %s", ErrInvalidInput, c)
		}
		seen[c.index()] = true
	}
	return nil
}

// sortByRankDesc orders by rank, high first. Suit breaks ties so results are
// stable across input orderings.
func sortByRankDesc(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Rank != cards[j].Rank {
			return cards[i].Rank > cards[j].Rank
		}
		return cards[i].Suit > cards[j].Suit
	})
}

// bestFlush looks for five or more cards of one suit. Within that suit it
// checks for a straight flush before falling back to the top five cards.
func bestFlush(sorted []Card) (EvaluatedHand, bool) {
	var bySuit [NumSuits][]Card
	for _, c := range sorted {
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
	}

	for _, suited := range bySuit {
		if len(suited) < HandSize {
			continue
		}
		if straight, ok := bestStraight(suited); ok {
			straight.Category = StraightFlush
			if straight.Cards[0].Rank == Ace {
				straight.Category = RoyalFlush
			}
			return straight, true
		}
		hand := EvaluatedHand{Category: Flush}
		copy(hand.Cards[:], suited[:HandSize])
		return hand, true
	}
	return EvaluatedHand{}, false
}

// bestStraight scans rank-sorted cards for five consecutive ranks. The scan
// runs high to low over distinct ranks, then checks the ace-low wheel once.
func bestStraight(sorted []Card) (EvaluatedHand, bool) {
	distinct := make([]Card, 0, len(sorted))
	for _, c := range sorted {
		if len(distinct) == 0 || distinct[len(distinct)-1].Rank != c.Rank {
			distinct = append(distinct, c)
		}
	}

	run := distinct[:0:0]
	for _, c := range distinct {
		if len(run) > 0 {
			if next, ok := c.Rank.Next(); !ok || next != run[len(run)-1].Rank {
				run = run[:0]
			}
		}
		run = append(run, c)
		if len(run) == HandSize {
			hand := EvaluatedHand{Category: Straight}
			copy(hand.Cards[:], run)
			return hand, true
		}
	}

	// Wheel: 5-4-3-2 at the bottom with an ace to close it.
	if len(distinct) < HandSize || distinct[0].Rank != Ace {
		return EvaluatedHand{}, false
	}
	low := distinct[len(distinct)-4:]
	for i, want := range []Rank{Five, Four, Three, Two} {
		if low[i].Rank != want {
			return EvaluatedHand{}, false
		}
	}
	hand := EvaluatedHand{Category: Straight}
	copy(hand.Cards[:4], low)
	hand.Cards[4] = distinct[0]
	return hand, true
}

// bestGrouped classifies pairs, trips, quads, full houses and high card.
// Rank buckets are taken largest first (ties to the higher rank) until the
// made part of the hand is complete; kickers are the highest cards left.
func bestGrouped(sorted []Card) EvaluatedHand {
	var buckets [][]Card
	for _, c := range sorted {
		if n := len(buckets); n > 0 && buckets[n-1][0].Rank == c.Rank {
			buckets[n-1] = append(buckets[n-1], c)
			continue
		}
		buckets = append(buckets, []Card{c})
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return len(buckets[i]) > len(buckets[j])
	})

	var (
		category Category
		made     []Card
	)
	first := buckets[0]
	second := []Card(nil)
	if len(buckets) > 1 {
		second = buckets[1]
	}

	switch {
	case len(first) == 4:
		category, made = Quads, first
	case len(first) == 3 && len(second) >= 2:
		category = FullHouse
		made = append(append(made, first...), second[:2]...)
	case len(first) == 3:
		category, made = Trips, first
	case len(first) == 2 && len(second) == 2:
		category = TwoPair
		made = append(append(made, first...), second...)
	case len(first) == 2:
		category, made = Pair, first
	default:
		category = HighCard
	}

	hand := EvaluatedHand{Category: category}
	n := copy(hand.Cards[:], made)
	for _, c := range sorted {
		if n == HandSize {
			break
		}
		if containsCard(made, c) {
			continue
		}
		hand.Cards[n] = c
		n++
	}
	return hand
}

func containsCard(cards []Card, c Card) bool {
	for _, x := range cards {
		if x == c {
			return true
		}
	}
	return false
}
