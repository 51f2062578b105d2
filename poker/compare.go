package poker

import "fmt"

// Ordering is the result of comparing two hands.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "unknown"
	}
}

// Compare orders two evaluated hands: category first, then the five card
// ranks position by position. Suits never matter, so different card sets can
// compare Equal.
func Compare(a, b EvaluatedHand) Ordering {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return Greater
		}
		return Less
	}
	for i := range a.Cards {
		ra, rb := a.Cards[i].Rank, b.Cards[i].Rank
		if ra > rb {
			return Greater
		}
		if ra < rb {
			return Less
		}
	}
	return Equal
}

// Beats reports whether h is strictly stronger than other.
func (h EvaluatedHand) Beats(other EvaluatedHand) bool {
	return Compare(h, other) == Greater
}

// Ties reports whether h and other are of identical strength.
func (h EvaluatedHand) Ties(other EvaluatedHand) bool {
	return Compare(h, other) == Equal
}

// BestOfSeven evaluates two hole cards plus five board cards.
func BestOfSeven(cards []Card) (EvaluatedHand, error) {
	if len(cards) != 7 {
		return EvaluatedHand{}, fmt.Errorf("%w: best of seven needs 7 cards, got %d", ErrInvalidInput, len(cards))
	}
	return Evaluate(cards)
}

// CompareWithExplanation compares two hands and describes why one wins.
func CompareWithExplanation(a, b EvaluatedHand) (Ordering, string) {
	result := Compare(a, b)
	if result == Equal {
		return result, "hands tie"
	}

	winner, loser := a, b
	if result == Less {
		winner, loser = b, a
	}
	explanation := fmt.Sprintf("%s beats %s", winner, loser)
	if winner.Category != loser.Category {
		return result, explanation + fmt.Sprintf(" (%s beats %s)", winner.Category, loser.Category)
	}

	for i := range winner.Cards {
		wr, lr := winner.Cards[i].Rank, loser.Cards[i].Rank
		if wr == lr {
			continue
		}
		switch {
		case i == 0 && (winner.Category == Straight || winner.Category == StraightFlush):
			explanation += fmt.Sprintf(" with a higher straight (%s-high vs %s-high)", wr.Name(), lr.Name())
		case i == 0 && winner.Category == Flush:
			explanation += fmt.Sprintf(" with a higher flush (%s-high vs %s-high)", wr.Name(), lr.Name())
		case i < madeCards(winner.Category):
			explanation += fmt.Sprintf(" with higher %s (%s vs %s)", madePart(winner.Category, i), wr.Name(), lr.Name())
		default:
			explanation += fmt.Sprintf(" with a higher kicker (%s vs %s)", wr.Name(), lr.Name())
		}
		break
	}
	return result, explanation
}

// madeCards is how many leading cards form the made part of a hand.
func madeCards(c Category) int {
	switch c {
	case Pair:
		return 2
	case TwoPair:
		return 4
	case Trips:
		return 3
	case Quads:
		return 4
	case HighCard:
		return 0
	default:
		return HandSize
	}
}

func madePart(c Category, pos int) string {
	switch c {
	case Pair:
		return "pair"
	case TwoPair:
		if pos < 2 {
			return "top pair"
		}
		return "bottom pair"
	case Trips:
		return "trips"
	case Quads:
		return "quads"
	case FullHouse:
		if pos < 3 {
			return "trips"
		}
		return "pair"
	default:
		return "cards"
	}
}
