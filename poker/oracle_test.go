package poker_test

import (
	rand "math/rand/v2"
	"testing"

	ref "github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"

	"github.com/lox/showdown/poker"
)

// toRef converts a card to the reference evaluator's encoding, where the ace
// is rank 1 and kings are 13.
func toRef(t *testing.T, c poker.Card) ref.Card {
	t.Helper()

	rank := ref.Rank(c.Rank) + 2
	if c.Rank == poker.Ace {
		rank = 1
	}
	var suit ref.Suit
	switch c.Suit {
	case poker.Clubs:
		suit = ref.Club
	case poker.Diamonds:
		suit = ref.Diamond
	case poker.Hearts:
		suit = ref.Heart
	case poker.Spades:
		suit = ref.Spade
	}
	card, err := ref.MakeCard(suit, rank)
	require.NoError(t, err)
	return card
}

func refScore(t *testing.T, cards []poker.Card) int16 {
	t.Helper()

	var seven [7]ref.Card
	for i, c := range cards {
		seven[i] = toRef(t, c)
	}
	return ref.Eval7(&seven)
}

func sign(x int) poker.Ordering {
	switch {
	case x > 0:
		return poker.Greater
	case x < 0:
		return poker.Less
	default:
		return poker.Equal
	}
}

// TestCompareAgreesWithReferenceEvaluator deals random pairs of seven card
// hands sharing a board and checks the ordering against an independent
// evaluator.
func TestCompareAgreesWithReferenceEvaluator(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(20240601, 17))
	for i := range 5000 {
		deck := poker.NewDeck(rng)
		var dealt [9]poker.Card
		for j := range dealt {
			c, err := deck.DealNext()
			require.NoError(t, err)
			dealt[j] = c
		}
		board := dealt[4:]
		a := append([]poker.Card{dealt[0], dealt[1]}, board...)
		b := append([]poker.Card{dealt[2], dealt[3]}, board...)

		handA, err := poker.BestOfSeven(a)
		require.NoError(t, err)
		handB, err := poker.BestOfSeven(b)
		require.NoError(t, err)

		want := sign(int(refScore(t, a)) - int(refScore(t, b)))
		require.Equal(t, want, poker.Compare(handA, handB),
			"iteration %d: %s vs %s", i, handA, handB)
	}
}
