package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards string
		want  Category
		best  string
	}{
		{"royal flush", "As Ks Qs Js Ts 2d 3c", RoyalFlush, "As Ks Qs Js Ts"},
		{"straight flush", "9h 8h 7h 6h 5h Ad Ac", StraightFlush, "9h 8h 7h 6h 5h"},
		{"steel wheel", "5d 4d 3d 2d Ad Kc Qh", StraightFlush, "5d 4d 3d 2d Ad"},
		{"quads", "Ks Kh Kd Kc 2s 3d 9h", Quads, "Ks Kh Kd Kc 9h"},
		{"full house from two trips", "Qs Qh Qd 7s 7h 7d 2c", FullHouse, "Qs Qh Qd 7s 7h"},
		{"full house", "Js Jh Jd 4c 4d As Ks", FullHouse, "Js Jh Jd 4d 4c"},
		{"flush", "Js 9s 7s 5s 2s Kd Ac", Flush, "Js 9s 7s 5s 2s"},
		{"flush uses top five", "As Js 9s 7s 5s 2s Kd", Flush, "As Js 9s 7s 5s"},
		{"straight", "9c 8d 7h 6s 5c 2d 2h", Straight, "9c 8d 7h 6s 5c"},
		{"straight with paired rank", "9c 8d 8h 7s 6c 5d Kh", Straight, "9c 8h 7s 6c 5d"},
		{"wheel", "Ah 2c 3d 4h 5s Kc 9d", Straight, "5s 4h 3d 2c Ah"},
		{"broadway", "As Kd Qh Jc Ts 3c 2d", Straight, "As Kd Qh Jc Ts"},
		{"trips", "7s 7h 7d Ac Kd 2s 3h", Trips, "7s 7h 7d Ac Kd"},
		{"two pair", "As Ah Ks Kh Qd 2c 3d", TwoPair, "As Ah Ks Kh Qd"},
		{"two pair from three pairs", "As Ah Ks Kh 2c 2d 7h", TwoPair, "As Ah Ks Kh 7h"},
		{"three pairs kicker from third pair", "As Ah Ks Kh Qc Qd 7h", TwoPair, "As Ah Ks Kh Qd"},
		{"pair", "9s 9h Ac Kd 7s 4h 2c", Pair, "9s 9h Ac Kd 7s"},
		{"high card", "Ac Kd 9h 7s 5c 3d 2h", HighCard, "Ac Kd 9h 7s 5c"},
		{"five cards", "2c 2d 3h 3s 4c", TwoPair, "3s 3h 2d 2c 4c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand, err := Evaluate(MustParseCards(tt.cards))
			require.NoError(t, err)
			assert.Equal(t, tt.want, hand.Category)
			assert.Equal(t, tt.best, FormatCards(hand.Cards[:]))
		})
	}
}

func TestEvaluateWheelIsNotAceHigh(t *testing.T) {
	t.Parallel()

	wheel := MustEvaluate(MustParseCards("Ah 2c 3d 4h 5s Kc 9d"))
	sixHigh := MustEvaluate(MustParseCards("2c 3d 4h 5s 6c Kd 9h"))

	assert.Equal(t, Five, wheel.Cards[0].Rank)
	assert.Equal(t, Ace, wheel.Cards[4].Rank)
	assert.Equal(t, Less, Compare(wheel, sixHigh))
}

func TestEvaluateFlushBeatsStraight(t *testing.T) {
	t.Parallel()

	hand := MustEvaluate(MustParseCards("Ts 9s 8d 7s 6s 2s Kh"))
	assert.Equal(t, Flush, hand.Category)
}

func TestEvaluateSixCardStraightTakesHighest(t *testing.T) {
	t.Parallel()

	hand := MustEvaluate(MustParseCards("Tc 9d 8h 7s 6c 5d 2h"))
	assert.Equal(t, Straight, hand.Category)
	assert.Equal(t, Ten, hand.Cards[0].Rank)
}

func TestEvaluateUsesOnlyInputCards(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"As Ks Qs Js Ts 2d 3c",
		"Ah 2c 3d 4h 5s Kc 9d",
		"Qs Qh Qd 7s 7h 7d 2c",
		"As Ah Ks Kh Qc Qd 7h",
		"Ac Kd 9h 7s 5c 3d",
	}
	for _, in := range inputs {
		cards := MustParseCards(in)
		hand := MustEvaluate(cards)

		seen := map[Card]bool{}
		for _, c := range hand.Cards {
			assert.Contains(t, cards, c, "input %q", in)
			assert.False(t, seen[c], "duplicate %s in result for %q", c, in)
			seen[c] = true
		}
	}
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	cards := MustParseCards("2c 9h As 5d Kc 7s 3h")
	before := append([]Card(nil), cards...)
	MustEvaluate(cards)
	assert.Equal(t, before, cards)
}

func TestEvaluateInvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards []Card
	}{
		{"too few", MustParseCards("As Ks Qs Js")},
		{"too many", MustParseCards("As Ks Qs Js Ts 9s 8s 7s")},
		{"duplicate", MustParseCards("As As Qs Js Ts")},
		{"out of range", []Card{{Rank: 20, Suit: Spades}, NewCard(King, Spades), NewCard(Queen, Spades), NewCard(Jack, Spades), NewCard(Ten, Spades)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.cards)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCategoryString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Three of a Kind", Trips.String())
	assert.Equal(t, "Four of a Kind", Quads.String())
	assert.Equal(t, "Royal Flush", RoyalFlush.String())
	assert.Equal(t, "Flush [Js 9s 7s 5s 2s]", MustEvaluate(MustParseCards("Js 9s 7s 5s 2s")).String())
}

func BenchmarkEvaluate7(b *testing.B) {
	cards := MustParseCards("As Kd 9h 7s 5c 3d 2h")
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Evaluate(cards)
	}
}
