package poker

import (
	"fmt"
	"strings"
)

// Rank is a card rank. Two is 0 and Ace is 12, so ranks compare directly.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks.
const NumRanks = 13

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r <= Ace
}

// Add returns the rank offset places above r. The second result is false
// when the offset would go past Ace.
func (r Rank) Add(offset int) (Rank, bool) {
	next := int(r) + offset
	if offset < 0 || next > int(Ace) {
		return 0, false
	}
	return Rank(next), true
}

// Next returns the rank directly above r, or false for Ace.
func (r Rank) Next() (Rank, bool) {
	return r.Add(1)
}

// String returns the single character form of the rank (T for ten).
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string("23456789TJQKA"[r])
}

// Name returns the rank's English name.
func (r Rank) Name() string {
	switch r {
	case Two:
		return "Two"
	case Three:
		return "Three"
	case Four:
		return "Four"
	case Five:
		return "Five"
	case Six:
		return "Six"
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return "Unknown"
	}
}

// Suit is a card suit. Suits carry no ordering in play.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits.
const NumSuits = 4

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s <= Spades
}

// String returns the lower-case letter for the suit.
func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return string("cdhs"[s])
}

// Symbol returns the unicode pip for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true for hearts and diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Card is a playing card. It is a plain value and compares with ==.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from a rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Valid reports whether both rank and suit are in range.
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// String returns the two character form, e.g. "As" or "Td".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// index maps a card onto 0..51.
func (c Card) index() int {
	return int(c.Suit)*NumRanks + int(c.Rank)
}

// ParseRank parses a rank token: 2-9, T or 10, J, Q, K, A (any case).
func ParseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "T", "10":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	default:
		return 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidEncoding, s)
	}
}

// ParseSuit parses a suit letter (c, d, h, s in any case) or pip.
func ParseSuit(s string) (Suit, error) {
	switch s {
	case "c", "C", "♣":
		return Clubs, nil
	case "d", "D", "♦":
		return Diamonds, nil
	case "h", "H", "♥":
		return Hearts, nil
	case "s", "S", "♠":
		return Spades, nil
	default:
		return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidEncoding, s)
	}
}

// ParseCard parses a single card such as "As", "Td", "10h" or "Q♠".
func ParseCard(s string) (Card, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("%w: card %q too short", ErrInvalidEncoding, s)
	}

	rank, err := ParseRank(string(runes[:len(runes)-1]))
	if err != nil {
		return Card{}, err
	}
	suit, err := ParseSuit(string(runes[len(runes)-1]))
	if err != nil {
		return Card{}, err
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses a list of cards. Cards may be separated by whitespace or
// packed together ("AsKsQs"); a "10" rank is only understood when separated.
func ParseCards(s string) ([]Card, error) {
	var cards []Card
	for _, field := range strings.Fields(s) {
		runes := []rune(field)
		if len(runes) == 3 && runes[0] == '1' && runes[1] == '0' {
			card, err := ParseCard(field)
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
			continue
		}
		if len(runes)%2 != 0 {
			return nil, fmt.Errorf("%w: incomplete card in %q", ErrInvalidEncoding, field)
		}
		for i := 0; i < len(runes); i += 2 {
			card, err := ParseCard(string(runes[i : i+2]))
			if err != nil {
				return nil, fmt.Errorf("position %d: %w", i, err)
			}
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error. Intended for tests and
// literals known to be valid.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

// FormatCards joins cards with single spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
