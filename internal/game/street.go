package game

// Street is one of the four betting phases of a hand.
type Street uint8

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// Streets lists the betting phases in order.
var Streets = []Street{Preflop, Flop, Turn, River}

// BoardSize is the number of community cards visible during the street.
func (s Street) BoardSize() int {
	switch s {
	case Flop:
		return 3
	case Turn:
		return 4
	case River:
		return 5
	default:
		return 0
	}
}

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}
