package poker

// HandCategory is the poker classification of a five-card hand. The value is
// the category's score; a higher value is a stronger hand.
type HandCategory int

const (
	HighCard      HandCategory = 1
	OnePair       HandCategory = 2
	TwoPair       HandCategory = 3
	ThreeOfAKind  HandCategory = 4
	Straight      HandCategory = 5
	Flush         HandCategory = 6
	FullHouse     HandCategory = 7
	FourOfAKind   HandCategory = 8
	StraightFlush HandCategory = 9
	RoyalFlush    HandCategory = 10
)

// Categories lists every category from weakest to strongest.
var Categories = []HandCategory{
	HighCard, OnePair, TwoPair, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
}

// Score returns the category's fixed weight (1-10), or 0 for an unevaluated hand.
func (hc HandCategory) Score() int {
	if hc < HighCard || hc > RoyalFlush {
		return 0
	}
	return int(hc)
}

// Valid reports whether hc is one of the ten categories.
func (hc HandCategory) Valid() bool {
	return hc.Score() != 0
}

func (hc HandCategory) String() string {
	switch hc {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unevaluated"
	}
}
