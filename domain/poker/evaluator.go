package poker

import (
	"errors"
	"fmt"

	"github.com/paulhankin/poker"
)

// HandSize is the number of cards in a five-card-draw hand.
const HandSize = 5

var ErrInvalidHandSize = errors.New("hand must contain exactly 5 cards")

// Evaluate classifies a five-card hand. Checks run from the strongest category
// to the weakest and the first match wins. The order of the cards does not
// matter.
func Evaluate(hand []Card) (HandCategory, error) {
	if len(hand) != HandSize {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(hand))
	}

	rankCounts := make(map[Rank]int, HandSize)
	suitCounts := make(map[Suit]int, HandSize)
	for _, c := range hand {
		if !c.Valid() {
			return 0, fmt.Errorf("invalid card in hand: %v", c)
		}
		rankCounts[c.rank]++
		suitCounts[c.suit]++
	}

	flush := containsCount(suitCounts, HandSize)
	straight := hasStraight(rankCounts)

	switch {
	case flush && isBroadway(rankCounts):
		return RoyalFlush, nil
	case flush && straight:
		return StraightFlush, nil
	case containsCount(rankCounts, 4):
		return FourOfAKind, nil
	case containsCount(rankCounts, 3) && containsCount(rankCounts, 2):
		return FullHouse, nil
	case flush:
		return Flush, nil
	case straight:
		return Straight, nil
	case containsCount(rankCounts, 3):
		return ThreeOfAKind, nil
	}

	switch pairCount(rankCounts) {
	case 2:
		return TwoPair, nil
	case 1:
		return OnePair, nil
	}
	return HighCard, nil
}

// hasStraight scans the ranks from Two to Ace looking for five consecutive
// ranks present in the hand. Ace never plays low.
func hasStraight(rankCounts map[Rank]int) bool {
	run := 0
	for _, r := range Ranks {
		if rankCounts[r] > 0 {
			run++
		} else {
			run = 0
		}
		if run == HandSize {
			return true
		}
	}
	return false
}

func isBroadway(rankCounts map[Rank]int) bool {
	for _, r := range []Rank{Ten, Jack, Queen, King, Ace} {
		if rankCounts[r] == 0 {
			return false
		}
	}
	return true
}

func containsCount[K comparable](counts map[K]int, n int) bool {
	for _, c := range counts {
		if c == n {
			return true
		}
	}
	return false
}

func pairCount(rankCounts map[Rank]int) int {
	pairs := 0
	for _, c := range rankCounts {
		if c == 2 {
			pairs++
		}
	}
	return pairs
}

// Describe returns a descriptive phrase for the hand (for example which ranks
// make up a pair). It is display detail only: unlike Evaluate it treats
// A-2-3-4-5 as a straight, and Evaluate's category is the one that scores.
func Describe(hand []Card) (string, error) {
	if len(hand) != HandSize {
		return "", fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(hand))
	}
	cards := make([]poker.Card, len(hand))
	for i, c := range hand {
		pc, err := toLibraryCard(c)
		if err != nil {
			return "", fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		cards[i] = pc
	}
	return poker.Describe(cards)
}

// toLibraryCard converts a Card to the evaluator library's representation,
// where Ace is rank 1.
func toLibraryCard(c Card) (poker.Card, error) {
	var s poker.Suit
	switch c.suit {
	case Club:
		s = poker.Club
	case Diamond:
		s = poker.Diamond
	case Heart:
		s = poker.Heart
	case Spade:
		s = poker.Spade
	default:
		var invalid poker.Card
		return invalid, fmt.Errorf("invalid suit %d", c.suit)
	}
	r := poker.Rank(c.rank)
	if c.rank == Ace {
		r = poker.Rank(1)
	}
	return poker.MakeCard(s, r)
}
