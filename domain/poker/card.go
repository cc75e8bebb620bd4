package poker

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Suit of a playing card. The numeric value carries no ordering.
type Suit uint8

// Card suit constants, in deck generation order
const (
	Spade   Suit = 0 // ♠ (black)
	Heart   Suit = 1 // ♥ (red)
	Diamond Suit = 2 // ♦ (red)
	Club    Suit = 3 // ♣ (black)
)

// Suits lists every suit in declaration order.
var Suits = [4]Suit{Spade, Heart, Diamond, Club}

// Rank of a playing card. Face values run from Two (2) to Ace (14), so the
// numeric order is the rank order.
type Rank uint8

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11 // J
	Queen Rank = 12 // Q
	King  Rank = 13 // K
	Ace   Rank = 14 // A (always high, no wheel straight)
)

// Ranks lists every rank from lowest to highest.
var Ranks = [13]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Card represents a playing card with suit and rank.
// The zero value is not a valid card.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: Spade, Heart, Diamond or Club
//   - rank: Two (2) through Ace (14)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit > Club || rank < Two || rank > Ace {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// MustCard is NewCard for literals known to be valid. It panics otherwise.
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// Valid reports whether c was built by NewCard.
func (c Card) Valid() bool {
	return c.rank >= Two && c.rank <= Ace && c.suit <= Club
}

// Symbol returns the plain suit symbol.
func (s Suit) Symbol() string {
	switch s {
	case Spade:
		return "♠"
	case Heart:
		return "♥"
	case Diamond:
		return "♦"
	case Club:
		return "♣"
	default:
		return "?"
	}
}

// String returns a short rank abbreviation (2-10, J, Q, K, A).
func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", uint8(r))
	}
}

// String returns a human-readable representation of the Card using the rank
// abbreviation followed by a coloured suit symbol.
func (c Card) String() string {
	if !c.Valid() {
		return "?"
	}
	var suit string
	switch c.suit {
	case Heart, Diamond:
		suit = pterm.LightRed(c.suit.Symbol())
	default:
		suit = pterm.Black(c.suit.Symbol())
	}
	return c.rank.String() + suit
}

// Plain is String without terminal colours.
func (c Card) Plain() string {
	if !c.Valid() {
		return "?"
	}
	return c.rank.String() + c.suit.Symbol()
}
