package poker

import (
	"errors"

	"github.com/giru28/drawpoker/domain/deck"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// PokerDeck wraps a raw numbered deck and converts its card numbers to Cards.
type PokerDeck struct {
	*deck.Deck
}

// NewPokerDeck creates a prepared, unshuffled 52-card deck. Cards come out
// grouped by suit (spades, hearts, diamonds, clubs), Two to Ace within each suit.
func NewPokerDeck() (PokerDeck, error) {
	d := PokerDeck{
		Deck: &deck.Deck{
			DeckSize: DeckSize,
		},
	}
	if err := d.PrepareDeck(); err != nil {
		return PokerDeck{}, err
	}
	return d, nil
}

// IntToCard converts a raw card number (1-52) to a Card.
//
// Card numbering:
//   - 1-13: Spades (Two through Ace)
//   - 14-26: Hearts
//   - 27-39: Diamonds
//   - 40-52: Clubs
//
// Returns an error if the card number is outside the valid range.
func IntToCard(rawCard int) (Card, error) {
	if rawCard > DeckSize || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}

	suit := Suit((rawCard - 1) / 13)
	rank := Rank((rawCard-1)%13) + Two
	return NewCard(suit, rank)
}

// CardToInt is the inverse of IntToCard.
func CardToInt(card Card) int {
	return int(card.Suit())*13 + int(card.Rank()-Two) + 1
}

// DrawCard removes the top card of the deck and returns it.
func (d PokerDeck) DrawCard() (Card, error) {
	c, err := d.Deck.DrawCard()
	if err != nil {
		return Card{}, err
	}
	return IntToCard(c)
}

// DrawCards draws n cards from the top of the deck, in order.
func (d PokerDeck) DrawCards(n int) ([]Card, error) {
	if n > d.Remaining() {
		return nil, deck.ErrEmptyDeck
	}
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := d.DrawCard()
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
