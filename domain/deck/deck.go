package deck

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDeck       = errors.New("deck is empty")
	ErrDeckNotPrepared = errors.New("deck not prepared")
)

// Deck is an ordered pile of raw card numbers 1..DeckSize. The meaning of a
// number (suit and rank) is up to the game built on top of it.
type Deck struct {
	DeckSize      int
	cards         []int // cards[lastDrawnCard:] are still in the deck
	lastDrawnCard int
	prepared      bool
}

// PrepareDeck fills the deck with every card number from 1 to DeckSize, in order.
func (d *Deck) PrepareDeck() error {
	if d.DeckSize <= 0 {
		return fmt.Errorf("invalid deck size %d", d.DeckSize)
	}
	d.cards = make([]int, d.DeckSize)
	for i := range d.cards {
		d.cards[i] = i + 1
	}
	d.lastDrawnCard = 0
	d.prepared = true
	return nil
}

// Shuffle permutes the cards still in the deck using s.
func (d *Deck) Shuffle(s Shuffler) error {
	if !d.prepared {
		return ErrDeckNotPrepared
	}
	remaining := d.cards[d.lastDrawnCard:]
	perm, err := s.Perm(len(remaining))
	if err != nil {
		return fmt.Errorf("shuffle: %w", err)
	}
	if len(perm) != len(remaining) {
		return fmt.Errorf("shuffle: permutation of size %d for %d cards", len(perm), len(remaining))
	}
	tmp := make([]int, len(remaining))
	copy(tmp, remaining)
	for i := range remaining {
		remaining[i] = tmp[perm[i]]
	}
	return nil
}

// DrawCard removes the top card and returns it.
func (d *Deck) DrawCard() (int, error) {
	if !d.prepared {
		return 0, ErrDeckNotPrepared
	}
	if d.lastDrawnCard >= len(d.cards) {
		return 0, ErrEmptyDeck
	}
	c := d.cards[d.lastDrawnCard]
	d.lastDrawnCard++
	return c, nil
}

// Remaining returns how many cards are left to draw.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.lastDrawnCard
}

// Cards returns a copy of the undrawn cards, top first.
func (d *Deck) Cards() []int {
	out := make([]int, d.Remaining())
	copy(out, d.cards[d.lastDrawnCard:])
	return out
}
