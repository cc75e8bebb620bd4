package poker

import (
	"errors"
	"fmt"
)

var (
	ErrReplaceCountMismatch = errors.New("number of positions and replacement cards differ")
	ErrIndexOutOfRange      = errors.New("card position out of range")
)

// Player holds a name, the current hand and the category it was last
// evaluated to. The hand is owned by the Player; accessors hand out copies.
type Player struct {
	Name     string
	hand     []Card
	category HandCategory
	score    int
}

func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// SetHand replaces the whole hand. It is used at deal time.
func (p *Player) SetHand(cards []Card) error {
	if len(cards) != HandSize {
		return fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(cards))
	}
	p.hand = append([]Card(nil), cards...)
	p.category = 0
	p.score = 0
	return nil
}

// ReplaceCards writes newCards[i] at position indices[i]. The call is atomic:
// every position is checked before any card is written, so on error the hand
// is left exactly as it was.
func (p *Player) ReplaceCards(indices []int, newCards []Card) error {
	if len(indices) != len(newCards) {
		return fmt.Errorf("%w: %d positions, %d cards", ErrReplaceCountMismatch, len(indices), len(newCards))
	}
	for _, idx := range indices {
		if idx < 0 || idx >= len(p.hand) {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, idx, len(p.hand))
		}
	}
	for i, idx := range indices {
		p.hand[idx] = newCards[i]
	}
	return nil
}

// CalculateScore evaluates the current hand and stores its category and score.
func (p *Player) CalculateScore() error {
	category, err := Evaluate(p.hand)
	if err != nil {
		return fmt.Errorf("player %s: %w", p.Name, err)
	}
	p.category = category
	p.score = category.Score()
	return nil
}

// Hand returns a copy of the current hand.
func (p *Player) Hand() []Card {
	return append([]Card(nil), p.hand...)
}

// Category returns the last evaluated category, zero before the first evaluation.
func (p *Player) Category() HandCategory {
	return p.category
}

// Score returns the last evaluated score.
func (p *Player) Score() int {
	return p.score
}
