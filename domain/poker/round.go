package poker

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/giru28/drawpoker/domain/deck"
	"github.com/google/uuid"
)

// Phase is the position of a Round in its life cycle.
type Phase string

const (
	Created        Phase = "created"
	Dealt          Phase = "dealt"
	FirstEvaluated Phase = "first_evaluated"
	Drawn          Phase = "drawn"
	FinalEvaluated Phase = "final_evaluated"
	Resolved       Phase = "resolved"
)

// MaxPlayers is the largest table a single deck can serve when every player
// is dealt five cards and then exchanges all five.
const MaxPlayers = DeckSize / (2 * HandSize)

var (
	ErrNoPlayers         = errors.New("a round needs at least one player")
	ErrTooManyPlayers    = fmt.Errorf("a round supports at most %d players", MaxPlayers)
	ErrWrongPhase        = errors.New("operation not allowed in this phase")
	ErrTooManyDiscards   = errors.New("more discard entries than players")
	ErrTooManyPositions  = fmt.Errorf("at most %d cards can be exchanged", HandSize)
	ErrDuplicatePosition = errors.New("card position repeated")
)

// Round deals, evaluates, exchanges and compares the hands of one table. A
// Round is single use: once resolved, build a new one for the next game.
type Round struct {
	id       string
	players  []*Player
	deck     PokerDeck
	phase    Phase
	shuffler deck.Shuffler
	logger   *slog.Logger
}

// Standing is a read-only view of a player's hand after an evaluation.
type Standing struct {
	Name        string       `json:"name"`
	Hand        []Card       `json:"-"`
	Cards       []string     `json:"cards"`
	Category    HandCategory `json:"category"`
	Score       int          `json:"score"`
	Description string       `json:"description,omitempty"`
}

// Result is the outcome of a resolved round.
type Result struct {
	RoundID     string     `json:"round_id"`
	WinnerIndex int        `json:"winner_index"`
	Winner      Standing   `json:"winner"`
	Standings   []Standing `json:"standings"`
}

// DrawWarning reports a discard request that was ignored. The player keeps
// the hand and no card is taken from the deck.
type DrawWarning struct {
	PlayerIndex int
	Player      string
	Positions   []int
	Err         error
}

func (w DrawWarning) Error() string {
	return fmt.Sprintf("%s: exchange of %v ignored: %v", w.Player, w.Positions, w.Err)
}

func (w DrawWarning) Unwrap() error {
	return w.Err
}

// NewRound registers the players, in order, for a new round.
func NewRound(names []string, opts ...RoundOption) (*Round, error) {
	if len(names) == 0 {
		return nil, ErrNoPlayers
	}
	if len(names) > MaxPlayers {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyPlayers, len(names))
	}
	r := Round{
		phase:    Created,
		shuffler: deck.NewCryptoShuffler(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		r = opt(r)
	}
	if r.id == "" {
		r.id = uuid.NewString()
	}
	r.players = make([]*Player, len(names))
	for i, name := range names {
		r.players[i] = NewPlayer(name)
	}
	return &r, nil
}

// ID returns the round identifier.
func (r *Round) ID() string {
	return r.id
}

// Phase returns the current phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Remaining returns the number of cards left in the deck, 0 before the deal.
func (r *Round) Remaining() int {
	if r.deck.Deck == nil {
		return 0
	}
	return r.deck.Remaining()
}

// Deal builds and shuffles a fresh deck, then hands every player the next
// five cards from the top, in registration order.
func (r *Round) Deal() error {
	if err := r.expect(Created); err != nil {
		return err
	}
	d, err := NewPokerDeck()
	if err != nil {
		return err
	}
	if err := d.Shuffle(r.shuffler); err != nil {
		return err
	}
	hands := make([][]Card, len(r.players))
	for i := range r.players {
		hands[i], err = d.DrawCards(HandSize)
		if err != nil {
			return fmt.Errorf("deal to %s: %w", r.players[i].Name, err)
		}
	}
	for i, p := range r.players {
		if err := p.SetHand(hands[i]); err != nil {
			return err
		}
	}
	r.deck = d
	r.advance()
	return nil
}

// Evaluate scores every player's hand. It runs once after the deal and once
// after the draw.
func (r *Round) Evaluate() error {
	if err := r.expect(Dealt, Drawn); err != nil {
		return err
	}
	for _, p := range r.players {
		if err := p.CalculateScore(); err != nil {
			return err
		}
	}
	r.advance()
	return nil
}

// Draw exchanges cards for every player. discards[i] lists the 0-based hand
// positions player i gives up; a missing or empty entry keeps the hand. An
// invalid entry is skipped and reported as a DrawWarning, the round goes on.
func (r *Round) Draw(discards [][]int) ([]DrawWarning, error) {
	if err := r.expect(FirstEvaluated); err != nil {
		return nil, err
	}
	if len(discards) > len(r.players) {
		return nil, fmt.Errorf("%w: %d entries for %d players", ErrTooManyDiscards, len(discards), len(r.players))
	}

	var warnings []DrawWarning
	for i, positions := range discards {
		if len(positions) == 0 {
			continue
		}
		p := r.players[i]
		if err := validatePositions(positions); err != nil {
			w := DrawWarning{PlayerIndex: i, Player: p.Name, Positions: slices.Clone(positions), Err: err}
			r.logger.Warn("discard ignored", "round", r.id, "player", p.Name, "positions", positions, "error", err)
			warnings = append(warnings, w)
			continue
		}
		cards, err := r.deck.DrawCards(len(positions))
		if err != nil {
			return warnings, fmt.Errorf("draw for %s: %w", p.Name, err)
		}
		if err := p.ReplaceCards(positions, cards); err != nil {
			return warnings, err
		}
		r.logger.Debug("cards exchanged", "round", r.id, "player", p.Name, "count", len(positions))
	}
	r.advance()
	return warnings, nil
}

// Resolve picks the winner. Scanning in registration order, a player takes
// the lead only with a strictly higher score, or an equal score and a
// strictly stronger category, so ties go to the earliest player.
func (r *Round) Resolve() (Result, error) {
	if err := r.expect(FinalEvaluated); err != nil {
		return Result{}, err
	}
	winner := 0
	for i := 1; i < len(r.players); i++ {
		if beats(r.players[i], r.players[winner]) {
			winner = i
		}
	}
	r.advance()

	standings := r.Standings()
	return Result{
		RoundID:     r.id,
		WinnerIndex: winner,
		Winner:      standings[winner],
		Standings:   standings,
	}, nil
}

// Standings returns a snapshot of every player, in registration order.
func (r *Round) Standings() []Standing {
	out := make([]Standing, len(r.players))
	for i, p := range r.players {
		hand := p.Hand()
		s := Standing{
			Name:     p.Name,
			Hand:     hand,
			Category: p.Category(),
			Score:    p.Score(),
		}
		for _, c := range hand {
			s.Cards = append(s.Cards, c.Plain())
		}
		if len(hand) == HandSize {
			if d, err := Describe(hand); err == nil {
				s.Description = d
			}
		}
		out[i] = s
	}
	return out
}

func beats(candidate, leader *Player) bool {
	if candidate.Score() != leader.Score() {
		return candidate.Score() > leader.Score()
	}
	return candidate.Category().Score() > leader.Category().Score()
}

func validatePositions(positions []int) error {
	if len(positions) > HandSize {
		return fmt.Errorf("%w: got %d", ErrTooManyPositions, len(positions))
	}
	seen := make(map[int]bool, len(positions))
	for _, idx := range positions {
		if idx < 0 || idx >= HandSize {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, idx, HandSize)
		}
		if seen[idx] {
			return fmt.Errorf("%w: %d", ErrDuplicatePosition, idx)
		}
		seen[idx] = true
	}
	return nil
}

func (r *Round) expect(allowed ...Phase) error {
	if slices.Contains(allowed, r.phase) {
		return nil
	}
	return fmt.Errorf("%w: round is %s, want %v", ErrWrongPhase, r.phase, allowed)
}

func (r *Round) advance() {
	r.phase = nextPhase(r.phase)
	r.logger.Debug("round phase changed", "round", r.id, "phase", r.phase)
}

// Returns the next phase. Resolved is terminal.
func nextPhase(current Phase) Phase {
	phases := []Phase{Created, Dealt, FirstEvaluated, Drawn, FinalEvaluated, Resolved}

	for i, p := range phases {
		if p == current {
			if i < len(phases)-1 {
				return phases[i+1]
			}
			return Resolved
		}
	}
	// Not found, default to first
	return Created
}
