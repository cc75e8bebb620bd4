package poker

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"
)

// stackedShuffler puts the given cards on top of the deck, in order, and
// leaves the rest in deck order.
type stackedShuffler struct {
	top []Card
}

func (s stackedShuffler) Perm(n int) ([]int, error) {
	perm := make([]int, 0, n)
	used := make(map[int]bool, len(s.top))
	for _, c := range s.top {
		idx := CardToInt(c) - 1
		perm = append(perm, idx)
		used[idx] = true
	}
	for i := 0; i < n; i++ {
		if !used[i] {
			perm = append(perm, i)
		}
	}
	return perm, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRound(t *testing.T, names []string, top ...Card) *Round {
	t.Helper()
	r, err := NewRound(names,
		WithShuffler(stackedShuffler{top: top}),
		WithLogger(quietLogger()),
		WithRoundID("test-round"),
	)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestNextPhase(t *testing.T) {
	tests := []struct {
		name     string
		current  Phase
		expected Phase
	}{
		{"Created to Dealt", Created, Dealt},
		{"Dealt to FirstEvaluated", Dealt, FirstEvaluated},
		{"FirstEvaluated to Drawn", FirstEvaluated, Drawn},
		{"Drawn to FinalEvaluated", Drawn, FinalEvaluated},
		{"FinalEvaluated to Resolved", FinalEvaluated, Resolved},
		{"Resolved is terminal", Resolved, Resolved},
		{"Unknown phase defaults to Created", "unknown", Created},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := nextPhase(tt.current)
			if result != tt.expected {
				t.Errorf("nextPhase(%q) = %q, want %q", tt.current, result, tt.expected)
			}
		})
	}
}

func TestNewRoundPlayerCount(t *testing.T) {
	if _, err := NewRound(nil); !errors.Is(err, ErrNoPlayers) {
		t.Fatalf("expected ErrNoPlayers, got %v", err)
	}
	six := []string{"a", "b", "c", "d", "e", "f"}
	if _, err := NewRound(six); !errors.Is(err, ErrTooManyPlayers) {
		t.Fatalf("expected ErrTooManyPlayers, got %v", err)
	}
	r, err := NewRound(six[:MaxPlayers])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Phase() != Created {
		t.Fatalf("expected phase %s, got %s", Created, r.Phase())
	}
	if r.ID() == "" {
		t.Fatal("expected a generated round id")
	}
}

func TestDealGivesDistinctCards(t *testing.T) {
	for n := 1; n <= MaxPlayers; n++ {
		names := make([]string, n)
		for i := range names {
			names[i] = string(rune('A' + i))
		}
		r, err := NewRound(names, WithLogger(quietLogger()))
		if err != nil {
			t.Fatal(err)
		}
		if err := r.Deal(); err != nil {
			t.Fatal(err)
		}
		if r.Remaining() != DeckSize-HandSize*n {
			t.Fatalf("%d players: expected %d cards left, got %d", n, DeckSize-HandSize*n, r.Remaining())
		}
		seen := make(map[Card]bool)
		for _, s := range r.Standings() {
			if len(s.Hand) != HandSize {
				t.Fatalf("%s has %d cards", s.Name, len(s.Hand))
			}
			for _, c := range s.Hand {
				if seen[c] {
					t.Fatalf("card %s dealt twice", c.Plain())
				}
				seen[c] = true
			}
		}
	}
}

func TestDealInRegistrationOrder(t *testing.T) {
	r := newTestRound(t, []string{"Alice", "Bob"})
	if err := r.Deal(); err != nil {
		t.Fatal(err)
	}
	st := r.Standings()
	// unshuffled deck: spades Two to Ace first
	wantAlice := hand(c(Spade, Two), c(Spade, Three), c(Spade, Four), c(Spade, Five), c(Spade, Six))
	wantBob := hand(c(Spade, Seven), c(Spade, Eight), c(Spade, Nine), c(Spade, Ten), c(Spade, Jack))
	if !slices.Equal(st[0].Hand, wantAlice) {
		t.Errorf("Alice: expected %v, got %v", wantAlice, st[0].Hand)
	}
	if !slices.Equal(st[1].Hand, wantBob) {
		t.Errorf("Bob: expected %v, got %v", wantBob, st[1].Hand)
	}
}

func TestRoundDrawChangesWinner(t *testing.T) {
	r := newTestRound(t, []string{"Alice", "Bob"},
		// Alice: one pair
		c(Spade, Two), c(Heart, Two), c(Diamond, Five), c(Club, Nine), c(Spade, King),
		// Bob: high card
		c(Spade, Three), c(Heart, Four), c(Diamond, Seven), c(Club, Eight), c(Heart, Jack),
		// replacements
		c(Heart, Three), c(Diamond, Three), c(Club, Three),
	)
	if err := r.Deal(); err != nil {
		t.Fatal(err)
	}
	if err := r.Evaluate(); err != nil {
		t.Fatal(err)
	}
	first := r.Standings()
	if first[0].Category != OnePair || first[1].Category != HighCard {
		t.Fatalf("unexpected first evaluation: %s, %s", first[0].Category, first[1].Category)
	}

	warnings, err := r.Draw([][]int{nil, {2, 3, 4}})
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if r.Remaining() != DeckSize-10-3 {
		t.Fatalf("expected %d cards left, got %d", DeckSize-13, r.Remaining())
	}
	if err := r.Evaluate(); err != nil {
		t.Fatal(err)
	}
	res, err := r.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if res.WinnerIndex != 1 || res.Winner.Name != "Bob" {
		t.Fatalf("expected Bob to win, got %s", res.Winner.Name)
	}
	if res.Winner.Category != FourOfAKind || res.Winner.Score != 8 {
		t.Fatalf("expected four of a kind (8), got %s (%d)", res.Winner.Category, res.Winner.Score)
	}
	if res.RoundID != "test-round" {
		t.Fatalf("unexpected round id %q", res.RoundID)
	}
	if r.Phase() != Resolved {
		t.Fatalf("expected phase %s, got %s", Resolved, r.Phase())
	}
}

func TestRoundTieGoesToEarliestPlayer(t *testing.T) {
	r := newTestRound(t, []string{"Alice", "Bob", "Carol"},
		c(Spade, Two), c(Heart, Two), c(Diamond, Five), c(Club, Nine), c(Spade, King),
		c(Spade, Ace), c(Heart, Ace), c(Diamond, Six), c(Club, Ten), c(Spade, Queen),
		c(Heart, Three), c(Diamond, Three), c(Club, Seven), c(Spade, Eight), c(Heart, Jack),
	)
	playToEnd(t, r, nil)
	res, err := r.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if res.Winner.Name != "Alice" {
		t.Fatalf("expected Alice to win the tie, got %s", res.Winner.Name)
	}
	for _, s := range res.Standings {
		if s.Category != OnePair {
			t.Fatalf("%s: expected one pair, got %s", s.Name, s.Category)
		}
	}
}

func TestRoundSinglePlayerWins(t *testing.T) {
	r := newTestRound(t, []string{"Solo"})
	playToEnd(t, r, [][]int{{0, 1, 2, 3, 4}})
	res, err := r.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if res.WinnerIndex != 0 || res.Winner.Name != "Solo" {
		t.Fatalf("unexpected winner %+v", res.Winner)
	}
	// 2-6 of spades exchanged for 7-J of spades
	if res.Winner.Category != StraightFlush {
		t.Fatalf("expected straight flush, got %s", res.Winner.Category)
	}
}

func TestRoundInvalidDiscardsAreSkipped(t *testing.T) {
	r := newTestRound(t, []string{"Alice", "Bob", "Carol", "Dave"})
	if err := r.Deal(); err != nil {
		t.Fatal(err)
	}
	if err := r.Evaluate(); err != nil {
		t.Fatal(err)
	}
	before := r.Standings()
	remaining := r.Remaining()

	warnings, err := r.Draw([][]int{
		{0, 0},             // duplicate
		{5},                // out of range
		{0, 1, 2, 3, 4, 0}, // too many
		{-1},               // negative
	})
	if err != nil {
		t.Fatal(err)
	}
	wantErrs := []error{ErrDuplicatePosition, ErrIndexOutOfRange, ErrTooManyPositions, ErrIndexOutOfRange}
	if len(warnings) != len(wantErrs) {
		t.Fatalf("expected %d warnings, got %d", len(wantErrs), len(warnings))
	}
	for i, w := range warnings {
		if w.PlayerIndex != i || w.Player != before[i].Name {
			t.Errorf("warning %d for wrong player: %+v", i, w)
		}
		if !errors.Is(w, wantErrs[i]) {
			t.Errorf("warning %d: expected %v, got %v", i, wantErrs[i], w.Err)
		}
	}
	if r.Remaining() != remaining {
		t.Fatalf("invalid discards consumed cards: %d -> %d", remaining, r.Remaining())
	}
	after := r.Standings()
	for i := range before {
		if !slices.Equal(before[i].Hand, after[i].Hand) {
			t.Errorf("%s: hand changed after ignored discard", before[i].Name)
		}
	}
	if r.Phase() != Drawn {
		t.Fatalf("expected phase %s, got %s", Drawn, r.Phase())
	}
}

func TestRoundInvalidDiscardDoesNotAffectOthers(t *testing.T) {
	r := newTestRound(t, []string{"Alice", "Bob"})
	if err := r.Deal(); err != nil {
		t.Fatal(err)
	}
	if err := r.Evaluate(); err != nil {
		t.Fatal(err)
	}
	warnings, err := r.Draw([][]int{{7}, {0}})
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 || warnings[0].Player != "Alice" {
		t.Fatalf("expected one warning for Alice, got %v", warnings)
	}
	// Bob gets the first undrawn card, Queen of spades
	if got := r.Standings()[1].Hand[0]; got != c(Spade, Queen) {
		t.Fatalf("expected Q♠ for Bob, got %s", got.Plain())
	}
}

func TestRoundTooManyDiscardEntries(t *testing.T) {
	r := newTestRound(t, []string{"Alice"})
	if err := r.Deal(); err != nil {
		t.Fatal(err)
	}
	if err := r.Evaluate(); err != nil {
		t.Fatal(err)
	}
	_, err := r.Draw([][]int{{0}, {1}})
	if !errors.Is(err, ErrTooManyDiscards) {
		t.Fatalf("expected ErrTooManyDiscards, got %v", err)
	}
	if r.Phase() != FirstEvaluated {
		t.Fatalf("phase moved to %s after rejected draw", r.Phase())
	}
	if r.Remaining() != DeckSize-HandSize {
		t.Fatal("rejected draw consumed cards")
	}
}

func TestRoundWrongPhase(t *testing.T) {
	r := newTestRound(t, []string{"Alice", "Bob"})
	if err := r.Evaluate(); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("Evaluate before Deal: expected ErrWrongPhase, got %v", err)
	}
	if _, err := r.Draw(nil); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("Draw before Deal: expected ErrWrongPhase, got %v", err)
	}
	if _, err := r.Resolve(); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("Resolve before Deal: expected ErrWrongPhase, got %v", err)
	}
	if err := r.Deal(); err != nil {
		t.Fatal(err)
	}
	if err := r.Deal(); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("second Deal: expected ErrWrongPhase, got %v", err)
	}
	if _, err := r.Draw(nil); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("Draw before Evaluate: expected ErrWrongPhase, got %v", err)
	}
	playToEnd(t, r, nil)
	if _, err := r.Resolve(); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Resolve(); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("second Resolve: expected ErrWrongPhase, got %v", err)
	}
}

func TestBeats(t *testing.T) {
	pair := NewPlayer("pair")
	if err := pair.SetHand(hand(c(Spade, Two), c(Heart, Two), c(Diamond, Five), c(Club, Nine), c(Spade, King))); err != nil {
		t.Fatal(err)
	}
	flush := NewPlayer("flush")
	if err := flush.SetHand(hand(c(Diamond, Two), c(Diamond, Seven), c(Diamond, Nine), c(Diamond, Jack), c(Diamond, King))); err != nil {
		t.Fatal(err)
	}
	for _, p := range []*Player{pair, flush} {
		if err := p.CalculateScore(); err != nil {
			t.Fatal(err)
		}
	}
	if !beats(flush, pair) {
		t.Error("flush should beat one pair")
	}
	if beats(pair, flush) {
		t.Error("one pair should not beat flush")
	}
	if beats(pair, pair) {
		t.Error("equal hands must not replace the leader")
	}
}

// playToEnd runs a round from wherever it is up to FinalEvaluated.
func playToEnd(t *testing.T, r *Round, discards [][]int) {
	t.Helper()
	if r.Phase() == Created {
		if err := r.Deal(); err != nil {
			t.Fatal(err)
		}
	}
	if err := r.Evaluate(); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Draw(discards); err != nil {
		t.Fatal(err)
	}
	if err := r.Evaluate(); err != nil {
		t.Fatal(err)
	}
}
