package poker

import (
	"log/slog"

	"github.com/giru28/drawpoker/domain/deck"
)

// RoundOption customises a Round built by NewRound.
type RoundOption func(Round) Round

// WithShuffler replaces the default crypto shuffler, for example with a
// deck.SeededShuffler to replay a game.
func WithShuffler(s deck.Shuffler) RoundOption {
	return func(r Round) Round {
		if s != nil {
			r.shuffler = s
		}
		return r
	}
}

func WithLogger(logger *slog.Logger) RoundOption {
	return func(r Round) Round {
		if logger != nil {
			r.logger = logger
		}
		return r
	}
}

// WithRoundID sets the identifier instead of generating a UUID.
func WithRoundID(id string) RoundOption {
	return func(r Round) Round {
		r.id = id
		return r
	}
}
