package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/giru28/drawpoker/config"
	"github.com/giru28/drawpoker/domain/deck"
	"github.com/giru28/drawpoker/domain/poker"
	"github.com/giru28/drawpoker/ledger"
)

func main() {
	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.RegisterFlags(flags)
	_ = flags.Parse(os.Args[1:])
	configPath, _ := flags.GetString("config")

	cfg, err := config.Load(configPath, flags)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	logger := newLogger(cfg)
	l := newLabels(cfg.Locale)

	var shuffler deck.Shuffler = deck.NewCryptoShuffler()
	if cfg.Seed != 0 {
		shuffler = deck.NewSeededShuffler(cfg.Seed)
		logger.Info("using a seeded deck", "seed", cfg.Seed)
	}

	renderBanner()
	renderRules(l)

	history := ledger.NewBlockchain()
	for {
		res, err := playRound(l, cfg, shuffler, logger)
		if err != nil {
			logger.Error("round aborted", "error", err)
		} else if err := history.Append(res); err != nil {
			logger.Error("could not record round", "round", res.RoundID, "error", err)
		}

		again, _ := pterm.DefaultInteractiveConfirm.WithDefaultText(l.msg.playAgain).WithDefaultValue(true).Show()
		if !again {
			break
		}
	}

	printHistory(l, history)
	pterm.Info.Println(l.msg.goodbye)
}

// newLogger builds the slog logger backed by the pterm logger.
func newLogger(cfg *config.Config) *slog.Logger {
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(level)))
	return slog.New(handler)
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}

// playRound runs one round from registration to the winner.
func playRound(l labels, cfg *config.Config, shuffler deck.Shuffler, logger *slog.Logger) (poker.Result, error) {
	n := askPlayerCount(l, cfg.Players.Min, cfg.Players.Max)
	names := make([]string, n)
	for i := range names {
		input, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(fmt.Sprintf(l.msg.playerName, i+1)).Show()
		names[i] = playerName(input, i+1, l)
	}

	round, err := poker.NewRound(names, poker.WithShuffler(shuffler), poker.WithLogger(logger))
	if err != nil {
		return poker.Result{}, err
	}
	logger.Debug("round created", "round", round.ID(), "players", len(names))

	spinner, _ := pterm.DefaultSpinner.Start("Shuffling the cards ...")
	if err := round.Deal(); err != nil {
		spinner.Fail()
		return poker.Result{}, err
	}
	spinner.Success()

	if err := round.Evaluate(); err != nil {
		return poker.Result{}, err
	}
	printStandings(l, l.msg.firstEvaluation, round.Standings())

	discards := make([][]int, n)
	for i, s := range round.Standings() {
		discards[i] = askDiscards(l, s)
	}
	warnings, err := round.Draw(discards)
	if err != nil {
		return poker.Result{}, err
	}
	for _, w := range warnings {
		pterm.Warning.Printfln(l.msg.drawIgnored, w.Player, w.Err)
	}

	if err := round.Evaluate(); err != nil {
		return poker.Result{}, err
	}
	printStandings(l, l.msg.finalEvaluation, round.Standings())

	res, err := round.Resolve()
	if err != nil {
		return poker.Result{}, err
	}
	printWinner(l, res)
	return res, nil
}

func askPlayerCount(l labels, lo, hi int) int {
	for {
		input, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(fmt.Sprintf(l.msg.playerCount, lo, hi)).Show()
		n, err := parsePlayerCount(input, lo, hi)
		if err == nil {
			return n
		}
		pterm.Error.Printfln(l.msg.invalidInput, err)
	}
}

// askDiscards shows the player's hand and reads the positions to exchange.
// Unreadable input keeps the hand.
func askDiscards(l labels, s poker.Standing) []int {
	printHand(l, s)
	input, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(fmt.Sprintf(l.msg.discard, s.Name)).Show()
	positions, err := parsePositions(input)
	if err != nil {
		pterm.Warning.Printfln(l.msg.drawIgnored, s.Name, err)
		return nil
	}
	return positions
}
