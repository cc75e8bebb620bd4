package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errNotANumber = errors.New("not a number")

// parsePlayerCount reads the table size typed by the user.
func parsePlayerCount(input string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotANumber, input)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("player count must be between %d and %d, got %d", lo, hi, n)
	}
	return n, nil
}

// parsePositions turns "1 3 5" into the 0-based positions [0 2 4]. A blank
// line means no exchange. Range checks are left to the round.
func parsePositions(input string) ([]int, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, nil
	}
	positions := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errNotANumber, f)
		}
		positions = append(positions, n-1)
	}
	return positions, nil
}

// playerName trims the typed name and falls back to a numbered default.
func playerName(input string, seat int, l labels) string {
	if name := strings.TrimSpace(input); name != "" {
		return name
	}
	return fmt.Sprintf(l.msg.defaultName, seat)
}
