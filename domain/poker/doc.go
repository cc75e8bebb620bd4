// Package poker implements the domain logic for five-card draw: cards, hand
// evaluation, players and the round state machine.
//
// # Core Types
//
// Card: A playing card with suit and rank. Ranks run Two to Ace and Ace is
// always high.
//
// HandCategory: The classification of a five-card hand, from HighCard (1) to
// RoyalFlush (10). The value doubles as the hand's score.
//
// Player: A named player with a hand of five cards and its last evaluated
// category.
//
// Round: One game at the table, from the deal to the winner.
//
// # Game Flow
//
// A round progresses through phases: Created → Dealt → FirstEvaluated →
// Drawn → FinalEvaluated → Resolved. Each player may exchange up to five
// cards once, drawn from the top of the remaining deck.
//
// # Hand Evaluation
//
// Evaluate classifies a hand by rank and suit counts. Hands are compared by
// score only; equal scores go to the player registered first.
package poker
