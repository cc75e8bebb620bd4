// Package ledger keeps an append-only history of resolved rounds.
//
// # Core Components
//
// Blockchain: A hash-chained log of round results. Each block stores the
// SHA-256 hash of the previous one, so rewriting an earlier result breaks
// every later link.
//
// Block: A single resolved round with its winner and final standings.
//
// # Usage
//
// Create a blockchain once per session, append the Result of every resolved
// round, and call Verify before trusting the history.
package ledger
