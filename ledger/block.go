package ledger

import "github.com/giru28/drawpoker/domain/poker"

// Block records one resolved round
type Block struct {
	Index     int          `json:"index"`
	Timestamp int64        `json:"timestamp"`
	PrevHash  string       `json:"prev_hash"`
	Hash      string       `json:"hash"`
	Result    poker.Result `json:"result"`
}
