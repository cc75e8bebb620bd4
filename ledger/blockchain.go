package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/giru28/drawpoker/domain/poker"
)

var ErrEmptyBlockchain = errors.New("blockchain is empty")

type Blockchain struct {
	mu     sync.RWMutex
	blocks []Block
	now    func() time.Time
}

// NewBlockchain creates a new blockchain with an initialized genesis block.
// The genesis block has index 0, previous hash "0" and an empty result.
func NewBlockchain() *Blockchain {
	bc := &Blockchain{
		blocks: make([]Block, 0),
		now:    time.Now,
	}

	genesis := Block{
		Index:     0,
		Timestamp: bc.now().Unix(),
		PrevHash:  "0",
	}
	genesis.Hash = bc.calculateHash(genesis)
	bc.blocks = append(bc.blocks, genesis)

	return bc
}

// Append adds the result of a resolved round. The block is hashed and
// validated against the latest block before it is stored.
func (bc *Blockchain) Append(result poker.Result) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if len(bc.blocks) == 0 {
		return ErrEmptyBlockchain
	}
	if result.RoundID == "" {
		return fmt.Errorf("result has no round id")
	}
	latest := bc.blocks[len(bc.blocks)-1]

	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: bc.now().Unix(),
		PrevHash:  latest.Hash,
		Result:    result,
	}
	newBlock.Hash = bc.calculateHash(newBlock)

	if err := bc.validateBlock(newBlock, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}

	bc.blocks = append(bc.blocks, newBlock)
	return nil
}

// GetLatest returns the most recently added block in the blockchain.
// Returns an error if the blockchain is empty.
func (bc *Blockchain) GetLatest() (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return Block{}, ErrEmptyBlockchain
	}

	return bc.blocks[len(bc.blocks)-1], nil
}

// GetByIndex retrieves a block by its index in the chain. Returns an error if the index
// is out of range.
func (bc *Blockchain) GetByIndex(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}

	return bc.blocks[index], nil
}

// Results returns the recorded round results, oldest first, without the
// genesis block.
func (bc *Blockchain) Results() []poker.Result {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) <= 1 {
		return nil
	}
	out := make([]poker.Result, 0, len(bc.blocks)-1)
	for _, b := range bc.blocks[1:] {
		out = append(out, b.Result)
	}
	return out
}

// Wins counts the rounds won by each player name.
func (bc *Blockchain) Wins() map[string]int {
	wins := make(map[string]int)
	for _, r := range bc.Results() {
		wins[r.Winner.Name]++
	}
	return wins
}

// Verify validates the integrity of the entire blockchain by checking the genesis block
// and verifying each subsequent block's hash, index continuity, and previous hash linkage.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return ErrEmptyBlockchain
	}

	genesis := bc.blocks[0]
	if genesis.PrevHash != "0" || genesis.Hash != bc.calculateHash(genesis) {
		return fmt.Errorf("invalid genesis block")
	}

	for i := 1; i < len(bc.blocks); i++ {
		if err := bc.validateBlock(bc.blocks[i], bc.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}

	return nil
}

// validateBlock verifies that a block is valid relative to the previous block. It checks
// index continuity, previous hash linkage and current hash validity.
func (bc *Blockchain) validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}

	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}

	expectedHash := bc.calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}

	return nil
}

// calculateHash computes the SHA256 hash of a block from its index, timestamp,
// previous hash and JSON-encoded result.
func (bc *Blockchain) calculateHash(block Block) string {
	resultBytes, _ := json.Marshal(block.Result)

	data := fmt.Sprintf("%d%d%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(resultBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
