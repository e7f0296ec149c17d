package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

const genesisPrevHash = "0"

type Ledger struct {
	mu     sync.RWMutex
	blocks []Block
	now    func() time.Time
}

// New creates a ledger holding only the genesis block.
func New() *Ledger {
	l := &Ledger{now: time.Now}
	genesis := Block{
		Index:     0,
		Timestamp: l.now().Unix(),
		PrevHash:  genesisPrevHash,
	}
	genesis.Hash = calculateHash(genesis)
	l.blocks = append(l.blocks, genesis)
	return l
}

// RoundCompleted records a finished game. Games that are not Done are
// ignored.
func (l *Ledger) RoundCompleted(game *blackjack.Game) {
	outcome, ok := game.Outcome()
	if !ok {
		return
	}
	player, dealer := game.PlayerHand(), game.DealerHand()
	l.Append(Record{
		GameID:      game.ID(),
		PlayerCards: cardStrings(player.Cards()),
		DealerCards: cardStrings(dealer.Cards()),
		PlayerScore: player.Score(),
		DealerScore: dealer.Score(),
		Outcome:     string(outcome),
	})
}

// Append adds a record as a new block chained to the latest one.
func (l *Ledger) Append(r Record) Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	latest := l.blocks[len(l.blocks)-1]
	b := Block{
		Index:     latest.Index + 1,
		Timestamp: l.now().Unix(),
		PrevHash:  latest.Hash,
		Record:    r,
	}
	b.Hash = calculateHash(b)
	l.blocks = append(l.blocks, b)
	return b
}

// Latest returns the most recently added block.
func (l *Ledger) Latest() Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.blocks[len(l.blocks)-1]
}

// Blocks returns a copy of the chain without the genesis block, oldest
// first.
func (l *Ledger) Blocks() []Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Block(nil), l.blocks[1:]...)
}

// Len returns the number of recorded games.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks) - 1
}

// Verify validates the genesis block and every link of the chain.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return fmt.Errorf("empty ledger")
	}
	if l.blocks[0].PrevHash != genesisPrevHash {
		return fmt.Errorf("invalid genesis block")
	}
	for i := 1; i < len(l.blocks); i++ {
		if err := validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, current.Hash)
	}
	return nil
}

// calculateHash computes the SHA256 hash of a block from its index,
// timestamp, previous hash and JSON encoded record.
func calculateHash(b Block) string {
	record, _ := json.Marshal(b.Record)
	data := fmt.Sprintf("%d%d%s%s", b.Index, b.Timestamp, b.PrevHash, record)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

func cardStrings(cards []blackjack.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
