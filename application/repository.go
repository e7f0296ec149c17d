package application

import (
	"fmt"
	"sync"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

// GameRepository maps game ids to games for the lifetime of the process.
type GameRepository interface {
	// Save assigns an id to game, stores it and returns the id.
	Save(game *blackjack.Game) int64
	// Find returns the game registered under id or ErrGameNotFound.
	Find(id int64) (*blackjack.Game, error)
	// Update runs fn while holding the game's lock, so at most one action
	// runs per game at a time.
	Update(id int64, fn func(*blackjack.Game) error) error
}

type gameEntry struct {
	mu   sync.Mutex
	game *blackjack.Game
}

// InMemoryGameRepository is a GameRepository backed by a map.
type InMemoryGameRepository struct {
	mu    sync.RWMutex
	ids   *IDGenerator
	games map[int64]*gameEntry
}

// NewInMemoryGameRepository creates an empty repository. A nil ids starts
// numbering at 0.
func NewInMemoryGameRepository(ids *IDGenerator) *InMemoryGameRepository {
	if ids == nil {
		ids = NewIDGenerator(0)
	}
	return &InMemoryGameRepository{
		ids:   ids,
		games: make(map[int64]*gameEntry),
	}
}

func (r *InMemoryGameRepository) Save(game *blackjack.Game) int64 {
	id := r.ids.Next()
	game.SetID(id)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[id] = &gameEntry{game: game}
	return id
}

func (r *InMemoryGameRepository) entry(id int64) (*gameEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.games[id]
	if !ok {
		return nil, fmt.Errorf("game %d: %w", id, ErrGameNotFound)
	}
	return e, nil
}

func (r *InMemoryGameRepository) Find(id int64) (*blackjack.Game, error) {
	e, err := r.entry(id)
	if err != nil {
		return nil, err
	}
	return e.game, nil
}

func (r *InMemoryGameRepository) Update(id int64, fn func(*blackjack.Game) error) error {
	e, err := r.entry(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.game)
}

// Len returns the number of stored games.
func (r *InMemoryGameRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
