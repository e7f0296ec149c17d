package application

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/domain/deck"
)

// GameMonitor is notified once for every game that reaches blackjack.Done.
// It is called while the game's lock is held, so it may read the game but
// must not keep it.
type GameMonitor interface {
	RoundCompleted(game *blackjack.Game)
}

// SourceFactory returns a fresh card source for each new game.
type SourceFactory func() blackjack.CardSource

// ShuffledDecks is the production SourceFactory.
func ShuffledDecks() blackjack.CardSource {
	return blackjack.NewShuffledDeck()
}

// SeededDecks returns a SourceFactory whose decks are all shuffled from one
// seeded stream, so a whole session replays identically for the same seed.
func SeededDecks(seed uint64) SourceFactory {
	shuffler := deck.NewSeededShuffler(seed)
	return func() blackjack.CardSource {
		return blackjack.NewDeck(shuffler)
	}
}

// GameService starts games and applies player actions to them by id.
type GameService struct {
	newSource SourceFactory
	repo      GameRepository
	monitor   GameMonitor
	logger    *slog.Logger
}

type ServiceOption func(*GameService)

// WithMonitor registers a monitor for completed games.
func WithMonitor(m GameMonitor) ServiceOption {
	return func(s *GameService) {
		s.monitor = m
	}
}

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *GameService) {
		s.logger = l
	}
}

// NewGameService creates a GameService. A nil newSource uses ShuffledDecks
// and a nil repo uses an InMemoryGameRepository numbering from 0.
func NewGameService(newSource SourceFactory, repo GameRepository, opts ...ServiceOption) *GameService {
	if newSource == nil {
		newSource = ShuffledDecks
	}
	if repo == nil {
		repo = NewInMemoryGameRepository(nil)
	}
	s := &GameService{
		newSource: newSource,
		repo:      repo,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartGame deals a new game from a fresh source and registers it.
func (s *GameService) StartGame() (*blackjack.Game, error) {
	game, err := blackjack.NewGame(s.newSource())
	if err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}
	id := s.repo.Save(game)
	s.logger.Info("game started", "game_id", id, "state", game.State())
	err = s.repo.Update(id, func(g *blackjack.Game) error {
		s.notifyIfDone(g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

// GameFor returns the game registered under id. The returned game is shared;
// concurrent callers should use View, Hit and Stand instead of reading it
// directly.
func (s *GameService) GameFor(id int64) (*blackjack.Game, error) {
	return s.repo.Find(id)
}

// View calls fn with the game registered under id while no action can run
// on it.
func (s *GameService) View(id int64, fn func(*blackjack.Game) error) error {
	return s.repo.Update(id, fn)
}

// Hit draws a card for the player of game id.
func (s *GameService) Hit(id int64) error {
	return s.act(id, "hit", (*blackjack.Game).Hit)
}

// Stand ends the player's turn of game id and plays the dealer.
func (s *GameService) Stand(id int64) error {
	return s.act(id, "stand", (*blackjack.Game).Stand)
}

func (s *GameService) act(id int64, name string, action func(*blackjack.Game) error) error {
	return s.repo.Update(id, func(g *blackjack.Game) error {
		if err := action(g); err != nil {
			s.logger.Warn("action rejected", "game_id", id, "action", name, "error", err)
			return fmt.Errorf("game %d: %w", id, err)
		}
		s.logger.Debug("action applied", "game_id", id, "action", name, "state", g.State())
		s.notifyIfDone(g)
		return nil
	})
}

func (s *GameService) notifyIfDone(g *blackjack.Game) {
	outcome, ok := g.Outcome()
	if !ok {
		return
	}
	s.logger.Info("game finished", "game_id", g.ID(), "outcome", outcome,
		"player_score", g.PlayerHand().Score(), "dealer_score", g.DealerHand().Score())
	if s.monitor != nil {
		s.monitor.RoundCompleted(g)
	}
}
