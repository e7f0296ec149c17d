package blackjack

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// State is the turn state of a game.
type State string

const (
	PlayerTurn State = "player_turn"
	DealerTurn State = "dealer_turn"
	Done       State = "done"
)

// Outcome is the result attached to a finished game.
type Outcome string

const (
	PlayerBlackjack Outcome = "player_blackjack"
	PlayerBust      Outcome = "player_bust"
	DealerBust      Outcome = "dealer_bust"
	PlayerWins      Outcome = "player_wins"
	DealerWins      Outcome = "dealer_wins"
	Push            Outcome = "push"
)

// dealerStandScore is the score at which the dealer stops drawing, soft or hard.
const dealerStandScore = 17

// Label returns a human readable name, e.g. "Player Blackjack".
func (o Outcome) Label() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(o), "_", " "))
}

// PlayerWon reports whether the outcome favours the player.
func (o Outcome) PlayerWon() bool {
	return o == PlayerBlackjack || o == PlayerWins || o == DealerBust
}

// Game is a single round of Blackjack. It is not safe for concurrent use;
// the owner must serialize calls.
type Game struct {
	id      int64
	source  CardSource
	player  Hand
	dealer  Hand
	state   State
	outcome Outcome
}

// NewGame deals the opening hands from source and evaluates naturals. The
// returned game is either in PlayerTurn or already Done.
func NewGame(source CardSource) (*Game, error) {
	if source == nil {
		return nil, fmt.Errorf("card source is required")
	}
	g := &Game{source: source}
	if err := g.initialDeal(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) initialDeal() error {
	for i := 0; i < 2; i++ {
		if err := g.drawInto(&g.player); err != nil {
			return fmt.Errorf("initial deal: %w", err)
		}
		if err := g.drawInto(&g.dealer); err != nil {
			return fmt.Errorf("initial deal: %w", err)
		}
	}

	playerNatural := g.player.IsBlackjack()
	dealerNatural := g.dealer.IsBlackjack()
	switch {
	case playerNatural && dealerNatural:
		g.finish(Push)
	case playerNatural:
		g.finish(PlayerBlackjack)
	case dealerNatural:
		g.finish(DealerWins)
	default:
		g.state = PlayerTurn
	}
	return nil
}

func (g *Game) drawInto(h *Hand) error {
	c, err := g.source.Draw()
	if err != nil {
		return err
	}
	h.add(c)
	return nil
}

func (g *Game) finish(o Outcome) {
	g.outcome = o
	g.state = Done
}

func (g *Game) requirePlayerTurn(action string) error {
	if g.state != PlayerTurn {
		return fmt.Errorf("%s in state %s: %w", action, g.state, ErrIllegalStateTransition)
	}
	return nil
}

// Hit draws one card for the player. A bust ends the game with PlayerBust
// and the dealer never plays.
func (g *Game) Hit() error {
	if err := g.requirePlayerTurn("hit"); err != nil {
		return err
	}
	if err := g.drawInto(&g.player); err != nil {
		return fmt.Errorf("hit: %w", err)
	}
	if g.player.IsBust() {
		g.finish(PlayerBust)
	}
	return nil
}

// Stand ends the player's turn and runs the dealer to completion.
func (g *Game) Stand() error {
	if err := g.requirePlayerTurn("stand"); err != nil {
		return err
	}
	g.state = DealerTurn
	return g.dealerTurn()
}

func (g *Game) dealerTurn() error {
	for g.dealer.Score() < dealerStandScore {
		if err := g.drawInto(&g.dealer); err != nil {
			return fmt.Errorf("dealer turn: %w", err)
		}
	}
	g.finish(g.compareHands())
	return nil
}

func (g *Game) compareHands() Outcome {
	if g.dealer.IsBust() {
		return DealerBust
	}
	player, dealer := g.player.Score(), g.dealer.Score()
	switch {
	case player > dealer:
		return PlayerWins
	case dealer > player:
		return DealerWins
	default:
		return Push
	}
}

// ID returns the identifier assigned by the owning registry.
func (g *Game) ID() int64 {
	return g.id
}

// SetID is called by the registry when the game is stored.
func (g *Game) SetID(id int64) {
	g.id = id
}

// PlayerHand returns a read-only copy of the player's hand.
func (g *Game) PlayerHand() Hand {
	return NewHand(g.player.cards...)
}

// DealerHand returns a read-only copy of the dealer's hand.
func (g *Game) DealerHand() Hand {
	return NewHand(g.dealer.cards...)
}

// IsPlayerDone reports whether the player can no longer act.
func (g *Game) IsPlayerDone() bool {
	return g.state != PlayerTurn
}

func (g *Game) State() State {
	return g.state
}

// Outcome returns the result once the game is Done.
func (g *Game) Outcome() (Outcome, bool) {
	if g.state != Done {
		return "", false
	}
	return g.outcome, true
}
