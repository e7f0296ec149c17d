package web

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

// ErrGameInterrupted is returned for a game whose dealer turn was cut short,
// typically by an exhausted card source. Such a game has no outcome and
// accepts no further actions.
var ErrGameInterrupted = errors.New("game interrupted")

// Template names selected from the game state.
const (
	TemplateInProgress = "game-in-progress"
	TemplateGameOver   = "game-over"
)

// CardView is a card prepared for HTML rendering.
type CardView struct {
	Rank     string
	Suit     string
	Color    string
	FaceDown bool
}

// GameView is the view model of one game.
type GameView struct {
	ID           int64
	Template     string
	PlayerCards  []CardView
	DealerCards  []CardView
	PlayerScore  int
	DealerScore  int
	DealerHidden bool
	Outcome      string
	PlayerWon    bool
}

// NewGameView snapshots game. While the player is still acting only the
// dealer's first card is shown and the dealer score counts that card alone.
func NewGameView(game *blackjack.Game) (GameView, error) {
	if game.IsPlayerDone() && game.State() != blackjack.Done {
		return GameView{}, fmt.Errorf("game %d stopped in %s: %w", game.ID(), game.State(), ErrGameInterrupted)
	}
	player, dealer := game.PlayerHand(), game.DealerHand()
	v := GameView{
		ID:          game.ID(),
		Template:    TemplateFor(game),
		PlayerCards: cardViews(player.Cards()),
		PlayerScore: player.Score(),
	}

	if outcome, ok := game.Outcome(); ok {
		v.Outcome = outcome.Label()
		v.PlayerWon = outcome.PlayerWon()
	}

	cards := dealer.Cards()
	if game.IsPlayerDone() || len(cards) == 0 {
		v.DealerCards = cardViews(cards)
		v.DealerScore = dealer.Score()
		return v, nil
	}
	v.DealerHidden = true
	v.DealerCards = cardViews(cards[:1])
	for range cards[1:] {
		v.DealerCards = append(v.DealerCards, CardView{FaceDown: true})
	}
	v.DealerScore = blackjack.NewHand(cards[0]).Score()
	return v, nil
}

// TemplateFor returns TemplateGameOver once the game is done and
// TemplateInProgress otherwise.
func TemplateFor(game *blackjack.Game) string {
	if game.State() == blackjack.Done {
		return TemplateGameOver
	}
	return TemplateInProgress
}

func cardViews(cards []blackjack.Card) []CardView {
	out := make([]CardView, len(cards))
	for i, c := range cards {
		out[i] = CardView{
			Rank:  c.Rank().Display(),
			Suit:  c.Suit().Symbol(),
			Color: string(c.Suit().Color()),
		}
	}
	return out
}
