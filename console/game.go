package console

import (
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

// HandPanel renders a titled box holding a hand and its score. A hidden
// hand shows only the first card and its value.
func HandPanel(title string, hand blackjack.Hand, hideHole bool) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2).WithTopPadding(1).WithBottomPadding(1)
	cards := hand.Cards()
	score := hand.Score()
	scoreLabel := pterm.Sprintf("Score: %d", score)
	if hideHole && len(cards) > 0 {
		scoreLabel = pterm.Sprintf("Showing: %d", blackjack.NewHand(cards[0]).Score())
	}
	return pbox.WithTitle(title).WithTitleTopLeft().Sprint(DisplayHand(cards, hideHole) + "\n\n" + scoreLabel)
}

// OutcomeMessage describes o from the player's point of view.
func OutcomeMessage(o blackjack.Outcome) string {
	switch o {
	case blackjack.PlayerBlackjack:
		return "Blackjack! You win."
	case blackjack.PlayerBust:
		return "You went bust. Dealer wins."
	case blackjack.DealerBust:
		return "Dealer went bust. You win!"
	case blackjack.PlayerWins:
		return "You beat the dealer!"
	case blackjack.DealerWins:
		return "Dealer wins."
	case blackjack.Push:
		return "Push. Nobody wins."
	default:
		return string(o)
	}
}

// OutcomePanel renders the result box.
func OutcomePanel(o blackjack.Outcome) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := pterm.LightRed("|" + o.Label() + "|")
	if o.PlayerWon() {
		title = pterm.LightGreen("|" + o.Label() + "|")
	} else if o == blackjack.Push {
		title = pterm.LightYellow("|" + o.Label() + "|")
	}
	return pbox.WithTitle(title).WithTitleTopCenter().Sprint(OutcomeMessage(o))
}

// RenderGame lays out the dealer hand above the player hand, followed by the
// outcome once the game is done.
func RenderGame(game *blackjack.Game) (string, error) {
	hideHole := !game.IsPlayerDone()
	panels := [][]pterm.Panel{
		{{Data: HandPanel("Dealer", game.DealerHand(), hideHole)}},
		{{Data: HandPanel("Player", game.PlayerHand(), false)}},
	}
	if o, ok := game.Outcome(); ok {
		panels = append(panels, []pterm.Panel{{Data: OutcomePanel(o)}})
	}
	return pterm.DefaultPanel.WithPanels(panels).Srender()
}
