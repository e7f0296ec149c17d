// Package console renders blackjack games for a terminal with pterm.
package console

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

const cardInnerWidth = 9

var (
	redCard   = pterm.NewStyle(pterm.FgRed, pterm.BgWhite)
	blackCard = pterm.NewStyle(pterm.FgBlack, pterm.BgWhite)
	backCard  = pterm.NewStyle(pterm.FgBlue, pterm.BgWhite)
)

func cardStyle(s blackjack.Suit) *pterm.Style {
	if s.Color() == blackjack.Red {
		return redCard
	}
	return blackCard
}

func cardLines(c blackjack.Card) []string {
	rank := c.Rank().Display()
	suit := c.Suit().Symbol()
	pad := (cardInnerWidth - 1) / 2
	return []string{
		"┌" + strings.Repeat("─", cardInnerWidth) + "┐",
		"│" + fmt.Sprintf("%-*s", cardInnerWidth, rank) + "│",
		"│" + strings.Repeat(" ", cardInnerWidth) + "│",
		"│" + strings.Repeat(" ", pad) + suit + strings.Repeat(" ", cardInnerWidth-pad-1) + "│",
		"│" + strings.Repeat(" ", cardInnerWidth) + "│",
		"│" + fmt.Sprintf("%*s", cardInnerWidth, rank) + "│",
		"└" + strings.Repeat("─", cardInnerWidth) + "┘",
	}
}

func faceDownLines() []string {
	lines := []string{"┌" + strings.Repeat("─", cardInnerWidth) + "┐"}
	for i := 0; i < 5; i++ {
		lines = append(lines, "│"+strings.Repeat(blackjack.FaceDown, cardInnerWidth)+"│")
	}
	return append(lines, "└"+strings.Repeat("─", cardInnerWidth)+"┘")
}

func styled(style *pterm.Style, lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = style.Sprint(l)
	}
	return out
}

// DisplayCard draws a card as a box, red for hearts and diamonds and black
// for clubs and spades.
func DisplayCard(c blackjack.Card) string {
	return strings.Join(styled(cardStyle(c.Suit()), cardLines(c)), "\n")
}

// DisplayHand draws cards side by side. With hideHole set every card after
// the first is drawn face down.
func DisplayHand(cards []blackjack.Card, hideHole bool) string {
	if len(cards) == 0 {
		return ""
	}
	columns := make([][]string, len(cards))
	for i, c := range cards {
		if hideHole && i > 0 {
			columns[i] = styled(backCard, faceDownLines())
			continue
		}
		columns[i] = styled(cardStyle(c.Suit()), cardLines(c))
	}
	rows := make([]string, len(columns[0]))
	for r := range rows {
		parts := make([]string, len(columns))
		for c := range columns {
			parts[c] = columns[c][r]
		}
		rows[r] = strings.Join(parts, " ")
	}
	return strings.Join(rows, "\n")
}
