package blackjack

import "strings"

const (
	blackjackScore = 21
	acePromotion   = 10
)

// Hand is the ordered sequence of cards held by one party. Cards are only
// ever appended.
type Hand struct {
	cards []Card
}

// NewHand returns a hand holding the given cards.
func NewHand(cards ...Card) Hand {
	return Hand{cards: append([]Card(nil), cards...)}
}

func (h *Hand) add(c Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the cards in the order they were dealt.
func (h Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

func (h Hand) Len() int {
	return len(h.cards)
}

// Score sums base values and then promotes Aces from 1 to 11, one at a
// time, while the total stays at or below 21.
func (h Hand) Score() int {
	score, _ := h.score()
	return score
}

// IsSoft reports whether the score counts at least one Ace as 11.
func (h Hand) IsSoft() bool {
	_, promoted := h.score()
	return promoted > 0
}

func (h Hand) score() (total int, promoted int) {
	aces := 0
	for _, c := range h.cards {
		total += c.rank.Value()
		if c.rank == Ace {
			aces++
		}
	}
	for promoted < aces && total+acePromotion <= blackjackScore {
		total += acePromotion
		promoted++
	}
	return total, promoted
}

// IsBust reports whether the score exceeds 21.
func (h Hand) IsBust() bool {
	return h.Score() > blackjackScore
}

// IsBlackjack reports a natural: exactly two cards scoring 21.
func (h Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Score() == blackjackScore
}

func (h Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
