package blackjack

import (
	"fmt"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

// CardSource produces cards one at a time. Draw returns ErrSourceExhausted
// once no cards remain.
type CardSource interface {
	Draw() (Card, error)
}

// Deck is a full 52-card deck whose draw order is fixed at construction.
type Deck struct {
	cards []Card
	next  int
}

// NewDeck materializes every rank and suit combination once and orders them
// with the permutation returned by shuffler.
func NewDeck(shuffler deck.Shuffler) *Deck {
	ordered := make([]Card, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			ordered = append(ordered, Card{suit: s, rank: r})
		}
	}
	perm := shuffler.Perm(len(ordered))
	cards := make([]Card, len(ordered))
	for i, p := range perm {
		cards[i] = ordered[p]
	}
	return &Deck{cards: cards}
}

// NewShuffledDeck returns a deck shuffled with the cryptographic shuffler.
func NewShuffledDeck() *Deck {
	return NewDeck(deck.NewStreamShuffler())
}

func (d *Deck) Draw() (Card, error) {
	return drawNext(d.cards, &d.next)
}

// Remaining returns the number of cards left to draw.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// StubDeck replays a literal sequence of ranks in order. It exists so tests
// can build exact deal scenarios without randomness.
type StubDeck struct {
	cards []Card
	next  int
}

// NewStubDeck creates a StubDeck drawing the given ranks in order. The cards
// are listed in deal order: player, dealer, player, dealer, then hits.
// Suits cycle through Club, Diamond, Heart, Spade.
func NewStubDeck(ranks ...Rank) *StubDeck {
	cards := make([]Card, len(ranks))
	for i, r := range ranks {
		cards[i] = Card{suit: Suits[i%len(Suits)], rank: r}
	}
	return &StubDeck{cards: cards}
}

func (d *StubDeck) Draw() (Card, error) {
	return drawNext(d.cards, &d.next)
}

func (d *StubDeck) Remaining() int {
	return len(d.cards) - d.next
}

// PlayerDealtBlackjack deals the player Ace+King and the dealer 10+8.
func PlayerDealtBlackjack() *StubDeck {
	return NewStubDeck(Ace, Ten, King, Eight)
}

// PlayerNotDealtBlackjackHitsAndDoesNotGoBust deals the player 10+8 against
// 7+6 and gives the player a 3 on the first hit.
func PlayerNotDealtBlackjackHitsAndDoesNotGoBust() *StubDeck {
	return NewStubDeck(Ten, Seven, Eight, Six, Three)
}

// PlayerNotDealtBlackjackHitsAndGoesBust deals the player 10+8 against 7+6
// and gives the player a 9 on the first hit.
func PlayerNotDealtBlackjackHitsAndGoesBust() *StubDeck {
	return NewStubDeck(Ten, Seven, Eight, Six, Nine)
}

// PlayerStandsAndDealerWins deals the player 10+8 against 7+6; the dealer
// then draws a 6 and stands on 19.
func PlayerStandsAndDealerWins() *StubDeck {
	return NewStubDeck(Ten, Seven, Eight, Six, Six)
}

func drawNext(cards []Card, next *int) (Card, error) {
	if *next >= len(cards) {
		return Card{}, fmt.Errorf("draw card %d of %d: %w", *next+1, len(cards), ErrSourceExhausted)
	}
	c := cards[*next]
	*next++
	return c, nil
}
