package blackjack

import (
	"fmt"
	"strconv"
)

// Suit of a card (0-3).
type Suit uint8

const (
	Club    Suit = 0 // ♣ (black)
	Diamond Suit = 1 // ♦ (red)
	Heart   Suit = 2 // ♥ (red)
	Spade   Suit = 3 // ♠ (black)
)

// Color is the display colour class of a suit. Game logic never looks at it.
type Color string

const (
	Red   Color = "red"
	Black Color = "black"
)

// Rank of a card. Numeric ranks use their own number.
type Rank uint8

const (
	Ace   Rank = 1
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

var (
	// Suits lists every suit in deck order.
	Suits = []Suit{Club, Diamond, Heart, Spade}
	// Ranks lists every rank in deck order.
	Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
)

// FaceDown is the display character for a hidden card.
const FaceDown = "▓"

func (s Suit) valid() bool {
	return s <= Spade
}

// Symbol returns the suit glyph (♣, ♦, ♥, ♠).
func (s Suit) Symbol() string {
	switch s {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}

// Color returns Red for diamonds and hearts, Black otherwise.
func (s Suit) Color() Color {
	if s == Diamond || s == Heart {
		return Red
	}
	return Black
}

func (s Suit) String() string {
	switch s {
	case Club:
		return "clubs"
	case Diamond:
		return "diamonds"
	case Heart:
		return "hearts"
	case Spade:
		return "spades"
	default:
		return "unknown"
	}
}

func (r Rank) valid() bool {
	return r >= Ace && r <= King
}

// Value returns the base point value of the rank: Ace is 1, face cards are
// 10 and numeric ranks are worth their number. Ace promotion happens in
// Hand.Score.
func (r Rank) Value() int {
	if r >= Ten {
		return 10
	}
	return int(r)
}

// Display returns the short rank label (A, 2-10, J, Q, K).
func (r Rank) Display() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card represents a playing card with suit and rank.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: Club, Diamond, Heart or Spade
//   - rank: Ace through King
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if !suit.valid() || !rank.valid() {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// MustCard is NewCard for literals known to be valid. It panics otherwise.
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// String returns the rank label followed by the suit glyph, e.g. "10♣".
func (c Card) String() string {
	if !c.rank.valid() {
		return FaceDown
	}
	return c.rank.Display() + c.suit.Symbol()
}
