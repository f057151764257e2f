package pusoy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Rank is the face of a card: Ace=1, 2-10 face value, Jack=11, Queen=12, King=13.
// Zero is not a rank and marks an invalid card.
type Rank uint8

// Suit is ordered by Pusoy Dos strength: Clubs < Spades < Hearts < Diamonds.
type Suit uint8

// Card rank constants for face cards and ace
const (
	Ace   Rank = 1
	Two   Rank = 2
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Card suit constants (0-3), weakest first
const (
	Clubs    Suit = 0 // ♣
	Spades   Suit = 1 // ♠
	Hearts   Suit = 2 // ♥
	Diamonds Suit = 3 // ♦
)

const (
	rankGlyphs = "A234567890JQK"
	suitGlyphs = "CSHD"
)

// InvalidCode is the display code of a card with no valid rank or suit.
const InvalidCode = "XX"

var ErrInvalidCard = errors.New("invalid card")

// Card represents a playing card with rank and suit.
// The zero Card is the invalid sentinel: every derived value is 0.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//   - suit: 0-3 (Clubs, Spades, Hearts, Diamonds)
//
// Returns the Card or an error wrapping ErrInvalidCard.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if rank == 0 || rank > King || suit > Diamonds {
		return Card{}, fmt.Errorf("%w: rank %d, suit %d", ErrInvalidCard, rank, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustCard is NewCard for constant inputs; it panics on an invalid card.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Rank returns the rank of the Card (1-13, 0 for the invalid card).
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Valid reports whether c is one of the 52 real cards.
func (c Card) Valid() bool {
	return c.rank >= Ace && c.rank <= King && c.suit <= Diamonds
}

// Code returns the two-character code of the card: rank glyph then suit glyph,
// with "0" standing for ten. Invalid cards render as "XX".
func (c Card) Code() string {
	if !c.Valid() {
		return InvalidCode
	}
	return string([]byte{rankGlyphs[c.rank-1], suitGlyphs[c.suit]})
}

func (c Card) String() string {
	return c.Code()
}

// Pretty renders the card for the terminal with a colored suit symbol.
func (c Card) Pretty() string {
	if !c.Valid() {
		return "?"
	}
	var suit string
	switch c.suit {
	case Clubs:
		suit = pterm.Black("♣")
	case Spades:
		suit = pterm.Black("♠")
	case Hearts:
		suit = pterm.LightRed("♥")
	case Diamonds:
		suit = pterm.LightRed("♦")
	}

	var rankStr string
	switch c.rank {
	case Ace:
		rankStr = "A"
	case Jack:
		rankStr = "J"
	case Queen:
		rankStr = "Q"
	case King:
		rankStr = "K"
	default:
		rankStr = fmt.Sprintf("%d", c.rank)
	}
	return rankStr + suit
}

// ParseCard is the inverse of Code. It accepts exactly the 52 valid codes.
func ParseCard(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("%w: code %q must be 2 characters", ErrInvalidCard, code)
	}
	r := strings.IndexByte(rankGlyphs, code[0])
	s := strings.IndexByte(suitGlyphs, code[1])
	if r < 0 || s < 0 {
		return Card{}, fmt.Errorf("%w: unknown code %q", ErrInvalidCard, code)
	}
	return Card{rank: Rank(r + 1), suit: Suit(s)}, nil
}

// ParseCards splits a request such as "3C5H0D" into cards.
func ParseCards(request string) ([]Card, error) {
	if len(request)%2 != 0 {
		return nil, fmt.Errorf("%w: %q has odd length", ErrMalformedRequest, request)
	}
	cards := make([]Card, 0, len(request)/2)
	for i := 0; i < len(request); i += 2 {
		c, err := ParseCard(request[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
