package pusoy

import (
	"fmt"

	"github.com/paulhankin/poker"
)

var pokerSuits = [...]poker.Suit{
	Clubs:    poker.Club,
	Spades:   poker.Spade,
	Hearts:   poker.Heart,
	Diamonds: poker.Diamond,
}

// DescribePoker names a five-card hand the way standard poker would,
// e.g. for showing next to the Pusoy Dos label.
func DescribePoker(h Hand) (string, error) {
	c, err := pokerHand(h)
	if err != nil {
		return "", err
	}
	return poker.Describe(c[:])
}

func pokerHand(h Hand) ([5]poker.Card, error) {
	var out [5]poker.Card
	if len(h.cards) != 5 {
		return out, fmt.Errorf("poker hands have 5 cards, got %d", len(h.cards))
	}
	for i, c := range h.cards {
		pc, err := toPokerCard(c)
		if err != nil {
			return [5]poker.Card{}, fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		out[i] = pc
	}
	return out, nil
}

func toPokerCard(c Card) (poker.Card, error) {
	if !c.Valid() {
		var zero poker.Card
		return zero, fmt.Errorf("%w: %s", ErrInvalidCard, c.Code())
	}
	return poker.MakeCard(pokerSuits[c.suit], poker.Rank(c.rank))
}
