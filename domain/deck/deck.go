package deck

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/pusoy-dos/domain/pusoy"
)

// Size of the card universe and of a dealt hand.
const (
	Size     = 52
	HandSize = 13
	MaxHands = Size / HandSize
)

var ErrNotEnoughCards = errors.New("not enough cards in deck")

// Deck holds the undealt cards of one game.
// It is owned by the dealer; dealt cards leave the deck for good.
type Deck struct {
	cards []pusoy.Card
}

// New returns the 52 cards ordered by game value, 3C first.
func New() *Deck {
	cards := make([]pusoy.Card, 0, Size)
	for v := 1; v <= Size; v++ {
		c, err := pusoy.FromGameValue(v)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return &Deck{cards: cards}
}

// Len returns the number of cards still in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, top first.
func (d *Deck) Cards() []pusoy.Card {
	return append([]pusoy.Card(nil), d.cards...)
}

// Deal takes the top 13 cards into a new hand.
func (d *Deck) Deal() (pusoy.Hand, error) {
	if len(d.cards) < HandSize {
		return pusoy.Hand{}, fmt.Errorf("%w: %d left, need %d", ErrNotEnoughCards, len(d.cards), HandSize)
	}
	h := pusoy.NewHand(d.cards[:HandSize]...)
	d.cards = d.cards[HandSize:]
	return h, nil
}

// DealAll deals n hands one after the other.
func (d *Deck) DealAll(n int) ([]pusoy.Hand, error) {
	if n < 1 || n > MaxHands {
		return nil, fmt.Errorf("cannot deal %d hands, want 1 to %d", n, MaxHands)
	}
	hands := make([]pusoy.Hand, 0, n)
	for i := 0; i < n; i++ {
		h, err := d.Deal()
		if err != nil {
			return nil, err
		}
		hands = append(hands, h)
	}
	return hands, nil
}
