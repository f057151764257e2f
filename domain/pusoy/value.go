package pusoy

import "fmt"

// Highest values of the two encodings.
const (
	MaxGameValue  = 52
	MaxPokerValue = 56
)

// GameValue returns the Pusoy Dos strength of the card in [1,52]:
// rank-major (3 lowest, 2 highest), suit-minor. 3C is 1 and 2D is 52.
// The invalid card has value 0.
func (c Card) GameValue() int {
	if !c.Valid() {
		return 0
	}
	return ((int(c.rank)+10)%13)*4 + int(c.suit) + 1
}

// PokerValue returns the standard poker strength of the card: rank-major with
// A < 2 < 3 < ... < K when aceHigh is false (aces are 1-4), and aces moved
// above the kings (53-56) when aceHigh is true. Values computed with
// different ace modes must not be compared.
func (c Card) PokerValue(aceHigh bool) int {
	if !c.Valid() {
		return 0
	}
	if c.rank == Ace && aceHigh {
		return 53 + int(c.suit)
	}
	return (int(c.rank)-1)*4 + int(c.suit) + 1
}

// FromGameValue is the inverse of GameValue.
func FromGameValue(v int) (Card, error) {
	if v < 1 || v > MaxGameValue {
		return Card{}, fmt.Errorf("%w: game value %d", ErrInvalidCard, v)
	}
	return Card{
		rank: Rank(((v-1)/4+2)%13 + 1),
		suit: Suit((v - 1) % 4),
	}, nil
}

// AceHigh picks the ace mode for a straight evaluation: a 2 can only sit in
// the A-2-3-4-5 run, so any 2 forces aces low.
func AceHigh(cards []Card) bool {
	for _, c := range cards {
		if c.rank == Two {
			return false
		}
	}
	return true
}

// pokerRank is the rank block of a poker value; consecutive ranks differ by one.
func pokerRank(v int) int {
	return (v - 1) / 4
}
