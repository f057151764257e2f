package pusoy

import (
	"cmp"
	"slices"
	"strings"
)

// Hand is an ordered collection of distinct cards owned by a single player.
// A Hand is not safe for concurrent use: Withdraw mutates it in place.
type Hand struct {
	cards []Card
}

// NewHand returns a hand holding the given cards in order.
func NewHand(cards ...Card) Hand {
	return Hand{cards: slices.Clone(cards)}
}

// ParseHand builds a hand from a concatenation of card codes.
func ParseHand(codes string) (Hand, error) {
	cards, err := ParseCards(codes)
	if err != nil {
		return Hand{}, err
	}
	return Hand{cards: cards}, nil
}

func (h Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in hand order.
func (h Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

// Add appends cards to the hand.
func (h *Hand) Add(cards ...Card) {
	h.cards = append(h.cards, cards...)
}

// Contains reports whether a card with the given code is in the hand.
func (h Hand) Contains(code string) bool {
	return h.indexOf(code) >= 0
}

func (h Hand) indexOf(code string) int {
	return slices.IndexFunc(h.cards, func(c Card) bool { return c.Code() == code })
}

// String lists the card codes separated by ", ".
func (h Hand) String() string {
	codes := make([]string, len(h.cards))
	for i, c := range h.cards {
		codes[i] = c.Code()
	}
	return strings.Join(codes, ", ")
}

// SortByGameValue orders the hand by ascending Pusoy Dos strength.
// Cards of equal rank end up adjacent.
func (h *Hand) SortByGameValue() {
	sortByGameValue(h.cards)
}

// SortByPokerValue orders the hand by ascending poker strength in the given ace mode.
func (h *Hand) SortByPokerValue(aceHigh bool) {
	sortByPokerValue(h.cards, aceHigh)
}

// SortByRank orders the hand by raw rank (Ace=1 ... King=13).
func (h *Hand) SortByRank() {
	slices.SortStableFunc(h.cards, func(a, b Card) int {
		return cmp.Compare(a.rank, b.rank)
	})
}

// SortBySuit orders the hand by suit glyph (C < D < H < S).
func (h *Hand) SortBySuit() {
	slices.SortStableFunc(h.cards, func(a, b Card) int {
		return cmp.Compare(suitGlyphs[a.suit%4], suitGlyphs[b.suit%4])
	})
}

func sortByGameValue(cards []Card) {
	slices.SortStableFunc(cards, func(a, b Card) int {
		return cmp.Compare(a.GameValue(), b.GameValue())
	})
}

func sortByPokerValue(cards []Card, aceHigh bool) {
	slices.SortStableFunc(cards, func(a, b Card) int {
		return cmp.Compare(a.PokerValue(aceHigh), b.PokerValue(aceHigh))
	})
}
