package pusoy

import "slices"

// Score bases of the five-card categories and of the same-rank groups.
const (
	groupBase         = 100
	straightBase      = 400
	flushBase         = 500
	fullHouseBase     = 600
	fourOfAKindBase   = 700
	straightFlushBase = 800
)

// Every detector returns 0 when the hand does not match, including when the
// hand has the wrong size or holds an invalid card. None of them reorder h.

// Single scores a one-card hand as the card's game value.
func Single(h Hand) int {
	if len(h.cards) != 1 {
		return 0
	}
	return h.cards[0].GameValue()
}

// Group scores a pair, triple or bare four-card group (k = 2, 3, 4) as
// 100*(k-1) plus the highest game value in the group.
func Group(h Hand) int {
	k := len(h.cards)
	if k < 2 || k > 4 || !allValid(h.cards) {
		return 0
	}
	r := h.cards[0].rank
	for _, c := range h.cards[1:] {
		if c.rank != r {
			return 0
		}
	}
	return groupBase*(k-1) + maxGameValue(h.cards)
}

// Flush scores five cards of one suit as 500 plus the highest game value.
func Flush(h Hand) int {
	if len(h.cards) != 5 || !allValid(h.cards) {
		return 0
	}
	s := h.cards[0].suit
	for _, c := range h.cards[1:] {
		if c.suit != s {
			return 0
		}
	}
	return flushBase + maxGameValue(h.cards)
}

// Straight scores five cards of consecutive poker ranks as 400 plus the
// highest poker value. Aces are low when the hand holds a 2 and high
// otherwise, so the only run crossing the ace is A-2-3-4-5 and 10-J-Q-K-A
// is the top straight.
func Straight(h Hand) int {
	if len(h.cards) != 5 || !allValid(h.cards) {
		return 0
	}
	aceHigh := AceHigh(h.cards)
	cards := slices.Clone(h.cards)
	sortByPokerValue(cards, aceHigh)
	for i := 1; i < len(cards); i++ {
		if pokerRank(cards[i].PokerValue(aceHigh)) != pokerRank(cards[i-1].PokerValue(aceHigh))+1 {
			return 0
		}
	}
	return straightBase + cards[len(cards)-1].PokerValue(aceHigh)
}

// StraightFlush scores a hand that is both a straight and a flush by adding
// the two category scores and replacing their bases with 800.
func StraightFlush(h Hand) int {
	straight := Straight(h)
	if straight == 0 {
		return 0
	}
	flush := Flush(h)
	if flush == 0 {
		return 0
	}
	return straightFlushBase + (straight - straightBase) + (flush - flushBase)
}

// FullHouse scores a triple plus a pair as 600 plus the highest game value
// in the triple.
func FullHouse(h Hand) int {
	major, ok := splitRanks(h, 3)
	if !ok {
		return 0
	}
	return fullHouseBase + major
}

// FourOfAKind scores four cards of one rank plus a kicker as 700 plus the
// highest game value among the four.
func FourOfAKind(h Hand) int {
	major, ok := splitRanks(h, 4)
	if !ok {
		return 0
	}
	return fourOfAKindBase + major
}

// Classify returns the score of the strongest category the hand satisfies,
// or 0 when it is not a playable hand. Five-card hands are tried from
// straight flush down to straight and the first match wins.
func Classify(h Hand) int {
	switch len(h.cards) {
	case 1:
		return Single(h)
	case 2, 3, 4:
		return Group(h)
	case 5:
		for _, detect := range []func(Hand) int{StraightFlush, FourOfAKind, FullHouse, Flush, Straight} {
			if score := detect(h); score != 0 {
				return score
			}
		}
	}
	return 0
}

// splitRanks checks that a five-card hand has exactly two distinct ranks,
// one of them appearing major times, and returns the highest game value
// among the cards of that rank.
func splitRanks(h Hand, major int) (int, bool) {
	if len(h.cards) != 5 || !allValid(h.cards) {
		return 0, false
	}
	counts := make(map[Rank]int, 2)
	for _, c := range h.cards {
		counts[c.rank]++
	}
	if len(counts) != 2 {
		return 0, false
	}
	for r, n := range counts {
		if n != major {
			continue
		}
		best := 0
		for _, c := range h.cards {
			if c.rank == r {
				best = max(best, c.GameValue())
			}
		}
		return best, true
	}
	return 0, false
}

func allValid(cards []Card) bool {
	for _, c := range cards {
		if !c.Valid() {
			return false
		}
	}
	return true
}

func maxGameValue(cards []Card) int {
	best := 0
	for _, c := range cards {
		best = max(best, c.GameValue())
	}
	return best
}
