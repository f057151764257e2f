package pusoy

// Category is the kind of play a score belongs to.
type Category int

const (
	None Category = iota
	SingleCard
	Pair
	Triple
	Quad // bare four-card group, not the five-card four of a kind
	StraightHand
	FlushHand
	FullHouseHand
	FourOfAKindHand
	StraightFlushHand
)

var categoryLabels = [...]string{
	None:              "Not a recognized hand",
	SingleCard:        "Single",
	Pair:              "Pair",
	Triple:            "Three-of-a-Kind",
	Quad:              "Four-Card Group",
	StraightHand:      "Straight",
	FlushHand:         "Flush",
	FullHouseHand:     "Full House",
	FourOfAKindHand:   "Four-of-a-Kind",
	StraightFlushHand: "Straight Flush",
}

func (c Category) String() string {
	if c < None || int(c) >= len(categoryLabels) {
		return categoryLabels[None]
	}
	return categoryLabels[c]
}

// CategoryOf maps a score produced by Classify back to its category.
func CategoryOf(score int) Category {
	switch {
	case score >= straightFlushBase:
		return StraightFlushHand
	case score > fourOfAKindBase:
		return FourOfAKindHand
	case score > fullHouseBase:
		return FullHouseHand
	case score > flushBase:
		return FlushHand
	case score > straightBase:
		return StraightHand
	case score > 3*groupBase:
		return Quad
	case score > 2*groupBase:
		return Triple
	case score > groupBase:
		return Pair
	case score > 0:
		return SingleCard
	}
	return None
}

// Result is a classification together with its category.
type Result struct {
	Score    int
	Category Category
}

// Evaluate classifies h and labels the score.
func Evaluate(h Hand) Result {
	score := Classify(h)
	return Result{Score: score, Category: CategoryOf(score)}
}

