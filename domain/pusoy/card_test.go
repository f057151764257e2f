package pusoy

import (
	"errors"
	"testing"
)

func TestGameValueBijection(t *testing.T) {
	for v := 1; v <= MaxGameValue; v++ {
		c, err := FromGameValue(v)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.GameValue(); got != v {
			t.Fatalf("GameValue(FromGameValue(%d)) = %d (%s)", v, got, c)
		}
	}
	for r := Ace; r <= King; r++ {
		for s := Clubs; s <= Diamonds; s++ {
			c := MustCard(r, s)
			back, err := FromGameValue(c.GameValue())
			if err != nil {
				t.Fatal(err)
			}
			if back != c {
				t.Fatalf("expected %v, get %v", c, back)
			}
		}
	}
}

func TestFromGameValueOutOfRange(t *testing.T) {
	for _, v := range []int{-1, 0, 53, 100} {
		if _, err := FromGameValue(v); !errors.Is(err, ErrInvalidCard) {
			t.Fatalf("FromGameValue(%d) error = %v, want ErrInvalidCard", v, err)
		}
	}
}

func TestGameValueOrder(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"3C", 1},
		{"3S", 2},
		{"3H", 3},
		{"3D", 4},
		{"8C", 21},
		{"0D", 32},
		{"AC", 45},
		{"AD", 48},
		{"2C", 49},
		{"2D", 52},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, err := ParseCard(tt.code)
			if err != nil {
				t.Fatal(err)
			}
			if got := c.GameValue(); got != tt.want {
				t.Fatalf("GameValue() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPokerValue(t *testing.T) {
	tests := []struct {
		code    string
		aceHigh bool
		want    int
	}{
		{"AC", false, 1},
		{"AD", false, 4},
		{"AC", true, 53},
		{"AD", true, 56},
		{"2C", false, 5},
		{"2C", true, 5},
		{"5S", false, 18},
		{"KD", true, 52},
	}
	for _, tt := range tests {
		c, err := ParseCard(tt.code)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.PokerValue(tt.aceHigh); got != tt.want {
			t.Errorf("%s.PokerValue(%v) = %d, want %d", tt.code, tt.aceHigh, got, tt.want)
		}
	}
}

func TestInvalidCard(t *testing.T) {
	var c Card
	if c.Valid() {
		t.Fatal("zero card should be invalid")
	}
	if c.GameValue() != 0 || c.PokerValue(true) != 0 || c.PokerValue(false) != 0 {
		t.Fatal("invalid card must have zero values")
	}
	if c.Code() != InvalidCode {
		t.Fatalf("expected %s, got %s", InvalidCode, c.Code())
	}
	if _, err := NewCard(0, Clubs); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("rank 0 accepted: %v", err)
	}
	if _, err := NewCard(14, Clubs); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("rank 14 accepted: %v", err)
	}
	if _, err := NewCard(Ace, 4); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("suit 4 accepted: %v", err)
	}
}

func TestParseCardRoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for v := 1; v <= MaxGameValue; v++ {
		c, _ := FromGameValue(v)
		code := c.Code()
		if len(code) != 2 || seen[code] {
			t.Fatalf("bad or duplicate code %q", code)
		}
		seen[code] = true
		back, err := ParseCard(code)
		if err != nil {
			t.Fatal(err)
		}
		if back != c {
			t.Fatalf("ParseCard(%q) = %v, want %v", code, back, c)
		}
	}
}

func TestParseCardRejects(t *testing.T) {
	for _, code := range []string{"", "3", "3X", "1C", "TC", "3c", "3CS", "XX"} {
		if _, err := ParseCard(code); !errors.Is(err, ErrInvalidCard) {
			t.Errorf("ParseCard(%q) error = %v, want ErrInvalidCard", code, err)
		}
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("3C5H0D")
	if err != nil {
		t.Fatal(err)
	}
	want := []Card{MustCard(3, Clubs), MustCard(5, Hearts), MustCard(Ten, Diamonds)}
	if len(cards) != len(want) {
		t.Fatalf("got %d cards, want %d", len(cards), len(want))
	}
	for i := range want {
		if cards[i] != want[i] {
			t.Fatalf("card %d = %v, want %v", i, cards[i], want[i])
		}
	}
	if _, err := ParseCards("3C5"); !errors.Is(err, ErrMalformedRequest) {
		t.Fatalf("odd request error = %v", err)
	}
}

func TestAceHigh(t *testing.T) {
	if !AceHigh(mustCards(t, "0DJDQDKDAD")) {
		t.Fatal("no 2 in hand: aces should be high")
	}
	if AceHigh(mustCards(t, "AC2C3C4C5C")) {
		t.Fatal("2 in hand: aces should be low")
	}
}

func mustCards(t *testing.T, codes string) []Card {
	t.Helper()
	cards, err := ParseCards(codes)
	if err != nil {
		t.Fatal(err)
	}
	return cards
}

func mustHand(t *testing.T, codes string) Hand {
	t.Helper()
	return NewHand(mustCards(t, codes)...)
}
