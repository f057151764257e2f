package main

import (
	"errors"
	"slices"
	"testing"

	"github.com/luca-patrignani/pusoy-dos/domain/pusoy"
)

func newHand(t *testing.T, codes string) *pusoy.Hand {
	t.Helper()
	h, err := pusoy.ParseHand(codes)
	if err != nil {
		t.Fatal(err)
	}
	return &h
}

func TestNormalizeRequest(t *testing.T) {
	tests := map[string]string{
		"3C3S":       "3C3S",
		"3c 3s":      "3C3S",
		"3C, 3S, 3H": "3C3S3H",
		"0d-jd":      "0DJD",
	}
	for in, want := range tests {
		if got := normalizeRequest(in); got != want {
			t.Errorf("normalizeRequest(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPlay(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		label    string
		score    int
		left     int
		hasPoker bool
	}{
		{name: "single", input: "2d", label: "Single dealt: 2D", score: 52, left: 12},
		{name: "pair", input: "3C 3S", label: "Pair dealt: 3C3S", score: 102, left: 11},
		{name: "full house", input: "3C3S3H4D4C", label: "Full House dealt: 3C3S3H4D4C", score: 603, left: 8, hasPoker: true},
		{name: "flush", input: "9S0SJSQS5S", label: "Flush dealt: 9S0SJSQS5S", score: 538, left: 8, hasPoker: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHand(t, "3C3S3H4D4C9S0SJSQS5S2D6H7H")
			o, err := play(h, tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if o.Label() != tt.label {
				t.Fatalf("Label() = %q, want %q", o.Label(), tt.label)
			}
			if o.Result.Score != tt.score {
				t.Fatalf("score = %d, want %d", o.Result.Score, tt.score)
			}
			if h.Len() != tt.left {
				t.Fatalf("%d cards left, want %d", h.Len(), tt.left)
			}
			if (o.Poker != "") != tt.hasPoker {
				t.Fatalf("poker description %q", o.Poker)
			}
		})
	}
}

func TestPlayRestoresHand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{name: "not a hand", input: "3C4D", err: errNotAHand},
		{name: "missing card", input: "3C3X", err: pusoy.ErrCardNotFound},
		{name: "odd length", input: "3C3", err: pusoy.ErrMalformedRequest},
		{name: "empty", input: "  ", err: pusoy.ErrMalformedRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHand(t, "3C3S3H4D4C")
			before := h.Cards()
			_, err := play(h, tt.input)
			if !errors.Is(err, tt.err) {
				t.Fatalf("play(%q) error = %v, want %v", tt.input, err, tt.err)
			}
			after := h.Cards()
			less := func(a, b pusoy.Card) int { return a.GameValue() - b.GameValue() }
			slices.SortFunc(before, less)
			slices.SortFunc(after, less)
			if !slices.Equal(before, after) {
				t.Fatalf("hand changed: %v -> %v", before, after)
			}
		})
	}
}
