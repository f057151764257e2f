package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luca-patrignani/pusoy-dos/domain/pusoy"
)

var errNotAHand = errors.New("not a recognized hand")

// outcome is what happened to one request against the player's hand.
type outcome struct {
	Request string
	Played  pusoy.Hand
	Result  pusoy.Result
	Poker   string // standard poker description, five-card plays only
}

func (o outcome) Label() string {
	return fmt.Sprintf("%s dealt: %s", o.Result.Category, o.Request)
}

// normalizeRequest upper-cases the input and drops separators so that
// "3c 3s" and "3C,3S" both read as "3C3S".
func normalizeRequest(input string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(input) {
		switch r {
		case ' ', ',', '\t', '-':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// play withdraws the requested cards from hand and classifies them.
// Cards that do not form a recognized hand go back to the player.
func play(hand *pusoy.Hand, input string) (outcome, error) {
	request := normalizeRequest(input)
	if request == "" {
		return outcome{}, fmt.Errorf("%w: empty request", pusoy.ErrMalformedRequest)
	}
	played, err := hand.Withdraw(request)
	if err != nil {
		return outcome{}, err
	}
	out := outcome{Request: request, Played: played, Result: pusoy.Evaluate(played)}
	if out.Result.Category == pusoy.None {
		hand.Add(played.Cards()...)
		return out, errNotAHand
	}
	if played.Len() == 5 {
		desc, err := pusoy.DescribePoker(played)
		if err != nil {
			return out, err
		}
		out.Poker = desc
	}
	return out, nil
}
