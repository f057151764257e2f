package pusoy

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrMalformedRequest = errors.New("malformed request")
	ErrCardNotFound     = errors.New("card not in hand")
)

// Withdraw moves the cards named by request (concatenated two-character
// codes, e.g. "3C5H0D") out of h into a new hand, in request order.
//
// The operation is all or nothing. An odd-length request fails with
// ErrMalformedRequest before touching h. If a code is not in h, the cards
// already moved are put back in reverse order, so h holds the same set of
// cards as before, and the error wraps ErrCardNotFound.
func (h *Hand) Withdraw(request string) (Hand, error) {
	if len(request)%2 != 0 {
		return Hand{}, fmt.Errorf("%w: %q has odd length", ErrMalformedRequest, request)
	}
	var out Hand
	for i := 0; i < len(request); i += 2 {
		code := request[i : i+2]
		idx := h.indexOf(code)
		if idx < 0 {
			h.restore(&out)
			return Hand{}, fmt.Errorf("%w: %s", ErrCardNotFound, code)
		}
		out.cards = append(out.cards, h.cards[idx])
		h.cards = slices.Delete(h.cards, idx, idx+1)
	}
	return out, nil
}

// restore pops every card of taken back onto h, last taken first.
func (h *Hand) restore(taken *Hand) {
	for len(taken.cards) > 0 {
		last := len(taken.cards) - 1
		h.cards = append(h.cards, taken.cards[last])
		taken.cards = taken.cards[:last]
	}
}
