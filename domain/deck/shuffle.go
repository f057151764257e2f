package deck

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// DefaultStream returns the suite's cryptographic random stream.
func DefaultStream() cipher.Stream {
	return suite.RandomStream()
}

// Shuffle permutes the remaining cards uniformly at random (Fisher-Yates),
// drawing every index from stream.
func (d *Deck) Shuffle(stream cipher.Stream) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), stream).Int64())
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}
