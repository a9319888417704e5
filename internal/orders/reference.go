package orders

import (
	"crypto/rand"
)

const (
	referencePrefix   = "BN-"
	referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	referenceLength   = 9
)

// NewReference returns a human-readable order reference: the BN- prefix plus
// nine random base-36 uppercase characters. The reference is informational
// only, not a key; collisions are accepted.
func NewReference() string {
	buf := make([]byte, referenceLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	out := make([]byte, referenceLength)
	for i, b := range buf {
		out[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}
	return referencePrefix + string(out)
}
