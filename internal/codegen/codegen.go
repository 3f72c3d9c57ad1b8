// Package codegen produces short access codes.
package codegen

import (
	"crypto/rand"
	"math/big"
)

const (
	// Alphabet is the set codes are drawn from.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// Length is the number of characters in a code.
	Length = 4
)

// Generator returns a fresh code.
type Generator func() (string, error)

// Generate returns a Length-character code with each character sampled
// independently and uniformly from Alphabet. It does not check for collisions.
func Generate() (string, error) {
	b := make([]byte, Length)
	limit := big.NewInt(int64(len(Alphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b[i] = Alphabet[n.Int64()]
	}
	return string(b), nil
}
