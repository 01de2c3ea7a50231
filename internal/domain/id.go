package domain

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID returns a random UUID string. If the crypto source is unavailable
// it falls back to an 8-character pseudo-random base-36 string.
func NewID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}
	return pseudoID(8)
}

func pseudoID(n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(idAlphabet[rand.IntN(len(idAlphabet))])
	}
	return b.String()
}
