// Package domain random.go contains the random source used for generation.
package domain

import "math/rand/v2"

// Rand is the only capability generation needs: a uniform integer in [0, n).
// Implementations must panic or misbehave only for n <= 0, which callers in
// this package never pass.
type Rand interface {
	IntN(n int) int
}

// processRand delegates to the math/rand/v2 top-level generator, which is
// seeded at start-up and safe for concurrent use.
type processRand struct{}

func (processRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand returns the process-wide random source.
func DefaultRand() Rand { return processRand{} }

// RandomBody returns six independently and uniformly drawn decimal digits.
func RandomBody(r Rand) Body {
	var b [BodyLen]byte
	for i := range b {
		b[i] = byte('0' + r.IntN(10))
	}
	return Body(b[:])
}
