// Package channel simulates a binary symmetric channel: each bit of a
// transmitted sequence is independently flipped with probability p.
package channel

import (
	"math/rand/v2"

	"github.com/kb9vcn/convstack/internal/gencode"
)

// CreateNoise returns a copy of y with each bit independently flipped
// with probability p. p must lie in (0, 1); threshold is scaled to a
// uniform 32-bit draw, exact rational arithmetic is not required.
func CreateNoise(y []int, p float64) ([]int, error) {
	if err := gencode.ValidateBits(y); err != nil {
		return nil, err
	}
	if err := gencode.ValidateProbability(p, gencode.ProbabilityRangeChannel); err != nil {
		return nil, err
	}

	threshold := uint32(p * (1 << 32))
	out := make([]int, len(y))
	for i, b := range y {
		u := rand.Uint32()
		if u < threshold {
			out[i] = 1 - b
		} else {
			out[i] = b
		}
	}
	return out, nil
}
