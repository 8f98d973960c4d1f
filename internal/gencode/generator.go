// Package gencode implements the rate-1/n convolutional encoder: the
// generator matrix, whole-sequence encoding, and the single-step
// encoding the stack decoder needs to extend a partial path.
package gencode

import "github.com/kb9vcn/convstack/internal/convstack"

// ProbabilityRange bounds a crossover probability accepted by a given
// operation. Noise generation accepts the open (0,1) interval;
// decoding restricts to (0, 0.5], the sensible operating range for a
// binary symmetric channel.
type ProbabilityRange struct {
	name   string
	lo, hi float64
	loOpen bool
	hiOpen bool
}

// ProbabilityRangeChannel is the range accepted by CreateNoise: (0, 1).
var ProbabilityRangeChannel = ProbabilityRange{name: "channel", lo: 0, hi: 1, loOpen: true, hiOpen: true}

// ProbabilityRangeDecode is the range accepted by Decode/DecodeTrace: (0, 0.5].
var ProbabilityRangeDecode = ProbabilityRange{name: "decode", lo: 0, hi: 0.5, loOpen: true, hiOpen: false}

// Contains reports whether p satisfies the range.
func (r ProbabilityRange) Contains(p float64) bool {
	if r.loOpen && p <= r.lo {
		return false
	}
	if !r.loOpen && p < r.lo {
		return false
	}
	if r.hiOpen && p >= r.hi {
		return false
	}
	if !r.hiOpen && p > r.hi {
		return false
	}
	return true
}

// ValidateProbability rejects p unless it lies within rng.
func ValidateProbability(p float64, rng ProbabilityRange) error {
	if !rng.Contains(p) {
		return convstack.InvalidInputError("probability %v out of range for %s", p, rng.name)
	}
	return nil
}

// Gens is the generator set G: n binary vectors of identical length
// m+1. n is the encoder's output fan-out per input bit; m is the
// memory order.
type Gens struct {
	GS [][]int
	M  int
	N  int
}

// NewGens validates and constructs a Gens from raw rows, right-padding
// any row shorter than the longest one with zeros before storing it.
// Rejects: no rows, all rows empty after trimming, any non-binary
// coefficient.
func NewGens(rows [][]int) (Gens, error) {
	if len(rows) == 0 {
		return Gens{}, convstack.InvalidInputError("generator set must have at least one generator")
	}

	maxLen := 0
	for _, row := range rows {
		if len(row) > maxLen {
			maxLen = len(row)
		}
	}
	if maxLen == 0 {
		return Gens{}, convstack.InvalidInputError("all generators are empty")
	}

	gs := make([][]int, len(rows))
	for i, row := range rows {
		padded := make([]int, maxLen)
		for j, b := range row {
			if b != 0 && b != 1 {
				return Gens{}, convstack.InvalidInputError("generator %d has non-binary coefficient at position %d: %d", i, j, b)
			}
			padded[j] = b
		}
		gs[i] = padded
	}

	return Gens{GS: gs, M: maxLen - 1, N: len(gs)}, nil
}

// ValidateBits rejects any value in bits outside {0,1}, or an empty slice.
func ValidateBits(bits []int) error {
	if len(bits) == 0 {
		return convstack.InvalidInputError("bit sequence must not be empty")
	}
	for i, b := range bits {
		if b != 0 && b != 1 {
			return convstack.InvalidInputError("non-binary symbol at position %d: %d", i, b)
		}
	}
	return nil
}
