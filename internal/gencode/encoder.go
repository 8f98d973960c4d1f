package gencode

import "github.com/kb9vcn/convstack/internal/bitreg"

// Encode appends G.M zero bits to x for trellis termination, then
// emits n bits per index over the full padded sequence. The result has
// length G.N * (len(x) + G.M).
func Encode(x []int, g Gens) []int {
	padded := make([]int, len(x)+g.M)
	copy(padded, x)

	out := make([]int, 0, g.N*len(padded))
	for i := range padded {
		out = append(out, EncodeStep(padded, g, i)...)
	}
	return out
}

// EncodeStep returns the n-bit block emitted at index i given a prefix
// x of at least i+1 bits. The j-th output bit is the GF(2) inner
// product of generator j against the m+1 most recent input bits ending
// at i (sampled through bitreg.Sample, which supplies 0 for indices
// before the start of x).
func EncodeStep(x []int, g Gens, i int) []int {
	block := make([]int, g.N)
	for j, gen := range g.GS {
		acc := 0
		for k, coeff := range gen {
			if coeff == 1 && bitreg.Sample(x, i, k) == 1 {
				acc ^= 1
			}
		}
		block[j] = acc
	}
	return block
}
