// Package decoder implements the stack-algorithm sequential decoder: a
// best-first search over the binary code tree, ordered by the Fano
// metric, with the received codeword supplied up front.
package decoder

import (
	"math"

	"github.com/kb9vcn/convstack/internal/gencode"
)

// Node is a partial decoding hypothesis: the input bits guessed so
// far, the n-bit block the encoder emitted at the last index (empty at
// the root), and the cumulative Fano metric against the received
// sequence.
type Node struct {
	Path []int
	Code []int
	Mu   float64
}

// rootNode returns the initial search state: empty path, empty code,
// mu = 0.
func rootNode() Node {
	return Node{Path: nil, Code: nil, Mu: 0}
}

// branch extends a parent node by appending bit x, computing the
// emitted block via one EncodeStep and updating mu by the per-step
// Fano increment against r. It does not mutate parent: callers get a
// fresh Node with its own cloned path, since a parent is consumed (and
// may spawn two children) when popped from the queue.
func branch(parent Node, x int, g gencode.Gens, r []int, p float64) Node {
	path := make([]int, len(parent.Path)+1)
	copy(path, parent.Path)
	path[len(path)-1] = x

	k := len(path)
	block := gencode.EncodeStep(path, g, k-1)

	start := (k - 1) * g.N
	received := r[start : start+g.N]

	mu := parent.Mu + fanoIncrement(block, received, p, g.N)

	return Node{Path: path, Code: block, Mu: mu}
}

// fanoIncrement computes the Fano metric contribution of one received
// block B against the transmitted block we hypothesize, per spec: for
// each output bit, log2((1-p)/0.5) - 1/n if it matches the received
// bit, log2(p/0.5) - 1/n otherwise. p must be in (0,1); callers
// validate this before any search begins, so NaN can never arise here.
func fanoIncrement(block, received []int, p float64, n int) float64 {
	rhat := 1.0 / float64(n)
	matchTerm := math.Log2((1-p)/0.5) - rhat
	mismatchTerm := math.Log2(p/0.5) - rhat

	var sum float64
	for i := range block {
		if block[i] == received[i] {
			sum += matchTerm
		} else {
			sum += mismatchTerm
		}
	}
	return sum
}
