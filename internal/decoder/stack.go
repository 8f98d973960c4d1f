package decoder

import (
	"container/heap"
	"math"

	"github.com/kb9vcn/convstack/internal/convstack"
	"github.com/kb9vcn/convstack/internal/gencode"
)

// TraceSink receives the pushed-node sequence and the terminal node
// from DecodeTrace, in push order, for downstream persistence or
// visualization. Decode never constructs one; a nil sink means no
// observability overhead.
type TraceSink interface {
	RecordPush(runID string, n Node, seq int) error
	RecordTerminal(runID string, n Node) error
}

// nodeHeap is a max-heap on Node.Mu, the priority queue the stack
// algorithm pops from. NaN must never reach it: every caller validates
// p before search begins, so Less panics if it ever sees one. That
// would be a programming error, not a bad input.
type nodeHeap []Node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if math.IsNaN(h[i].Mu) || math.IsNaN(h[j].Mu) {
		panic("decoder: NaN Fano metric in priority queue")
	}
	return h[i].Mu > h[j].Mu // max-heap
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(Node))
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Decode runs the stack algorithm to completion and returns the
// decoded input bits (the m trellis-termination zeros stripped). len(r)
// must be a multiple of g.N and at least g.N*g.M.
func Decode(r []int, g gencode.Gens, p float64) ([]int, error) {
	terminal, _, err := run(r, g, p, false, nil, "")
	if err != nil {
		return nil, err
	}
	l := len(r)/g.N - g.M
	return terminal.Path[:l], nil
}

// DecodeTrace runs the stack algorithm and additionally returns every
// pushed node in the order it was created (not the order it was
// popped), and records them in sink if non-nil. runID identifies this
// run to the sink; callers that don't persist traces may pass "".
func DecodeTrace(r []int, g gencode.Gens, p float64, sink TraceSink, runID string) (Node, []Node, error) {
	return run(r, g, p, true, sink, runID)
}

func run(r []int, g gencode.Gens, p float64, collectTrace bool, sink TraceSink, runID string) (Node, []Node, error) {
	if err := gencode.ValidateBits(r); err != nil {
		return Node{}, nil, err
	}
	if g.N <= 0 || len(r)%g.N != 0 {
		return Node{}, nil, convstack.InvalidInputError("received sequence length %d is not a multiple of n=%d", len(r), g.N)
	}
	if len(r) < g.N*g.M {
		return Node{}, nil, convstack.InvalidInputError("received sequence too short: %d bits, need at least %d", len(r), g.N*g.M)
	}
	if err := gencode.ValidateProbability(p, gencode.ProbabilityRangeDecode); err != nil {
		return Node{}, nil, err
	}

	l := len(r)/g.N - g.M
	target := l + g.M

	var pushed []Node
	push := func(n Node, seq int) {
		if collectTrace {
			pushed = append(pushed, n)
		}
		if sink != nil {
			_ = sink.RecordPush(runID, n, seq)
		}
	}

	q := &nodeHeap{}
	heap.Init(q)
	heap.Push(q, rootNode())
	seq := 0

	for {
		if q.Len() == 0 {
			panic("decoder: stack exhausted before reaching a terminal node")
		}
		node := heap.Pop(q).(Node)

		depth := len(node.Path)
		if depth == target {
			if sink != nil {
				_ = sink.RecordTerminal(runID, node)
			}
			return node, pushed, nil
		}

		if depth < l {
			c0 := branch(node, 0, g, r, p)
			c1 := branch(node, 1, g, r, p)
			seq++
			push(c0, seq)
			seq++
			push(c1, seq)
			heap.Push(q, c0)
			heap.Push(q, c1)
		} else {
			c0 := branch(node, 0, g, r, p)
			seq++
			push(c0, seq)
			heap.Push(q, c0)
		}
	}
}
