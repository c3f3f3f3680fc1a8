package alphabeta

import (
	"fmt"
	"math/rand"
	"strings"
)

// LeafValues is a cursor over a finite sequence of leaf evaluations.
// The generator pops exactly one value per leaf, front to back, so the
// i-th leaf in pre-order receives the i-th value of the sequence.
type LeafValues struct {
	values []int
	next   int
}

func NewLeafValues(values ...int) *LeafValues {
	// Copy, so draining the cursor never touches the caller's slice
	owned := make([]int, len(values))
	copy(owned, values)
	return &LeafValues{values: owned}
}

// Pop removes and returns the front value, ok is false once the
// sequence is exhausted
func (lv *LeafValues) Pop() (int, bool) {
	if lv.next >= len(lv.values) {
		return 0, false
	}
	v := lv.values[lv.next]
	lv.next++
	return v, true
}

// Remaining values left in the cursor
func (lv *LeafValues) Remaining() int {
	return len(lv.values) - lv.next
}

// Generator builds synthetic game trees. Each instance owns its random
// source, so independent generations don't share state. Not safe for
// concurrent use with a shared LeafValues cursor.
type Generator struct {
	rand    *rand.Rand
	randMin int
	randMax int
}

func NewGenerator() *Generator {
	return &Generator{
		rand:    rand.New(rand.NewSource(SeedGeneratorFn())),
		randMin: RandMin,
		randMax: RandMax,
	}
}

// Sets the random source, use a fixed seed for reproducible random trees
func (g *Generator) SetRand(r *rand.Rand) *Generator {
	if r != nil {
		g.rand = r
	}
	return g
}

// Sets the inclusive range for randomly generated leaf evaluations
func (g *Generator) SetRandRange(lo, hi int) *Generator {
	if hi < lo {
		lo, hi = hi, lo
	}
	g.randMin, g.randMax = lo, hi
	return g
}

// Gen builds a tree of the given depth and branching factor. With depth 0
// the result is a single leaf. isMax marks whether this node is a maximizing
// ply, it is flipped on every level and decides the case of the child name
// suffixes. When values is nil the leaf evaluations are drawn from the
// generator's random source, otherwise they are popped from the cursor,
// one per leaf, in pre-order.
func (g *Generator) Gen(depth int, isMax bool, brFactor int, name string, values *LeafValues) (Node, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: depth must be non-negative, got %d", ErrInvalidParam, depth)
	}
	if brFactor <= 0 {
		// A positive depth with no children per node would produce internal
		// nodes that never reach a leaf, reject instead
		return nil, fmt.Errorf("%w: branching factor must be positive, got %d", ErrInvalidParam, brFactor)
	}
	return g.gen(depth, isMax, brFactor, name, values)
}

// GenTree is the config-struct flavour of Gen
func (g *Generator) GenTree(params *TreeParams, values *LeafValues) (Node, error) {
	return g.Gen(params.Depth, params.RootMax, params.Branching, params.RootName, values)
}

func (g *Generator) gen(depth int, isMax bool, brFactor int, name string, values *LeafValues) (Node, error) {
	if depth == 0 {
		var val int
		if values == nil {
			val = g.randMin + g.rand.Intn(g.randMax-g.randMin+1)
		} else {
			v, ok := values.Pop()
			if !ok {
				return nil, fmt.Errorf("%w: no value left for leaf %q", ErrExhausted, name)
			}
			val = v
		}
		return NewLeaf(name, val), nil
	}

	node := &Internal{name: name, children: make([]Node, 0, brFactor)}
	for i := 0; i < brFactor; i++ {
		child, err := g.gen(depth-1, !isMax, brFactor, name+"-"+childSuffix(i, isMax), values)
		if err != nil {
			return nil, err
		}
		node.children = append(node.children, child)
	}
	return node, nil
}

// childSuffix labels child i of a node: letters run a, b, c, ... and are
// upper-cased when the labeling node is a minimizing one. Purely diagnostic,
// the search never looks at names.
func childSuffix(i int, isMax bool) string {
	s := string(rune('a' + i))
	if !isMax {
		s = strings.ToUpper(s)
	}
	return s
}
