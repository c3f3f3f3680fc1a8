package alphabeta

import "fmt"

// Searcher runs alpha-beta over immutable trees. The tree is never mutated,
// so one tree can be shared by many searchers, but a single Searcher keeps
// per-search stats and must not be used from multiple goroutines at once.
type Searcher struct {
	listener *TraceListener
	stats    SearchStats
}

func NewSearcher() *Searcher {
	return &Searcher{listener: &TraceListener{}}
}

// Get the attached trace listener, to set callbacks on it directly
func (s *Searcher) TraceListener() *TraceListener {
	return s.listener
}

func (s *Searcher) SetListener(listener TraceListener) {
	*s.listener = listener
}

func (s *Searcher) ResetListener() {
	s.listener.OnEnter(nil).OnBound(nil).OnCutoff(nil).OnReturn(nil)
}

// Stats of the last search
func (s *Searcher) Stats() SearchStats {
	return s.stats
}

// SearchRoot evaluates the tree with an unbounded starting window,
// use this to make the root call
func (s *Searcher) SearchRoot(node Node, isMax bool) (int, error) {
	return s.Search(node, MinValue, MaxValue, isMax)
}

// Search computes the minimax value of the subtree at node with alpha-beta
// pruning. There is no depth parameter: the generated trees carry leaves at
// the last level, so recursion stops when the node's variant is *Leaf.
// The result is exactly what an exhaustive evaluation would return, pruning
// only skips subtrees that provably cannot affect it.
func (s *Searcher) Search(node Node, alpha, beta int, isMax bool) (int, error) {
	s.stats = SearchStats{}
	return s.search(node, alpha, beta, isMax, 0)
}

func (s *Searcher) search(node Node, alpha, beta int, isMax bool, depth int) (int, error) {
	switch n := node.(type) {
	case *Leaf:
		// Terminal node, take the evaluation
		s.stats.Nodes++
		s.stats.Leaves++
		s.emit(TraceEvent{Kind: TraceEnter, Name: n.name, Depth: depth, Alpha: alpha, Beta: beta, IsMax: isMax, Leaf: true})
		s.emit(TraceEvent{Kind: TraceReturn, Name: n.name, Depth: depth, Alpha: alpha, Beta: beta, IsMax: isMax, Leaf: true, Value: n.value})
		return n.value, nil

	case *Internal:
		if len(n.children) == 0 {
			return 0, fmt.Errorf("%w: internal node %q has no children", ErrMalformedTree, n.name)
		}

		s.stats.Nodes++
		s.emit(TraceEvent{Kind: TraceEnter, Name: n.name, Depth: depth, Alpha: alpha, Beta: beta, IsMax: isMax})

		var v int
		if isMax {
			// Maximizing node, look for a value which raises alpha
			v = MinValue
			for _, child := range n.children {
				cv, err := s.search(child, alpha, beta, false, depth+1)
				if err != nil {
					return 0, err
				}
				v = max(v, cv)

				// Strictly greater, the first child reaching an extremal
				// value is the one that sets the bound
				if v > alpha {
					s.emit(TraceEvent{Kind: TraceAlphaRaise, Name: n.name, Depth: depth, Alpha: alpha, Beta: beta, IsMax: true, Old: alpha, New: v})
					alpha = v
				}

				if beta <= alpha {
					// Beta cut-off: this line is already too good, the
					// minimizing opponent will never enter it
					s.stats.BetaCutoffs++
					s.emit(TraceEvent{Kind: TraceBetaCutoff, Name: n.name, Depth: depth, Alpha: alpha, Beta: beta, IsMax: true})
					break
				}
			}
		} else {
			// Minimizing node, look for a value which lowers beta
			v = MaxValue
			for _, child := range n.children {
				cv, err := s.search(child, alpha, beta, true, depth+1)
				if err != nil {
					return 0, err
				}
				v = min(v, cv)

				if v < beta {
					s.emit(TraceEvent{Kind: TraceBetaLower, Name: n.name, Depth: depth, Alpha: alpha, Beta: beta, IsMax: false, Old: beta, New: v})
					beta = v
				}

				if beta <= alpha {
					// Alpha cut-off, symmetric to the maximizing case
					s.stats.AlphaCutoffs++
					s.emit(TraceEvent{Kind: TraceAlphaCutoff, Name: n.name, Depth: depth, Alpha: alpha, Beta: beta, IsMax: false})
					break
				}
			}
		}

		s.emit(TraceEvent{Kind: TraceReturn, Name: n.name, Depth: depth, Alpha: alpha, Beta: beta, IsMax: isMax, Value: v})
		return v, nil
	}

	return 0, fmt.Errorf("%w: unknown node variant %T", ErrMalformedTree, node)
}

func (s *Searcher) emit(ev TraceEvent) {
	s.listener.invoke(ev)
}
