package alphabeta

import "fmt"

// Minimax evaluates the subtree exhaustively, visiting every node and never
// pruning. Search must always agree with it, the only difference is the
// amount of work done. Mostly useful as a reference to compare against.
func Minimax(node Node, isMax bool) (int, error) {
	switch n := node.(type) {
	case *Leaf:
		return n.value, nil

	case *Internal:
		if len(n.children) == 0 {
			return 0, fmt.Errorf("%w: internal node %q has no children", ErrMalformedTree, n.name)
		}

		var v int
		if isMax {
			v = MinValue
			for _, child := range n.children {
				cv, err := Minimax(child, false)
				if err != nil {
					return 0, err
				}
				v = max(v, cv)
			}
		} else {
			v = MaxValue
			for _, child := range n.children {
				cv, err := Minimax(child, true)
				if err != nil {
					return 0, err
				}
				v = min(v, cv)
			}
		}
		return v, nil
	}

	return 0, fmt.Errorf("%w: unknown node variant %T", ErrMalformedTree, node)
}
