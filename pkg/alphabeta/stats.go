package alphabeta

// Counters of the last search, reset on every top-level Search call.
// Leaves < Branching^Depth after a search means pruning skipped subtrees.
type SearchStats struct {
	// Nodes entered, leaves included
	Nodes int

	// Leaf evaluations actually consumed
	Leaves int

	// Cut-offs at minimizing nodes
	AlphaCutoffs int

	// Cut-offs at maximizing nodes
	BetaCutoffs int
}

// Total cut-offs of both kinds
func (s SearchStats) Cutoffs() int {
	return s.AlphaCutoffs + s.BetaCutoffs
}
