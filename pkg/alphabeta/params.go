package alphabeta

import (
	"encoding/json"
	"strings"
)

// TreeParams bundles the shape of a generated tree, see Generator.GenTree
type TreeParams struct {
	Depth     int
	Branching int
	RootName  string
	RootMax   bool
}

func (p TreeParams) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(p)
	return builder.String()
}

func DefaultTreeParams() *TreeParams {
	return &TreeParams{
		Depth:     3,
		Branching: 3,
		RootName:  "A",
		RootMax:   true,
	}
}

// Set the depth of the tree, leaves sit at exactly this depth
func (p *TreeParams) SetDepth(depth int) *TreeParams {
	p.Depth = depth
	return p
}

// Set the number of children of every internal node
func (p *TreeParams) SetBranching(branching int) *TreeParams {
	p.Branching = branching
	return p
}

// Set the base name of the root, child names are derived from it
func (p *TreeParams) SetRootName(name string) *TreeParams {
	p.RootName = name
	return p
}

// Set whether the root is a maximizing ply
func (p *TreeParams) SetRootMax(rootMax bool) *TreeParams {
	p.RootMax = rootMax
	return p
}

// Number of leaves a tree with these params will have (Branching^Depth)
func (p *TreeParams) Leaves() int {
	leaves := 1
	for i := 0; i < p.Depth; i++ {
		leaves *= p.Branching
	}
	return leaves
}
