package alphabeta

// Node of a generated game tree, either an *Internal or a *Leaf.
// The variant alone decides the control path in the searcher and the printers,
// there are no other implementations.
type Node interface {
	// Diagnostic label of the node, encodes the path from the root
	Name() string
}

// Non-leaf node, carries only a name and an ordered list of children,
// the children are owned exclusively by this node
type Internal struct {
	name     string
	children []Node
}

func NewInternal(name string, children ...Node) *Internal {
	return &Internal{name: name, children: children}
}

func (node *Internal) Name() string {
	return node.name
}

// Children in generation order, the searcher visits them left to right
func (node *Internal) Children() []Node {
	return node.children
}

// Leaf node, unlike *Internal it has an evaluation value
type Leaf struct {
	name  string
	value int
}

func NewLeaf(name string, value int) *Leaf {
	return &Leaf{name: name, value: value}
}

func (node *Leaf) Name() string {
	return node.name
}

// The preset (or randomly generated) evaluation of this leaf
func (node *Leaf) Value() int {
	return node.value
}

// Helper function to count the leaves of a subtree
func CountLeaves(node Node) int {
	switch n := node.(type) {
	case *Leaf:
		return 1
	case *Internal:
		leaves := 0
		for _, child := range n.children {
			leaves += CountLeaves(child)
		}
		return leaves
	}
	return 0
}
