// Package render holds the presentation collaborators of the search core:
// a tree printer and a trace renderer. Both write plain text on dumb
// writers and pick up colors automatically on capable terminals.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/IlikeChooros/go-alphabeta/pkg/alphabeta"
	"github.com/muesli/termenv"
)

const defaultIndent = "  "

// TreePrinter writes a generated tree, one node per line, children one
// indentation level deeper than their parent. Printing the same tree twice
// produces identical bytes.
type TreePrinter struct {
	w      io.Writer
	out    *termenv.Output
	indent string
}

func NewTreePrinter(w io.Writer) *TreePrinter {
	return &TreePrinter{
		w:      w,
		out:    termenv.NewOutput(w),
		indent: defaultIndent,
	}
}

func (p *TreePrinter) Print(root alphabeta.Node) {
	p.print(root, "")
}

func (p *TreePrinter) print(node alphabeta.Node, spaces string) {
	switch n := node.(type) {
	case *alphabeta.Leaf:
		value := p.out.String(strconv.Itoa(n.Value())).Foreground(termenv.ANSICyan)
		fmt.Fprintf(p.w, "%s%s eval: %s\n", spaces, n.Name(), value)
	case *alphabeta.Internal:
		fmt.Fprintf(p.w, "%s%s\n", spaces, n.Name())
		for _, child := range n.Children() {
			p.print(child, spaces+p.indent)
		}
	}
}

func pad(indent string, depth int) string {
	return strings.Repeat(indent, depth)
}
