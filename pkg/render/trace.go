package render

import (
	"fmt"
	"io"

	"github.com/IlikeChooros/go-alphabeta/pkg/alphabeta"
	"github.com/muesli/termenv"
)

// TraceWriter renders search trace events as indented text, in the order
// they happen. Attach it with searcher.SetListener(tw.Listener()).
type TraceWriter struct {
	w      io.Writer
	out    *termenv.Output
	indent string
}

func NewTraceWriter(w io.Writer) *TraceWriter {
	return &TraceWriter{
		w:      w,
		out:    termenv.NewOutput(w),
		indent: defaultIndent,
	}
}

// Listener with all categories wired to this writer
func (tw *TraceWriter) Listener() alphabeta.TraceListener {
	listener := alphabeta.NewTraceListener()
	listener.OnEnter(tw.enter).OnBound(tw.bound).OnCutoff(tw.cutoff).OnReturn(tw.ret)
	return listener
}

func (tw *TraceWriter) enter(ev alphabeta.TraceEvent) {
	// Leaves are reported on return, together with their evaluation
	if ev.Leaf {
		return
	}
	fmt.Fprintf(tw.w, "%snode: %s α: %d β: %d is_max: %v\n",
		pad(tw.indent, ev.Depth), ev.Name, ev.Alpha, ev.Beta, ev.IsMax)
}

func (tw *TraceWriter) bound(ev alphabeta.TraceEvent) {
	sym := "α"
	if ev.Kind == alphabeta.TraceBetaLower {
		sym = "β"
	}
	line := fmt.Sprintf("%s updating %s: %d -> %d", ev.Name, sym, ev.Old, ev.New)
	fmt.Fprintf(tw.w, "%s%s\n", pad(tw.indent, ev.Depth),
		tw.out.String(line).Foreground(termenv.ANSIYellow))
}

func (tw *TraceWriter) cutoff(ev alphabeta.TraceEvent) {
	kind := "BETA"
	if ev.Kind == alphabeta.TraceAlphaCutoff {
		kind = "ALPHA"
	}
	line := fmt.Sprintf("%s cut-off: α: %d β: %d", kind, ev.Alpha, ev.Beta)
	fmt.Fprintf(tw.w, "%s%s\n", pad(tw.indent, ev.Depth),
		tw.out.String(line).Foreground(termenv.ANSIRed).Bold())
}

func (tw *TraceWriter) ret(ev alphabeta.TraceEvent) {
	if ev.Leaf {
		fmt.Fprintf(tw.w, "%s%s eval: %d\n", pad(tw.indent, ev.Depth), ev.Name, ev.Value)
		return
	}
	fmt.Fprintf(tw.w, "%s%s returning value: %d\n", pad(tw.indent, ev.Depth), ev.Name, ev.Value)
}
