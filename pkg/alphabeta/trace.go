package alphabeta

type TraceKind int

const (
	// Entered a node, Alpha/Beta/IsMax carry the window at entry
	TraceEnter TraceKind = iota

	// A maximizing node raised alpha, Old/New carry the bound change
	TraceAlphaRaise

	// A minimizing node lowered beta, Old/New carry the bound change
	TraceBetaLower

	// Remaining children of a maximizing node were skipped (beta <= alpha)
	TraceBetaCutoff

	// Remaining children of a minimizing node were skipped (beta <= alpha)
	TraceAlphaCutoff

	// Node computed its value, Value carries it
	TraceReturn
)

func (k TraceKind) String() string {
	switch k {
	case TraceEnter:
		return "Enter"
	case TraceAlphaRaise:
		return "AlphaRaise"
	case TraceBetaLower:
		return "BetaLower"
	case TraceBetaCutoff:
		return "BetaCutoff"
	case TraceAlphaCutoff:
		return "AlphaCutoff"
	case TraceReturn:
		return "Return"
	}
	return "Unknown"
}

// One step of the search, emitted in real traversal order: pre-order
// entries, in-order bound updates and cut-offs, post-order returns.
// Observing events has no effect on the search outcome.
type TraceEvent struct {
	Kind  TraceKind
	Name  string
	Depth int  // nesting depth from the search root, for indentation
	Alpha int  // window at the moment of the event
	Beta  int
	IsMax bool
	Leaf  bool // set on Enter/Return of leaf nodes
	Old   int  // previous bound, TraceAlphaRaise/TraceBetaLower only
	New   int  // updated bound, TraceAlphaRaise/TraceBetaLower only
	Value int  // returned value, TraceReturn only
}

// Trace callback, will receive events of its category during the search
type TraceFunc func(TraceEvent)

// TraceListener routes trace events to per-category callbacks. Unset
// callbacks are simply skipped, so an empty listener costs nothing.
type TraceListener struct {
	onEnter  TraceFunc // TraceEnter
	onBound  TraceFunc // TraceAlphaRaise, TraceBetaLower
	onCutoff TraceFunc // TraceBetaCutoff, TraceAlphaCutoff
	onReturn TraceFunc // TraceReturn
}

func NewTraceListener() TraceListener {
	return TraceListener{}
}

// Attach callback for node entries
func (listener *TraceListener) OnEnter(f TraceFunc) *TraceListener {
	listener.onEnter = f
	return listener
}

// Attach callback for alpha/beta bound updates
func (listener *TraceListener) OnBound(f TraceFunc) *TraceListener {
	listener.onBound = f
	return listener
}

// Attach callback for cut-offs
func (listener *TraceListener) OnCutoff(f TraceFunc) *TraceListener {
	listener.onCutoff = f
	return listener
}

// Attach callback for value returns
func (listener *TraceListener) OnReturn(f TraceFunc) *TraceListener {
	listener.onReturn = f
	return listener
}

func (listener *TraceListener) invoke(ev TraceEvent) {
	var f TraceFunc
	switch ev.Kind {
	case TraceEnter:
		f = listener.onEnter
	case TraceAlphaRaise, TraceBetaLower:
		f = listener.onBound
	case TraceBetaCutoff, TraceAlphaCutoff:
		f = listener.onCutoff
	case TraceReturn:
		f = listener.onReturn
	}
	if f != nil {
		f(ev)
	}
}

// Recorder collects every trace event in traversal order, handy for tests
// and for consumers that want the whole sequence instead of callbacks
type Recorder struct {
	Events []TraceEvent
}

func (r *Recorder) Record(ev TraceEvent) {
	r.Events = append(r.Events, ev)
}

// Listener that records all event categories
func (r *Recorder) Listener() TraceListener {
	listener := NewTraceListener()
	listener.OnEnter(r.Record).OnBound(r.Record).OnCutoff(r.Record).OnReturn(r.Record)
	return listener
}
