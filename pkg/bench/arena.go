package bench

import (
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/IlikeChooros/go-alphabeta/pkg/alphabeta"
)

/*
Arena benchmark subpackage, evaluates batches of randomly generated trees
both with alpha-beta pruning and with the exhaustive minimax oracle, and
aggregates how much work pruning saved. Any disagreement between the two
is counted as a mismatch, so this doubles as a correctness harness.
*/

type ArenaStats struct {
	trees         uint32
	mismatches    uint32
	failures      uint32
	visitedLeaves uint64
	totalLeaves   uint64
	cutoffs       uint64
}

// Trees evaluated so far
func (as *ArenaStats) Trees() int {
	return int(atomic.LoadUint32(&as.trees))
}

// Trees where alpha-beta and minimax disagreed, must stay 0
func (as *ArenaStats) Mismatches() int {
	return int(atomic.LoadUint32(&as.mismatches))
}

// Trees that failed to generate or evaluate
func (as *ArenaStats) Failures() int {
	return int(atomic.LoadUint32(&as.failures))
}

// Leaves alpha-beta actually evaluated
func (as *ArenaStats) VisitedLeaves() int {
	return int(atomic.LoadUint64(&as.visitedLeaves))
}

// Leaves the exhaustive evaluation visits (all of them)
func (as *ArenaStats) TotalLeaves() int {
	return int(atomic.LoadUint64(&as.totalLeaves))
}

// Total cut-offs of both kinds across all trees
func (as *ArenaStats) Cutoffs() int {
	return int(atomic.LoadUint64(&as.cutoffs))
}

// Fraction of leaf evaluations pruning skipped, in [0, 1]
func (as *ArenaStats) Savings() float64 {
	total := as.TotalLeaves()
	if total == 0 {
		return 0
	}
	return 1 - float64(as.VisitedLeaves())/float64(total)
}

// Arena distributes tree evaluations over worker goroutines. Every worker
// owns its generator and searcher, only the aggregate counters are shared.
type Arena struct {
	ArenaStats
	Params   *alphabeta.TreeParams
	NTrees   int
	NWorkers int
	wg       sync.WaitGroup
}

func NewArena(params *alphabeta.TreeParams) *Arena {
	return &Arena{
		Params:   params,
		NTrees:   100,
		NWorkers: 2,
	}
}

func (a *Arena) Setup(nTrees, nWorkers int) *Arena {
	a.NTrees = max(1, nTrees)
	a.NWorkers = max(1, nWorkers)
	return a
}

// Start the workers, to wait for the result call Wait
func (a *Arena) Start() {
	nTrees := a.NTrees / a.NWorkers
	rest := a.NTrees % a.NWorkers

	for id := 0; id < a.NWorkers; id++ {
		delta := 0
		if rest > 0 {
			delta = 1
			rest--
		}

		a.wg.Add(1)
		go a.worker(id, nTrees+delta)
	}
}

func (a *Arena) Wait() {
	a.wg.Wait()
}

// Run the whole batch and block until it is done
func (a *Arena) Run() {
	a.Start()
	a.Wait()
}

func (a *Arena) worker(id, nTrees int) {
	defer a.wg.Done()

	gen := alphabeta.NewGenerator().
		SetRand(rand.New(rand.NewSource(alphabeta.SeedGeneratorFn() + int64(id))))
	searcher := alphabeta.NewSearcher()

	for i := 0; i < nTrees; i++ {
		root, err := gen.GenTree(a.Params, nil)
		if err != nil {
			atomic.AddUint32(&a.failures, 1)
			continue
		}

		pruned, err := searcher.SearchRoot(root, a.Params.RootMax)
		if err != nil {
			atomic.AddUint32(&a.failures, 1)
			continue
		}
		exhaustive, err := alphabeta.Minimax(root, a.Params.RootMax)
		if err != nil {
			atomic.AddUint32(&a.failures, 1)
			continue
		}

		stats := searcher.Stats()
		atomic.AddUint32(&a.trees, 1)
		atomic.AddUint64(&a.visitedLeaves, uint64(stats.Leaves))
		atomic.AddUint64(&a.totalLeaves, uint64(alphabeta.CountLeaves(root)))
		atomic.AddUint64(&a.cutoffs, uint64(stats.Cutoffs()))

		if pruned != exhaustive {
			atomic.AddUint32(&a.mismatches, 1)
		}
	}
}
