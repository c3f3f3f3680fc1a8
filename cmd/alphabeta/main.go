package main

/*

Demo of the alpha-beta teaching library: generates a depth-3, branching-3
tree with a fixed set of 27 leaf evaluations, prints it, then runs a traced
alpha-beta search from the root and reports the value.

Drop the leaf values (pass nil to GenTree) to search a random tree instead.

*/

import (
	"fmt"
	"os"

	"github.com/IlikeChooros/go-alphabeta/pkg/alphabeta"
	"github.com/IlikeChooros/go-alphabeta/pkg/render"
	"go.uber.org/zap"
)

func main() {
	logger := NewLogger()
	defer logger.Sync()

	values := alphabeta.NewLeafValues(
		-17, 4, 15, 15, 8, -14, 16, -1, 5,
		-16, 2, 0, 7, 19, -13, -8, 2, -17,
		-7, -8, -6, -8, -15, -7, 15, 8, 8,
	)

	params := alphabeta.DefaultTreeParams()
	root, err := alphabeta.NewGenerator().GenTree(params, values)
	if err != nil {
		logger.Fatal("tree generation failed", zap.Error(err), zap.Stringer("params", params))
	}

	render.NewTreePrinter(os.Stdout).Print(root)
	fmt.Print("\n\n")

	searcher := alphabeta.NewSearcher()
	searcher.SetListener(render.NewTraceWriter(os.Stdout).Listener())

	value, err := searcher.SearchRoot(root, params.RootMax)
	if err != nil {
		logger.Fatal("search failed", zap.Error(err))
	}

	stats := searcher.Stats()
	logger.Info("search finished",
		zap.Int("value", value),
		zap.Int("nodes", stats.Nodes),
		zap.Int("leaves", stats.Leaves),
		zap.Int("leaves_total", params.Leaves()),
		zap.Int("alpha_cutoffs", stats.AlphaCutoffs),
		zap.Int("beta_cutoffs", stats.BetaCutoffs),
	)

	fmt.Printf("\nalpha-beta returned %d\n", value)
}

func NewLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger
}
