package main

import (
	"github.com/google/uuid"
	"github.com/lintang-b-s/edgesep/pkg/datastructure"
	"github.com/lintang-b-s/edgesep/pkg/logger"
	"github.com/lintang-b-s/edgesep/pkg/napsack"
	"github.com/lintang-b-s/edgesep/pkg/options"
	"github.com/lintang-b-s/edgesep/pkg/qp"
	"go.uber.org/zap"
)

// zapSink adapts the napsack diagnostics Sink interface onto a
// zap.Logger, tagging every call with a run ID so concurrent callers
// (were there any) wouldn't interleave their case traces.
type zapSink struct {
	log   *zap.Logger
	runID string
}

func (s zapSink) Case(label napsack.CaseLabel, lambda float64) {
	s.log.Debug("napsack case",
		zap.String("run_id", s.runID),
		zap.String("case", label.String()),
		zap.Float64("lambda", lambda),
	)
}

func main() {
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// A small illustrative graph: two dense clusters joined by a
	// single light bridge edge, the textbook case a good edge
	// separator should cut.
	ptr := []int32{0, 2, 4, 7, 10, 12, 14}
	idx := []int32{1, 2, 0, 2, 0, 1, 3, 2, 4, 5, 3, 5, 3, 4}
	w := []float64{1, 1, 1, 1, 1, 1, 0.1, 0.1, 1, 1, 1, 1, 1, 1}

	g := datastructure.NewGraph(ptr, idx, w, nil)
	if err := g.Validate(); err != nil {
		log.Fatal("invalid graph", zap.Error(err))
	}

	opts := options.Default()
	sink := zapSink{log: log, runID: uuid.NewString()}
	driver := qp.NewDriver(g, opts, sink)

	n := g.NumberOfVertices()
	x0 := make([]float64, n)
	for i := range x0 {
		x0[i] = opts.TargetSplit
	}

	result, err := driver.Solve(x0)
	if err != nil {
		log.Fatal("qp solve failed", zap.Error(err))
	}

	log.Info("edge separator solved",
		zap.String("status", result.Status.String()),
		zap.Int("iterations", result.Iterations),
		zap.Float64("lambda", result.Lambda),
		zap.Float64("cost", result.Cost),
		zap.Float64s("x", result.X),
	)
}
