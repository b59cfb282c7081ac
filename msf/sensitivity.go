// Package msf provides the removal-sensitivity driver: one full forest
// recomputation per forest edge, on a graph copy excluding that edge.
package msf

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/veleth/spanforest/alnum"
	"github.com/veleth/spanforest/ewgraph"
)

// Record reports the outcome of removing one forest edge: the MSF weight of
// the reduced graph and its component count. A component count above the
// original forest's means the removed edge was the sole bridge of its cut —
// a normal outcome, not an error.
type Record struct {
	// Edge is the removed forest edge (a handle into the original graph).
	Edge ewgraph.Edge

	// Weight is the total weight of the recomputed forest without Edge.
	Weight float64

	// Components is the component count of the recomputed forest.
	Components int
}

// String renders the record as "<edge> <recomputed-weight>", the report
// line format, e.g. "4-5 0.35000 1.81". The weight keeps its shortest
// exact decimal form.
func (r Record) String() string {
	return fmt.Sprintf("%s %s", r.Edge, strconv.FormatFloat(r.Weight, 'f', -1, 64))
}

// Sensitivity recomputes, for every edge e of forest f, the minimum
// spanning forest of g with e excluded (by handle, so equal-valued parallel
// edges survive) and returns one Record per forest edge.
//
// Records are sorted by the alphanumeric comparison of their rendering, so
// the report order is independent of computation order — in particular of
// the nondeterministic completion order under WithWorkers(n), which fans
// the recomputations out over n goroutines. The iterations share no state;
// results are merged only at the final sort.
//
// ctx is consulted between per-edge recomputations; on cancellation the
// driver stops early and returns ctx.Err().
//
// Complexity: one Build per forest edge — O(V·E log V) serial, divided by
// the worker count in the parallel mode. O(V+E) transient space per
// in-flight recomputation.
func Sensitivity(ctx context.Context, g *ewgraph.Graph, f *Forest, opts ...Option) ([]Record, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if f == nil {
		return nil, ErrNilForest
	}
	if f.V() != g.V() {
		return nil, fmt.Errorf("%w: forest V=%d, graph V=%d", ErrForestMismatch, f.V(), g.V())
	}

	edges := f.Edges()
	records := make([]Record, len(edges))

	var err error
	if cfg.Workers <= 1 || len(edges) <= 1 {
		err = runSerial(ctx, g, edges, records)
	} else {
		err = runParallel(ctx, g, edges, records, cfg.Workers)
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return alnum.Less(records[i].String(), records[j].String())
	})

	return records, nil
}

// runSerial recomputes records in forest-edge order on the calling goroutine.
func runSerial(ctx context.Context, g *ewgraph.Graph, edges []ewgraph.Edge, records []Record) error {
	for i, e := range edges {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := recompute(g, e)
		if err != nil {
			return err
		}
		records[i] = rec
	}

	return nil
}

// runParallel fans the recomputations out over workers goroutines. Each
// worker owns the record slots it fills; the first error wins and stops the
// distribution of further work.
func runParallel(ctx context.Context, g *ewgraph.Graph, edges []ewgraph.Edge, records []Record, workers int) error {
	if workers > len(edges) {
		workers = len(edges)
	}

	tasks := make(chan int)
	stop := make(chan struct{}) // closed on first failure; unblocks the feeder
	var wg sync.WaitGroup
	var once sync.Once
	var firstErr error
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			close(stop)
		})
	}

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range tasks {
				if err := ctx.Err(); err != nil {
					fail(err)

					return
				}
				rec, err := recompute(g, edges[i])
				if err != nil {
					fail(err)

					return
				}
				records[i] = rec
			}
		}()
	}

	// Distribute indices; stop feeding once the context dies or a worker
	// fails, so the remaining workers can drain and exit.
feed:
	for i := range edges {
		select {
		case tasks <- i:
		case <-stop:
			break feed
		case <-ctx.Done():
			fail(ctx.Err())

			break feed
		}
	}
	close(tasks)
	wg.Wait()

	return firstErr
}

// recompute builds the MSF of g without the forest edge e and records the
// resulting weight and component count.
func recompute(g *ewgraph.Graph, e ewgraph.Edge) (Record, error) {
	reduced, err := g.WithoutEdge(e.ID())
	if err != nil {
		return Record{}, err
	}
	rf, err := Build(reduced)
	if err != nil {
		return Record{}, err
	}

	return Record{Edge: e, Weight: rf.Weight(), Components: rf.Components()}, nil
}
