package rank

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/wippyai/fuzz-bridge/errors"
	"github.com/wippyai/fuzz-bridge/hosterr"
	"github.com/wippyai/fuzz-bridge/scorer"
	"github.com/wippyai/fuzz-bridge/seq"
)

// Result is one scored choice.
type Result struct {
	Index int
	Score float64
}

// Extract scores query against every choice and returns the choices that
// meet cutoff, best first (ties broken by input order). workers limits the
// number of goroutines; each worker prepares its own scorer context from
// the query, so no context is shared. workers <= 0 uses GOMAXPROCS.
func Extract(ctx context.Context, f scorer.Factory, query *seq.Buffer, choices []*seq.Buffer, cutoff float64, workers int) ([]Result, error) {
	if len(choices) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(choices) {
		workers = len(choices)
	}

	scores := make([]float64, len(choices))
	scored := make([]bool, len(choices))
	indices := make(chan int)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(indices)
		for i := range choices {
			select {
			case indices <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			bridge := hosterr.NewLocal()
			c, err := scorer.Build(f, bridge, query)
			if err != nil {
				return err
			}
			defer c.Destroy()

			for i := range indices {
				var out float64
				if !c.Compute(choices[i], cutoff, &out) {
					if pending := bridge.Take(); pending != nil {
						return errors.Wrap(errors.PhaseRank, errors.KindRuntime, pending,
							"score choice")
					}
					return errors.New(errors.PhaseRank, errors.KindRuntime).
						Detail("compute failed without a reported error").Build()
				}
				scores[i] = out
				scored[i] = true
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(choices))
	for i := range choices {
		if !scored[i] {
			continue
		}
		if cutoff > 0 && scores[i] < cutoff {
			continue
		}
		results = append(results, Result{Index: i, Score: scores[i]})
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})
	return results, nil
}

// ExtractOne returns the single best choice meeting cutoff. The boolean is
// false when nothing qualifies.
func ExtractOne(ctx context.Context, f scorer.Factory, query *seq.Buffer, choices []*seq.Buffer, cutoff float64) (Result, bool, error) {
	results, err := Extract(ctx, f, query, choices, cutoff, 0)
	if err != nil {
		return Result{}, false, err
	}
	if len(results) == 0 {
		return Result{}, false, nil
	}
	return results[0], true, nil
}
