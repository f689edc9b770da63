package political

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tsim-imai/polisearch/internal/backend"
)

// maxFanout caps both the number of query variants issued and the number
// of concurrent backend calls, regardless of how many variants the
// expander produced.
const maxFanout = 3

// fanout runs up to maxFanout query variants against the backend in
// parallel and merges the hits in branch-completion order. A failing
// branch is logged and contributes nothing; it never aborts its siblings.
//
// An error is returned only when every branch failed and at least one
// failure was configuration-class. All branches returning empty result
// sets is an ordinary empty success.
func fanout(ctx context.Context, be backend.Backend, queries []string, perQueryLimit int) ([]backend.Hit, error) {
	if len(queries) > maxFanout {
		queries = queries[:maxFanout]
	}
	if len(queries) == 0 {
		return nil, nil
	}

	var (
		mu        sync.Mutex
		merged    []backend.Hit
		failures  int
		configErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxFanout)

	for _, query := range queries {
		query := query
		g.Go(func() error {
			hits, err := be.Search(gctx, query, perQueryLimit)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures++
				if configErr == nil && backend.IsConfig(err) {
					configErr = err
				}
				slog.Warn("fan-out branch failed",
					slog.String("query", query),
					slog.String("error", err.Error()))
				return nil // sibling branches must keep running
			}
			merged = append(merged, hits...)
			return nil
		})
	}

	// Branches never return errors, so Wait only fails on context
	// cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if failures == len(queries) && configErr != nil {
		return nil, configErr
	}
	return merged, nil
}
