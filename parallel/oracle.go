// Package parallel provides a goroutine-backed hnsw.UpdateExecutor used to
// prove that the per-neighbor symmetric update step computed by
// hnsw.Builder.Link is genuinely independent across neighbors: applying
// those updates concurrently must produce byte-identical adjacency output
// to applying them one at a time. It exists purely as a cross-check
// against the sequential builder; the builder never imports it.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kestrelann/hnswgraph/hnsw"
)

// Executor applies neighbor updates with a bounded pool of goroutines
// instead of a plain loop. Safe for reuse across many Link calls; Limit
// controls how many updates run concurrently within a single Apply call.
type Executor struct {
	Limit int
}

// NewExecutor creates an Executor that runs up to limit updates
// concurrently per Apply call. limit <= 0 means unbounded.
func NewExecutor(limit int) *Executor {
	return &Executor{Limit: limit}
}

// Apply writes every update to store at level, fanning the writes out
// across goroutines. Each update targets a distinct neighbor id, so no
// two goroutines in the same call ever write the same adjacency slot.
func (e *Executor) Apply(store *hnsw.AdjacencyStore, level int, updates []hnsw.NeighborUpdate) {
	if len(updates) <= 1 {
		for _, u := range updates {
			store.SetLinks(u.NeighborID, level, u.Links)
		}
		return
	}

	g, _ := errgroup.WithContext(context.Background())
	if e.Limit > 0 {
		g.SetLimit(e.Limit)
	}

	for _, u := range updates {
		u := u
		g.Go(func() error {
			store.SetLinks(u.NeighborID, level, u.Links)
			return nil
		})
	}
	_ = g.Wait()
}

var _ hnsw.UpdateExecutor = (*Executor)(nil)
