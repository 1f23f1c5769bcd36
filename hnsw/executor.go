package hnsw

// UpdateExecutor applies the per-neighbor symmetric updates produced by
// Link. Every update in a single call targets a distinct neighbor id at
// the same level, so the updates never alias the same adjacency slot:
// that independence is what an UpdateExecutor is free to exploit, for
// example by applying them across goroutines instead of one at a time.
// The default Builder uses sequentialExecutor; a genuinely concurrent
// implementation is provided separately and is never required for
// correctness, only for throughput.
type UpdateExecutor interface {
	Apply(store *AdjacencyStore, level int, updates []NeighborUpdate)
}

type sequentialExecutor struct{}

func (sequentialExecutor) Apply(store *AdjacencyStore, level int, updates []NeighborUpdate) {
	for _, u := range updates {
		store.SetLinks(u.NeighborID, level, u.Links)
	}
}
