package hnsw

import "github.com/kestrelann/hnswgraph/queue"

// selectNeighborsHeuristic picks up to m points from candidatesDescending
// (already sorted best-score-first) that maximize diversity: a candidate
// c is admitted only if, for every already-selected point s, c is no
// closer to s than c's own carried score, so c brings a genuinely new
// direction to the neighborhood rather than clustering around a point
// already covered. Rejected candidates are discarded outright, never
// reconsidered. A candidate's Score is relative to whatever point it was
// originally scored against by the caller (the inserted point, or a
// neighbor being re-pruned) — the heuristic itself never needs to know
// which.
func (b *Builder) selectNeighborsHeuristic(candidatesDescending []queue.Point, m int) []uint32 {
	selected := make([]uint32, 0, m)

	for _, c := range candidatesDescending {
		if len(selected) >= m {
			break
		}

		admit := true
		for _, s := range selected {
			if b.scorer.Score(c.ID, s) > c.Score {
				admit = false
				break
			}
		}
		if admit {
			selected = append(selected, c.ID)
		}
	}

	return selected
}
