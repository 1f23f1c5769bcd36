package hnsw

import "github.com/kestrelann/hnswgraph/queue"

// searchOnLevel is Level-Search: a beam-width-bounded best-first search
// for up to ef nearest points to queryID at a single layer, starting from
// entry. The returned slice is ascending by score (worst first).
func (b *Builder) searchOnLevel(queryID uint32, entry queue.Point, level int, ef int) []queue.Point {
	lease := b.visited.Acquire(b.n)
	defer lease.Release()

	// Pooled beams are sized for EfConstruct; any other ef gets its own beam.
	var nearest *queue.Beam
	if ef == b.cfg.EfConstruct {
		nearest = b.queues.GetBeam()
		defer b.queues.PutBeam(nearest)
	} else {
		nearest = queue.NewBeam(ef)
	}

	candidates := b.queues.GetCandidates()
	defer b.queues.PutCandidates(candidates)

	lease.CheckAndUpdate(entry.ID)
	nearest.Offer(entry)
	candidates.Push(entry)

	for candidates.Len() > 0 {
		c, _ := candidates.Pop()

		if worst, ok := nearest.Worst(); ok && nearest.Full() && c.Score < worst.Score {
			break
		}

		for _, n := range b.adjacency.GetLinks(c.ID, level) {
			if lease.CheckAndUpdate(n) {
				continue
			}
			score := b.scorer.Score(n, queryID)
			b.processCandidate(nearest, candidates, queue.Point{ID: n, Score: score})
		}
	}

	// queryID may already carry links at this level from an earlier point's
	// symmetric update choosing it as a neighbor; fold those in too.
	for _, existing := range b.adjacency.GetLinks(queryID, level) {
		if lease.Check(existing) {
			continue
		}
		score := b.scorer.Score(queryID, existing)
		b.processCandidate(nearest, candidates, queue.Point{ID: existing, Score: score})
	}

	return nearest.DrainAscending()
}

// processCandidate offers a freshly-scored point to the beam, and only
// forwards it to the candidate queue if the beam actually admitted it: a
// point the beam discards outright must never be explored further.
func (b *Builder) processCandidate(nearest *queue.Beam, candidates *queue.Candidates, p queue.Point) {
	if nearest.Offer(p) {
		candidates.Push(p)
	}
}

// searchEntry is Entry Descent: a greedy hill-climb from topLevel down to
// targetLevel+1 inclusive, used to refine the starting point handed to
// Level-Search at targetLevel. At each level it repeatedly jumps to the
// best-scoring neighbor of the current point until no neighbor improves
// on it, then drops a level and repeats.
func (b *Builder) searchEntry(queryID uint32, entry queue.Point, topLevel, targetLevel int) queue.Point {
	current := entry
	for level := topLevel; level > targetLevel; level-- {
		for {
			improved := false
			for _, n := range b.adjacency.GetLinks(current.ID, level) {
				score := b.scorer.Score(n, queryID)
				if score > current.Score {
					current = queue.Point{ID: n, Score: score}
					improved = true
				}
			}
			if !improved {
				break
			}
		}
	}
	return current
}
