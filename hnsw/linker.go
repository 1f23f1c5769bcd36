package hnsw

import (
	"sort"

	"github.com/kestrelann/hnswgraph/queue"
)

// LinkRequest carries the state a single level of linking a point needs:
// which point, which level, and the entry point to start Level-Search
// from at that level.
type LinkRequest struct {
	PointID uint32
	Level   int
	Entry   queue.Point
}

// NeighborUpdate is one existing neighbor's re-pruned link list, produced
// alongside a point's own links as a side effect of linking it in.
type NeighborUpdate struct {
	NeighborID uint32
	Links      []uint32
}

// LinkResponse is the pure result of linking PointID in at Level: its own
// chosen neighbor list, and the re-pruned neighbor lists of every point
// that list now points back to. Applying it (ApplyLinkResponse) is the
// only step that mutates the adjacency store; computing it (Link) never
// does, which is what makes the per-neighbor updates below safe to
// compute concurrently across point_id/level pairs that don't alias the
// same neighbor storage.
type LinkResponse struct {
	PointID   uint32
	Level     int
	Entry     queue.Point
	Links     []uint32
	Neighbors []NeighborUpdate
}

// NextRequest returns the request for the next level down, if any.
// Linking proceeds top-down: a point's own level is the ceiling, and
// level 0 is always the floor.
func (r LinkResponse) NextRequest() (LinkRequest, bool) {
	if r.Level == 0 {
		return LinkRequest{}, false
	}
	return LinkRequest{PointID: r.PointID, Level: r.Level - 1, Entry: r.Entry}, true
}

// GetLinkRequest produces the first LinkRequest for pointID: it registers
// pointID with the entry point registry, descends from the best admitted
// entry point down to pointID's own level, and returns the request to
// start linking from there. It returns false if pointID is the very
// first point registered, since there is nothing yet to link against.
func (b *Builder) GetLinkRequest(pointID uint32) (LinkRequest, bool) {
	level := b.pointLevels[pointID]

	entryCandidate, ok := b.entryPoints.NewPoint(pointID, level, func(uint32, int) bool { return true })
	if !ok {
		return LinkRequest{}, false
	}

	var entry queue.Point
	if entryCandidate.level > level {
		start := queue.Point{ID: entryCandidate.id, Score: b.scorer.Score(pointID, entryCandidate.id)}
		entry = b.searchEntry(pointID, start, entryCandidate.level, level)
	} else {
		entry = queue.Point{ID: entryCandidate.id, Score: b.scorer.Score(pointID, entryCandidate.id)}
	}

	reqLevel := level
	if entryCandidate.level < reqLevel {
		reqLevel = entryCandidate.level
	}

	return LinkRequest{PointID: pointID, Level: reqLevel, Entry: entry}, true
}

// Link computes, without mutating anything, the full effect of linking
// req.PointID in at req.Level: its own neighbor list plus the re-pruned
// neighbor list of every existing point that list now points back to.
func (b *Builder) Link(req LinkRequest) LinkResponse {
	nearest := b.searchOnLevel(req.PointID, req.Entry, req.Level, b.cfg.EfConstruct)

	resp := LinkResponse{PointID: req.PointID, Level: req.Level, Entry: req.Entry}
	if len(nearest) > 0 {
		resp.Entry = nearest[len(nearest)-1]
	}

	levelM := b.adjacency.M(req.Level)
	resp.Links = b.selectNeighborsHeuristic(descendingCopy(nearest), levelM)

	resp.Neighbors = make([]NeighborUpdate, 0, len(resp.Links))
	for _, other := range resp.Links {
		resp.Neighbors = append(resp.Neighbors, b.repruneNeighbor(req.PointID, other, req.Level, levelM))
	}

	return resp
}

// repruneNeighbor computes other's updated link list once pointID is
// added as one of its neighbors at level. If other has spare capacity,
// pointID is simply appended; otherwise the heuristic re-selects from
// other's existing neighbors plus pointID, scored relative to other.
func (b *Builder) repruneNeighbor(pointID, other uint32, level int, levelM int) NeighborUpdate {
	existing := b.adjacency.GetLinks(other, level)

	if len(existing) < levelM {
		links := make([]uint32, len(existing)+1)
		copy(links, existing)
		links[len(existing)] = pointID
		return NeighborUpdate{NeighborID: other, Links: links}
	}

	candidates := make([]queue.Point, 0, levelM+1)
	candidates = append(candidates, queue.Point{ID: pointID, Score: b.scorer.Score(pointID, other)})
	for _, n := range existing {
		candidates = append(candidates, queue.Point{ID: n, Score: b.scorer.Score(n, other)})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].ID < candidates[j].ID
	})

	return NeighborUpdate{NeighborID: other, Links: b.selectNeighborsHeuristic(candidates, levelM)}
}

// ApplyLinkResponse writes a LinkResponse's links into the adjacency
// store: the linked point's own list, then every re-pruned neighbor's
// list. This is the only mutating step in the request/link/apply cycle.
func (b *Builder) ApplyLinkResponse(resp LinkResponse) {
	b.adjacency.SetLinks(resp.PointID, resp.Level, resp.Links)
	b.updateExecutor.Apply(b.adjacency, resp.Level, resp.Neighbors)
}

// LinkNewPoint runs the full request -> link -> apply -> next cycle for
// pointID from its own level down to level 0.
func (b *Builder) LinkNewPoint(pointID uint32) {
	req, ok := b.GetLinkRequest(pointID)
	for ok {
		resp := b.Link(req)
		b.ApplyLinkResponse(resp)
		req, ok = resp.NextRequest()
	}
}

// descendingCopy reverses an ascending (worst-first) slice into a fresh
// descending (best-first) one, leaving the input untouched.
func descendingCopy(ascending []queue.Point) []queue.Point {
	out := make([]queue.Point, len(ascending))
	for i, p := range ascending {
		out[len(ascending)-1-i] = p
	}
	return out
}
