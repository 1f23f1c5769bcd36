// Package queue provides the priority queues used by the HNSW level search:
// a bounded max-beam that retains the ef best-scoring points seen so far,
// and an unbounded best-first candidate queue. Both are built on top of
// gods' binary heap so the ordering logic lives in one comparator instead
// of two hand-rolled heap types.
package queue

import (
	"github.com/emirpasic/gods/utils"
)

// Point is a (point id, score) pair. Score follows the "higher is closer"
// convention used throughout the graph builder.
type Point struct {
	ID    uint32
	Score float32
}

// ascending orders points by score ascending, ties broken by id ascending.
// The beam uses this order directly so its heap root is always the worst
// kept point (cheap to peek and evict).
func ascending(a, b interface{}) int {
	pa, pb := a.(Point), b.(Point)
	switch {
	case pa.Score < pb.Score:
		return -1
	case pa.Score > pb.Score:
		return 1
	case pa.ID < pb.ID:
		return -1
	case pa.ID > pb.ID:
		return 1
	default:
		return 0
	}
}

// descending orders points by score descending, ties broken by id
// ascending. The candidate queue uses this order so its heap root is
// always the best unexplored point.
func descending(a, b interface{}) int {
	pa, pb := a.(Point), b.(Point)
	switch {
	case pa.Score > pb.Score:
		return -1
	case pa.Score < pb.Score:
		return 1
	case pa.ID < pb.ID:
		return -1
	case pa.ID > pb.ID:
		return 1
	default:
		return 0
	}
}

var _ utils.Comparator = ascending
var _ utils.Comparator = descending
