package queue

import (
	"github.com/emirpasic/gods/queues/priorityqueue"
)

// Beam is the fixed-capacity "nearest" queue from level search:
// it retains at most `cap` points, always the ones with the highest score
// seen so far. Internally it is a min-heap ordered by (score, id) ascending,
// so the worst kept point is always at the root and can be peeked or
// evicted in O(log cap).
type Beam struct {
	pq  *priorityqueue.Queue
	cap int
}

// NewBeam creates an empty beam with the given capacity. Capacity must be
// at least 1; Level-Search never constructs a beam with ef_construct == 0
// (precondition enforced by hnsw.NewBuilder).
func NewBeam(cap int) *Beam {
	return &Beam{pq: priorityqueue.NewWith(ascending), cap: cap}
}

// Reset empties the beam so it can be reused for another search.
func (b *Beam) Reset() {
	b.pq.Clear()
}

// Len returns the number of points currently held.
func (b *Beam) Len() int {
	return b.pq.Size()
}

// Full reports whether the beam is at capacity.
func (b *Beam) Full() bool {
	return b.pq.Size() >= b.cap
}

// Worst returns the worst-scoring point currently kept, if any.
func (b *Beam) Worst() (Point, bool) {
	v, ok := b.pq.Peek()
	if !ok {
		return Point{}, false
	}
	return v.(Point), true
}

// Offer tries to admit p into the beam and reports whether p actually ended
// up in the beam. It mirrors FixedLengthPriorityQueue::push from the
// reference implementation:
//   - if there is free capacity, p is always admitted;
//   - if the beam is full and p improves on the current worst kept point,
//     the worst point is evicted and p is admitted;
//   - if the beam is full and p does not improve on the worst kept point,
//     p is rejected outright (the "evicted" element is p itself).
//
// This exact admitted/rejected distinction — not merely whether an eviction
// happened — matters: a freshly discovered point must only be offered to
// the candidate queue when it was actually admitted here, or the two
// queues drift out of sync with an independent reference builder.
func (b *Beam) Offer(p Point) (admitted bool) {
	if b.pq.Size() < b.cap {
		b.pq.Enqueue(p)
		return true
	}
	worst, _ := b.pq.Peek()
	w := worst.(Point)
	if ascending(p, w) <= 0 {
		return false
	}
	b.pq.Dequeue()
	b.pq.Enqueue(p)
	return true
}

// DrainAscending removes and returns every point in the beam, ordered
// worst-first (ascending by score). The caller (Linker) reverses this to
// feed the Neighbor Heuristic in descending order.
func (b *Beam) DrainAscending() []Point {
	out := make([]Point, 0, b.pq.Size())
	for {
		v, ok := b.pq.Dequeue()
		if !ok {
			break
		}
		out = append(out, v.(Point))
	}
	return out
}
