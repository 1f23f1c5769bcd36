package queue

import (
	"github.com/emirpasic/gods/queues/priorityqueue"
)

// Candidates is the unbounded best-first exploration queue from
// level search: a max-heap by score, so the best unexplored
// point is always popped first.
type Candidates struct {
	pq *priorityqueue.Queue
}

// NewCandidates creates an empty candidate queue.
func NewCandidates() *Candidates {
	return &Candidates{pq: priorityqueue.NewWith(descending)}
}

// Reset empties the queue so it can be reused for another search.
func (c *Candidates) Reset() {
	c.pq.Clear()
}

// Len returns the number of points currently queued.
func (c *Candidates) Len() int {
	return c.pq.Size()
}

// Push adds p to the queue.
func (c *Candidates) Push(p Point) {
	c.pq.Enqueue(p)
}

// Pop removes and returns the best-scoring queued point.
func (c *Candidates) Pop() (Point, bool) {
	v, ok := c.pq.Dequeue()
	if !ok {
		return Point{}, false
	}
	return v.(Point), true
}
