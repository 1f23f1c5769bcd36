package queue

import "sync"

// Pool hands out reusable Beam/Candidates pairs for Level-Search. Pooling
// avoids allocating two heaps per Level-Search call, which would otherwise
// dominate construction-time allocation pressure.
type Pool struct {
	beamCap int
	beams   sync.Pool
	cands   sync.Pool
}

// NewPool creates a pool of beams with the given fixed capacity (normally
// ef_construct) and matching unbounded candidate queues.
func NewPool(beamCap int) *Pool {
	p := &Pool{beamCap: beamCap}
	p.beams = sync.Pool{New: func() interface{} { return NewBeam(p.beamCap) }}
	p.cands = sync.Pool{New: func() interface{} { return NewCandidates() }}
	return p
}

// GetBeam returns a reset, ready-to-use beam.
func (p *Pool) GetBeam() *Beam {
	b := p.beams.Get().(*Beam)
	b.Reset()
	return b
}

// PutBeam returns a beam to the pool.
func (p *Pool) PutBeam(b *Beam) {
	p.beams.Put(b)
}

// GetCandidates returns a reset, ready-to-use candidate queue.
func (p *Pool) GetCandidates() *Candidates {
	c := p.cands.Get().(*Candidates)
	c.Reset()
	return c
}

// PutCandidates returns a candidate queue to the pool.
func (p *Pool) PutCandidates(c *Candidates) {
	p.cands.Put(c)
}
