package hnsw

import (
	"math"
	"math/rand"

	"github.com/kestrelann/hnswgraph/queue"
)

// Config holds the construction-time parameters of a Builder.
type Config struct {
	// M is the number of established connections per point at layers > 0.
	M int

	// M0 is the number of established connections per point at layer 0.
	// hnswlib convention is M0 = 2*M; nothing enforces that here.
	M0 int

	// EfConstruct is the beam width used by Level-Search while linking.
	EfConstruct int

	// EntryPointsNum is the capacity of the entry point registry.
	EntryPointsNum int

	// Scorer computes pairwise similarity between two point ids. Required.
	Scorer Scorer

	// UpdateExecutor applies the per-neighbor symmetric updates produced
	// while linking a point in. Defaults to a plain sequential executor
	// if left nil.
	UpdateExecutor UpdateExecutor
}

// Builder constructs an HNSW adjacency graph one point at a time, in a
// fixed point order, deterministically. It holds no vectors itself —
// similarity is entirely delegated to the configured Scorer.
type Builder struct {
	cfg Config

	n           int
	pointLevels []int

	adjacency   *AdjacencyStore
	entryPoints *EntryPointRegistry
	visited     *VisitedPool
	queues      *queue.Pool
	scorer      Scorer

	updateExecutor UpdateExecutor
}

// NewBuilder creates a Builder for len(levels) points, where levels[p] is
// the pre-assigned layer of point p (see LevelGenerator for one way to
// produce this). It preallocates every layer's adjacency storage up
// front, sized from the maximum level present.
func NewBuilder(levels []int, cfg Config) (*Builder, error) {
	if len(levels) == 0 {
		return nil, ErrEmptyLevels
	}
	if cfg.M <= 0 {
		return nil, ErrInvalidM
	}
	if cfg.M0 < cfg.M {
		return nil, ErrInvalidM0
	}
	if cfg.EfConstruct <= 0 {
		return nil, ErrInvalidEf
	}
	if cfg.EntryPointsNum <= 0 {
		return nil, ErrInvalidEPNum
	}
	if cfg.Scorer == nil {
		return nil, ErrNilScorer
	}

	maxLevel := 0
	for _, lvl := range levels {
		if lvl < 0 {
			return nil, ErrNegativeLevel
		}
		if lvl > maxLevel {
			maxLevel = lvl
		}
	}

	executor := cfg.UpdateExecutor
	if executor == nil {
		executor = sequentialExecutor{}
	}

	return &Builder{
		cfg:            cfg,
		n:              len(levels),
		pointLevels:    append([]int(nil), levels...),
		adjacency:      NewAdjacencyStore(len(levels), maxLevel, cfg.M, cfg.M0),
		entryPoints:    NewEntryPointRegistry(cfg.EntryPointsNum),
		visited:        NewVisitedPool(),
		queues:         queue.NewPool(cfg.EfConstruct),
		scorer:         cfg.Scorer,
		updateExecutor: executor,
	}, nil
}

// GetLinks returns point p's current neighbor list at level.
func (b *Builder) GetLinks(p uint32, level int) []uint32 {
	return b.adjacency.GetLinks(p, level)
}

// Level returns the pre-assigned layer of point p.
func (b *Builder) Level(p uint32) int {
	return b.pointLevels[p]
}

// NumPoints returns the number of points this Builder was constructed for.
func (b *Builder) NumPoints() int {
	return b.n
}

// LevelGenerator produces per-point levels with the exponentially
// decaying distribution HNSW construction expects: l = -ln(u) * mL, for u
// uniform on (0, 1), capped at maxLevel. randFunc defaults to
// math/rand's global source when nil.
type LevelGenerator struct {
	mL       float64
	maxLevel int
	randFunc func() float64
}

// NewLevelGenerator creates a generator for the given M (used to derive
// mL = 1/ln(M)) and hard cap maxLevel.
func NewLevelGenerator(m, maxLevel int, randFunc func() float64) *LevelGenerator {
	if randFunc == nil {
		randFunc = rand.Float64
	}
	return &LevelGenerator{mL: 1 / math.Log(float64(m)), maxLevel: maxLevel, randFunc: randFunc}
}

// Next draws one level.
func (g *LevelGenerator) Next() int {
	level := int(-math.Log(g.randFunc()) * g.mL)
	if level > g.maxLevel {
		level = g.maxLevel
	}
	return level
}
