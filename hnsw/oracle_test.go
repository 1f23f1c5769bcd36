package hnsw_test

import (
	"testing"

	"github.com/kestrelann/hnswgraph/hnsw"
	"github.com/kestrelann/hnswgraph/parallel"
	"github.com/kestrelann/hnswgraph/vecscore"
)

// buildGraph runs the exact same point order and configuration through a
// Builder configured with executor, returning it for adjacency comparison.
func buildGraph(t *testing.T, store *vecscore.Store, levels []int, executor hnsw.UpdateExecutor) *hnsw.Builder {
	t.Helper()
	b, err := hnsw.NewBuilder(levels, hnsw.Config{
		M:              6,
		M0:             12,
		EfConstruct:    24,
		EntryPointsNum: 4,
		Scorer:         vecscore.EuclideanScorer{Store: store},
		UpdateExecutor: executor,
	})
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	for i := 0; i < store.Len(); i++ {
		b.LinkNewPoint(uint32(i))
	}
	return b
}

func assertIdenticalAdjacency(t *testing.T, n int, sequential, concurrent *hnsw.Builder) {
	t.Helper()
	for p := 0; p < n; p++ {
		maxLevel := sequential.Level(uint32(p))
		for lvl := 0; lvl <= maxLevel; lvl++ {
			a := sequential.GetLinks(uint32(p), lvl)
			b := concurrent.GetLinks(uint32(p), lvl)
			if len(a) != len(b) {
				t.Fatalf("point %d level %d: link count differs: sequential=%v concurrent=%v", p, lvl, a, b)
			}
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("point %d level %d: links differ at index %d: sequential=%v concurrent=%v", p, lvl, i, a, b)
				}
			}
		}
	}
}

func linearPointSet(n, dim int) *vecscore.Store {
	store := vecscore.NewStore(dim)
	for i := 0; i < n; i++ {
		v := make([]float32, dim)
		for d := range v {
			v[d] = float32((i*7+d*13)%97) / 97
		}
		store.Add(v)
	}
	return store
}

// TestOracleEquivalenceSequentialVsConcurrent is the primary cross-check of
// this package: the goroutine-backed executor must produce byte-identical
// adjacency to the plain sequential one, since the per-neighbor updates
// it parallelizes are computed before any of them are applied.
func TestOracleEquivalenceSequentialVsConcurrent(t *testing.T) {
	sizes := []int{1, 2, 3, 50}
	for _, n := range sizes {
		store := linearPointSet(n, 8)
		levels := make([]int, n)
		gen := hnsw.NewLevelGenerator(6, 4, func() float64 { return 0.37 })
		for i := range levels {
			levels[i] = gen.Next()
		}

		sequential := buildGraph(t, store, levels, nil)
		concurrent := buildGraph(t, store, levels, parallel.NewExecutor(4))

		assertIdenticalAdjacency(t, n, sequential, concurrent)
	}
}

func TestOracleEquivalenceLayeredGraph(t *testing.T) {
	const n = 200
	store := linearPointSet(n, 16)
	levels := make([]int, n)
	gen := hnsw.NewLevelGenerator(8, 6, nil)
	for i := range levels {
		levels[i] = gen.Next()
	}

	sequential := buildGraph(t, store, levels, nil)
	concurrent := buildGraph(t, store, levels, parallel.NewExecutor(8))

	assertIdenticalAdjacency(t, n, sequential, concurrent)
}
