package benchmarks

import (
	"os"
	"runtime/pprof"
	"testing"

	"github.com/kestrelann/hnswgraph/hnsw"
	"github.com/kestrelann/hnswgraph/vecscore"
)

func TestGraphInsertProfiling(t *testing.T) {
	if testing.Short() {
		t.Skip("Saltando il profiling in modalità short")
	}

	numVectors := 10000
	dimension := 128

	// Genera vettori casuali
	vectors := generateRandomVectors(numVectors, dimension)

	// Crea file di profiling
	cpuFile, err := os.Create("cpu_insert.prof")
	if err != nil {
		t.Fatalf("Impossibile creare file di profilo CPU: %v", err)
	}
	defer cpuFile.Close()

	memFile, err := os.Create("mem_insert.prof")
	if err != nil {
		t.Fatalf("Impossibile creare file di profilo memoria: %v", err)
	}
	defer memFile.Close()

	// Avvia profiling CPU
	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		t.Fatalf("Impossibile avviare profilo CPU: %v", err)
	}
	defer pprof.StopCPUProfile()

	store := vecscore.NewStore(dimension)
	levelGen := hnsw.NewLevelGenerator(16, 16, nil)
	levels := make([]int, numVectors)
	for i, v := range vectors {
		store.Add(v)
		levels[i] = levelGen.Next()
	}

	// Inizializza il builder
	b, err := hnsw.NewBuilder(levels, hnsw.Config{
		M:              16,
		M0:             32,
		EfConstruct:    200,
		EntryPointsNum: 8,
		Scorer:         vecscore.EuclideanScorer{Store: store},
	})
	if err != nil {
		t.Fatalf("Errore nella creazione del builder: %v", err)
	}

	// Esegui il linking
	for i := 0; i < numVectors; i++ {
		b.LinkNewPoint(uint32(i))
	}

	// Scrivi profilo memoria
	if err := pprof.WriteHeapProfile(memFile); err != nil {
		t.Fatalf("Impossibile scrivere profilo memoria: %v", err)
	}

	t.Logf("Profili CPU e memoria salvati. Usa 'go tool pprof cpu_insert.prof' e 'go tool pprof mem_insert.prof' per analizzarli")
}
