package hnsw

import "errors"

// Construction-time precondition violations, returned from NewBuilder
// rather than panicking — callers are expected to check them.
var (
	ErrEmptyLevels   = errors.New("hnsw: point levels must not be empty")
	ErrInvalidM      = errors.New("hnsw: m must be positive")
	ErrInvalidM0     = errors.New("hnsw: m0 must be at least m")
	ErrInvalidEf     = errors.New("hnsw: ef_construct must be positive")
	ErrInvalidEPNum  = errors.New("hnsw: entry_points_num must be positive")
	ErrNilScorer     = errors.New("hnsw: scorer must be provided")
	ErrNegativeLevel = errors.New("hnsw: point levels must be non-negative")
)
