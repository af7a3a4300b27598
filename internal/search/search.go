// Package search defines the contract for vector similarity search over
// stored memory snippets. No backend is implemented yet; the interface fixes
// the API so a future index (for example a FAISS sidecar or a pure-Go
// approximate nearest neighbor index) can be plugged in without touching
// callers.
package search

import (
	"context"
	"errors"
)

// ErrNotImplemented is returned by the placeholder searcher until a vector
// index backend lands.
var ErrNotImplemented = errors.New("search: no index backend configured")

// Result is a single similarity match.
type Result struct {
	// ID identifies the matched document.
	ID string
	// Score is the similarity score, higher is closer.
	Score float32
}

// Searcher performs vector similarity search.
type Searcher interface {
	// Search returns the topK most similar documents to the query vector.
	Search(ctx context.Context, query []float32, topK int) ([]Result, error)
}

// Unimplemented is the placeholder Searcher.
type Unimplemented struct{}

// Search always returns ErrNotImplemented.
func (Unimplemented) Search(ctx context.Context, query []float32, topK int) ([]Result, error) {
	return nil, ErrNotImplemented
}
