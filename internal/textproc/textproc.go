// Package textproc defines the contract for text processing: tokenization
// and entity detection over captured text. No implementation exists yet; the
// interface fixes the API for a future tokenizer backend.
package textproc

import (
	"context"
	"errors"
)

// ErrNotImplemented is returned by the placeholder processor until a
// tokenizer backend lands.
var ErrNotImplemented = errors.New("textproc: no tokenizer backend configured")

// Entity is a detected span of interest within a text.
type Entity struct {
	// Kind labels the entity class, for example "person" or "url".
	Kind string
	// Start and End delimit the entity as byte offsets into the input.
	Start int
	End   int
}

// Processor tokenizes text and detects entities.
type Processor interface {
	// Tokenize splits text into tokens.
	Tokenize(ctx context.Context, text string) ([]string, error)
	// DetectEntities finds entity spans in text.
	DetectEntities(ctx context.Context, text string) ([]Entity, error)
}

// Unimplemented is the placeholder Processor.
type Unimplemented struct{}

// Tokenize always returns ErrNotImplemented.
func (Unimplemented) Tokenize(ctx context.Context, text string) ([]string, error) {
	return nil, ErrNotImplemented
}

// DetectEntities always returns ErrNotImplemented.
func (Unimplemented) DetectEntities(ctx context.Context, text string) ([]Entity, error) {
	return nil, ErrNotImplemented
}
