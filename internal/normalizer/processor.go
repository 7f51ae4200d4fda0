// Package normalizer provides per-line normalization and the acceptance
// predicate used by the line pipeline.
package normalizer

import (
	"errors"
	"fmt"
)

// ErrEmptyLine is returned for raw lines that contain nothing to process.
var ErrEmptyLine = errors.New("empty line")

// Processor handles line processing: normalization followed by validation.
type Processor struct {
	transformer *Transformer
	validator   *Validator
}

// NewProcessor creates a new processor instance.
func NewProcessor() *Processor {
	return &Processor{
		transformer: NewTransformer(),
		validator:   NewValidator(),
	}
}

// Process transforms a raw line into a normalized item. It returns
// ErrEmptyLine for empty input, or a wrapped validation error when the
// normalized item fails the acceptance predicate.
func (p *Processor) Process(raw string) (string, error) {
	if raw == "" {
		return "", ErrEmptyLine
	}

	item := p.transformer.Transform(raw)

	if err := p.validator.Validate(item); err != nil {
		return "", fmt.Errorf("validation failed: %w", err)
	}

	return item, nil
}
