// Package pipeline implements the synchronous line-processing pass:
// load a text file into raw lines, normalize and filter each line, and
// optionally persist a result set.
package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"linepipe/internal/config"
	"linepipe/internal/logger"
	"linepipe/internal/normalizer"
)

// Pipeline runs a single synchronous pass over one input file. It is not
// safe for concurrent use.
type Pipeline struct {
	// cfg is accepted at construction and treated as immutable. No option
	// currently alters processing behavior (features.strict included).
	cfg       *config.Config
	log       *logger.Logger
	processor *normalizer.Processor

	lines []string

	// Results holds entries written by Save. Process never populates it;
	// callers that want persisted output fill it themselves.
	Results map[string]string
}

// New creates a pipeline with the given configuration and logger.
func New(cfg *config.Config, log *logger.Logger) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		log:       log,
		processor: normalizer.NewProcessor(),
		Results:   make(map[string]string),
	}
}

// Load reads the input file into the raw-line sequence, stripping line
// terminators and preserving order. A nonexistent path is tolerated: Load
// reports it, returns (false, nil), and leaves the sequence unchanged.
// Any other I/O failure is returned as an error.
func (p *Pipeline) Load(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			p.log.Warn("file not found", "path", path)

			return false, nil
		}

		return false, fmt.Errorf("failed to read input file: %w", err)
	}

	p.lines = splitLines(string(data))

	return true, nil
}

// splitLines splits content on line terminators. CRLF endings are handled,
// and a trailing terminator does not produce a final empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// Lines returns the raw-line sequence populated by Load.
func (p *Pipeline) Lines() []string {
	return p.lines
}

// Process runs every raw line through normalization and the acceptance
// predicate, in order. Empty lines produce nothing. Accepted items are
// returned in input order; duplicates are kept. The result set is not
// mutated.
func (p *Pipeline) Process() []string {
	results := []string{}

	for i, raw := range p.lines {
		item, err := p.processor.Process(raw)
		if err != nil {
			p.log.Debug("line skipped", "line", i+1, "reason", err)

			continue
		}

		results = append(results, item)
	}

	return results
}

// Save writes one line per result-set entry to path, truncating any existing
// content. Entries are the mapping's keys, written in sorted order so output
// is deterministic. With an unpopulated result set this produces an empty
// file.
func (p *Pipeline) Save(path string) error {
	keys := make([]string, 0, len(p.Results))
	for k := range p.Results {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	return nil
}
