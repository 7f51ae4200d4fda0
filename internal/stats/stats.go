// Package stats computes line statistics for a pipeline run.
package stats

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

// LineStats summarizes one pass over an input file.
type LineStats struct {
	// Physical is the total number of raw lines.
	Physical int
	// Blank counts lines that are empty or whitespace-only.
	Blank int
	// Accepted counts items that passed normalization and validation.
	Accepted int
	// Rejected counts non-blank lines that were filtered out.
	Rejected int
	// Words counts UAX#29 words across all accepted items.
	Words int
}

// Collect derives statistics from the raw-line sequence and the accepted
// items produced from it.
func Collect(raw []string, accepted []string) LineStats {
	s := LineStats{
		Physical: len(raw),
		Accepted: len(accepted),
	}

	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			s.Blank++
		}
	}

	s.Rejected = s.Physical - s.Blank - s.Accepted
	if s.Rejected < 0 {
		s.Rejected = 0
	}

	for _, item := range accepted {
		s.Words += CountWords(item)
	}

	return s
}

// CountWords counts word-like segments in s using UAX#29 word boundaries.
// Punctuation and whitespace segments are not counted.
func CountWords(s string) int {
	n := 0

	tokens := words.FromString(s)
	for tokens.Next() {
		if isWordLike(tokens.Value()) {
			n++
		}
	}

	return n
}

func isWordLike(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}

	return false
}
