package normalizer

import (
	"strings"
	"unicode"
)

// Transformer handles per-line text normalization.
type Transformer struct{}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform normalizes a raw line: lowercase every rune, drop runes that are
// neither alphanumeric nor whitespace, then trim surrounding whitespace.
// Transform is idempotent: applying it to its own output is a no-op.
func (t *Transformer) Transform(line string) string {
	var b strings.Builder
	b.Grow(len(line))

	for _, r := range line {
		r = unicode.ToLower(r)

		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}
