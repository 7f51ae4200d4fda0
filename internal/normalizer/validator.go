package normalizer

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

// MinItemLength is the minimum rune count for an accepted item.
const MinItemLength = 3

// Validation errors.
var (
	ErrItemTooShort = errors.New("item is shorter than the minimum length")
	ErrItemNoLetter = errors.New("item contains no alphabetic character")
)

// Validator applies the acceptance predicate to normalized items.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks a normalized item against the acceptance rules:
// at least MinItemLength runes and at least one alphabetic character.
func (v *Validator) Validate(item string) error {
	if utf8.RuneCountInString(item) < MinItemLength {
		return ErrItemTooShort
	}

	for _, r := range item {
		if unicode.IsLetter(r) {
			return nil
		}
	}

	return ErrItemNoLetter
}
