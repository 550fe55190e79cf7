package letter

import (
	"errors"
	"fmt"
)

var ErrNotAlphabetic = errors.New("not an ASCII letter")

// NotAlphabeticError reports the input that could not be read as a letter.
// Offset is the byte offset of Rune in the string passed to FromString, and 0
// for single character conversions.
type NotAlphabeticError struct {
	Rune   rune
	Offset int
}

func (e *NotAlphabeticError) Error() string {
	return fmt.Sprintf("letter: %q at offset %d: %s", e.Rune, e.Offset, ErrNotAlphabetic)
}

func (e *NotAlphabeticError) Is(target error) bool {
	return target == ErrNotAlphabetic
}
