// Package letter provides a value type for a single letter of the Latin alphabet
// that can be shifted forward or backward with wraparound.
package letter

import "fmt"

// AlphabetSize is the number of letters in the alphabet.
const AlphabetSize = 26

type Case uint8

const (
	Lowercase Case = iota
	Uppercase
)

func (c Case) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	default:
		return fmt.Sprintf("Case(%d)", uint8(c))
	}
}

func (c Case) base() byte {
	if c == Uppercase {
		return 'A'
	}
	return 'a'
}

// Letter is a position in the alphabet paired with a case.
// The zero value is 'a'.
type Letter struct {
	index      uint8
	letterCase Case
}

// FromIndex returns the letter at the given position.
// It panics if index is not below AlphabetSize.
func FromIndex(index uint8, c Case) Letter {
	if index >= AlphabetSize {
		panic(fmt.Sprintf("letter: index %d out of range [0, %d)", index, AlphabetSize))
	}
	return Letter{index: index, letterCase: c}
}

func (l Letter) Index() uint8 {
	return l.index
}

func (l Letter) Case() Case {
	return l.letterCase
}

// Shift moves the letter amount places through the alphabet, backward if amount
// is negative, wrapping around at either end. The case is kept.
func (l *Letter) Shift(amount int) *Letter {
	// Reduce first so index+offset can't overflow.
	offset := amount%AlphabetSize + AlphabetSize
	l.index = uint8((int(l.index) + offset) % AlphabetSize)
	return l
}

func (l Letter) Byte() byte {
	return l.letterCase.base() + l.index
}

func (l Letter) Rune() rune {
	return rune(l.Byte())
}

func (l Letter) String() string {
	return string(l.Rune())
}
