package letter

import (
	"fmt"
	"strings"
)

func FromByte(b byte) (Letter, error) {
	switch {
	case 'a' <= b && b <= 'z':
		return Letter{index: b - 'a', letterCase: Lowercase}, nil
	case 'A' <= b && b <= 'Z':
		return Letter{index: b - 'A', letterCase: Uppercase}, nil
	default:
		return Letter{}, &NotAlphabeticError{Rune: rune(b)}
	}
}

func FromRune(r rune) (Letter, error) {
	// Anything past ASCII would be truncated by the byte conversion.
	if r < 0 || r > 0x7f {
		return Letter{}, &NotAlphabeticError{Rune: r}
	}
	return FromByte(byte(r))
}

// FromString converts every character of s in order. It stops at the first
// character that is not an ASCII letter and returns no letters in that case.
func FromString(s string) ([]Letter, error) {
	letters := make([]Letter, 0, len(s))
	for i, r := range s {
		l, err := FromRune(r)
		if err != nil {
			return nil, &NotAlphabeticError{Rune: r, Offset: i}
		}
		letters = append(letters, l)
	}
	return letters, nil
}

// Join is the inverse of FromString.
func Join(letters []Letter) string {
	s := &strings.Builder{}
	s.Grow(len(letters))
	for _, l := range letters {
		s.WriteByte(l.Byte())
	}
	return s.String()
}

func (l Letter) MarshalText() ([]byte, error) {
	return []byte{l.Byte()}, nil
}

func (l *Letter) UnmarshalText(text []byte) error {
	if len(text) != 1 {
		return fmt.Errorf("letter: want a single character, got %q", text)
	}

	v, err := FromByte(text[0])
	if err != nil {
		return err
	}
	*l = v
	return nil
}
