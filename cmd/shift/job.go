package main

import (
	"alphabetic/internal/letter"
	"fmt"
)

type Job struct {
	Word   string `yaml:"word"`
	Amount int    `yaml:"amount"`
	Index  int    `yaml:"index"`
}

// Apply shifts the letter at j.Index by j.Amount and returns the reassembled word.
func (j Job) Apply() (string, error) {
	letters, err := letter.FromString(j.Word)
	if err != nil {
		return "", fmt.Errorf("word %q: %w", j.Word, err)
	}
	if j.Index < 0 || j.Index >= len(letters) {
		return "", fmt.Errorf("word %q: index %d out of range [0, %d)", j.Word, j.Index, len(letters))
	}

	letters[j.Index].Shift(j.Amount)
	return letter.Join(letters), nil
}
