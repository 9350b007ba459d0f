// Package freq tabulates symbol frequencies of normalized text.
package freq

import (
	"errors"
	"sort"

	"github.com/verte-zerg/textentropy/internal/model"
)

// ErrNoSymbols is returned when the text holds no symbols to count.
var ErrNoSymbols = errors.New("no symbols to count")

// Count returns one CharFrequency per distinct rune of text, in order of first
// occurrence. Frequencies are relative to the rune length of text.
func Count(text string) ([]model.CharFrequency, error) {
	counts := map[rune]int{}
	var order []rune
	total := 0
	for _, r := range text {
		if _, ok := counts[r]; !ok {
			order = append(order, r)
		}
		counts[r]++
		total++
	}
	if total == 0 {
		return nil, ErrNoSymbols
	}
	out := make([]model.CharFrequency, 0, len(order))
	for _, r := range order {
		out = append(out, model.CharFrequency{
			Char:      r,
			Count:     counts[r],
			Frequency: float64(counts[r]) / float64(total),
		})
	}
	return out, nil
}

// Sorted returns a copy of freqs ordered by character code point.
func Sorted(freqs []model.CharFrequency) []model.CharFrequency {
	out := make([]model.CharFrequency, len(freqs))
	copy(out, freqs)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Char < out[j].Char
	})
	return out
}
