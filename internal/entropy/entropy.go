// Package entropy computes Shannon entropy and information amount.
package entropy

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/verte-zerg/textentropy/internal/alphabet"
	"github.com/verte-zerg/textentropy/internal/freq"
	"github.com/verte-zerg/textentropy/internal/model"
)

// Average returns -Σ p·log2(p) in bits per symbol.
func Average(freqs []model.CharFrequency) float64 {
	var sum float64
	for _, f := range freqs {
		if f.Frequency <= 0 {
			continue
		}
		sum += f.Frequency * math.Log2(f.Frequency)
	}
	if sum == 0 {
		return 0
	}
	return -sum
}

// InfoAmount returns the total information in bits of a text with the given
// number of symbols.
func InfoAmount(avgEntropy float64, symbols int) float64 {
	return avgEntropy * float64(symbols)
}

// Compute normalizes text with a and derives its statistics.
func Compute(text string, a alphabet.Alphabet) (model.Stats, error) {
	normalized := a.Normalize(text)
	freqs, err := freq.Count(normalized)
	if err != nil {
		return model.Stats{}, fmt.Errorf("no valid characters found for alphabet %s: %w", a.Name(), err)
	}
	symbols := utf8.RuneCountInString(normalized)
	avg := Average(freqs)
	return model.Stats{
		Alphabet:    a.Name(),
		Symbols:     symbols,
		AvgEntropy:  avg,
		InfoAmount:  InfoAmount(avg, symbols),
		Frequencies: freqs,
	}, nil
}
