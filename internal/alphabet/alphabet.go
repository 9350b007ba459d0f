// Package alphabet defines the symbol sets accepted by the analyzer and the
// normalizer that filters text down to them.
package alphabet

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const (
	cyrillicSymbols = "абвгґдеєжзиіїйклмнопрстуфхцчшщьюя"
	base64Symbols   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
)

// Names accepted by ByName.
const (
	NameCyrillic = "cyrillic"
	NameBase64   = "base64"
)

var (
	// Cyrillic is the 33-letter Ukrainian alphabet.
	Cyrillic = newAlphabet(NameCyrillic, cyrillicSymbols)
	// Base64 is the 64-symbol Base64 alphabet.
	Base64 = newAlphabet(NameBase64, base64Symbols)
)

// Alphabet is an immutable set of symbols.
type Alphabet struct {
	name    string
	symbols map[rune]struct{}
}

func newAlphabet(name, symbols string) Alphabet {
	set := make(map[rune]struct{}, len(symbols))
	for _, r := range symbols {
		set[r] = struct{}{}
	}
	return Alphabet{name: name, symbols: set}
}

// ByName resolves one of the predefined alphabets.
func ByName(name string) (Alphabet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameCyrillic:
		return Cyrillic, nil
	case NameBase64:
		return Base64, nil
	default:
		return Alphabet{}, fmt.Errorf("unknown alphabet %q (available: %s, %s)", name, NameCyrillic, NameBase64)
	}
}

// Name returns the alphabet identifier.
func (a Alphabet) Name() string {
	return a.name
}

// Len returns the number of symbols in the alphabet.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// Contains reports whether r belongs to the alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.symbols[r]
	return ok
}

// Normalize lower-cases text and drops every rune outside the alphabet,
// keeping the original order.
func (a Alphabet) Normalize(text string) string {
	if text == "" {
		return ""
	}
	lower := cases.Lower(language.Ukrainian).String(norm.NFC.String(text))
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if a.Contains(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
