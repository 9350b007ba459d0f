// Package model defines shared data structures.
package model

// Config defines analysis and rendering settings after flags and the config
// file have been merged.
type Config struct {
	Alphabet string
	Columns  int
	Align    bool
	Color    bool
}

// CharFrequency is the relative frequency of one symbol in a normalized text.
type CharFrequency struct {
	Char      rune
	Count     int
	Frequency float64
}

// Stats captures the result of analyzing one text.
type Stats struct {
	Alphabet    string
	Symbols     int
	AvgEntropy  float64
	InfoAmount  float64
	Frequencies []CharFrequency
}
