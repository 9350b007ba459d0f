package freq

import (
	"errors"
	"math"
	"testing"

	"github.com/verte-zerg/textentropy/internal/model"
)

func TestCount(t *testing.T) {
	freqs, err := Count("aaab")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if len(freqs) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(freqs))
	}
	if freqs[0].Char != 'a' || freqs[0].Count != 3 || freqs[0].Frequency != 0.75 {
		t.Fatalf("unexpected first entry: %+v", freqs[0])
	}
	if freqs[1].Char != 'b' || freqs[1].Count != 1 || freqs[1].Frequency != 0.25 {
		t.Fatalf("unexpected second entry: %+v", freqs[1])
	}
}

func TestCountUsesRuneLength(t *testing.T) {
	freqs, err := Count("ааб")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if len(freqs) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(freqs))
	}
	if math.Abs(freqs[0].Frequency-2.0/3.0) > 1e-12 {
		t.Fatalf("unexpected frequency for %q: %f", freqs[0].Char, freqs[0].Frequency)
	}
}

func TestCountSumsToOne(t *testing.T) {
	for _, text := range []string{"a", "abc", "привітсвіте", "qwertyuiopasdfghjkl+/0987"} {
		freqs, err := Count(text)
		if err != nil {
			t.Fatalf("count %q: %v", text, err)
		}
		var sum float64
		for _, f := range freqs {
			if f.Frequency <= 0 || f.Frequency > 1 {
				t.Fatalf("frequency out of range for %q: %+v", text, f)
			}
			sum += f.Frequency
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("frequencies of %q sum to %f", text, sum)
		}
	}
}

func TestCountEmpty(t *testing.T) {
	_, err := Count("")
	if !errors.Is(err, ErrNoSymbols) {
		t.Fatalf("expected ErrNoSymbols, got %v", err)
	}
}

func TestSorted(t *testing.T) {
	freqs := []model.CharFrequency{
		{Char: 'я', Frequency: 0.2},
		{Char: 'a', Frequency: 0.3},
		{Char: '+', Frequency: 0.5},
	}
	sorted := Sorted(freqs)
	if sorted[0].Char != '+' || sorted[1].Char != 'a' || sorted[2].Char != 'я' {
		t.Fatalf("unexpected order: %+v", sorted)
	}
	if freqs[0].Char != 'я' {
		t.Fatalf("input slice was modified")
	}
}
