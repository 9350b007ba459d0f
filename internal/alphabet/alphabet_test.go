package alphabet

import "testing"

func TestAlphabetSizes(t *testing.T) {
	if Cyrillic.Len() != 33 {
		t.Fatalf("expected 33 cyrillic symbols, got %d", Cyrillic.Len())
	}
	if Base64.Len() != 64 {
		t.Fatalf("expected 64 base64 symbols, got %d", Base64.Len())
	}
}

func TestNormalizeDropsForeignRunes(t *testing.T) {
	got := Cyrillic.Normalize("Привіт, world! Ґанок 42")
	if got != "привітґанок" {
		t.Fatalf("unexpected normalized text: %q", got)
	}
	got = Base64.Normalize("AaBb +/= ж")
	if got != "aabb+/" {
		t.Fatalf("unexpected normalized text: %q", got)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := Cyrillic.Normalize(""); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := Cyrillic.Normalize("hello 123"); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Слава Україні!", "QUJDRA==", "їжак Ґ", ""}
	for _, a := range []Alphabet{Cyrillic, Base64} {
		for _, in := range inputs {
			once := a.Normalize(in)
			if twice := a.Normalize(once); twice != once {
				t.Fatalf("%s: normalize not idempotent for %q: %q != %q", a.Name(), in, twice, once)
			}
		}
	}
}

func TestNormalizeCaseInsensitive(t *testing.T) {
	if Cyrillic.Normalize("ЇЖАК") != Cyrillic.Normalize("їжак") {
		t.Fatalf("expected case-insensitive normalization")
	}
	if Base64.Normalize("AaBb") != "aabb" {
		t.Fatalf("expected base64 input to be lower-cased")
	}
}

func TestNormalizeComposesDecomposedLetters(t *testing.T) {
	// и + combining breve composes to й.
	if got := Cyrillic.Normalize("\u0438\u0306"); got != "\u0439" {
		t.Fatalf("expected composed letter, got %q", got)
	}
}

func TestByName(t *testing.T) {
	a, err := ByName(" Base64 ")
	if err != nil {
		t.Fatalf("by name: %v", err)
	}
	if a.Name() != NameBase64 {
		t.Fatalf("unexpected alphabet: %s", a.Name())
	}
	if _, err := ByName("latin"); err == nil {
		t.Fatalf("expected error for unknown alphabet")
	}
}
