// Package textfile loads input documents.
package textfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when a file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// Load reads the whole file at path as UTF-8 text.
func Load(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}
	return string(data), nil
}
