// Package report renders analysis results as human-readable text.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/textentropy/internal/freq"
	"github.com/verte-zerg/textentropy/internal/model"
)

// DefaultColumns is the number of frequency entries per table row.
const DefaultColumns = 3

const (
	header    = "__________STATS__________"
	cellSep   = "  "
	floatFmt  = "%.3f"
	headerHex = "#C89A3A"
)

var headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(headerHex)).Bold(true)

// Options controls table layout and styling.
type Options struct {
	Columns int
	Align   bool
	Color   bool
}

// Render writes the stats block for s to w.
func Render(w io.Writer, s model.Stats, opts Options) error {
	title := header
	if shouldUseColor(w, opts.Color) {
		title = headerStyle.Render(header)
	}
	lines := []string{
		title,
		"AVERAGE TEXT ENTROPY: " + FormatFloat(s.AvgEntropy),
		"AMOUNT OF INFO: " + FormatFloat(s.InfoAmount),
		"WORD FREQUENCIES:",
	}
	lines = append(lines, FrequencyTable(s.Frequencies, opts)...)
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// FrequencyTable formats freqs sorted by character as "char: freq" cells,
// grouped into rows of opts.Columns.
func FrequencyTable(freqs []model.CharFrequency, opts Options) []string {
	columns := opts.Columns
	if columns <= 0 {
		columns = DefaultColumns
	}
	sorted := freq.Sorted(freqs)
	cells := make([]string, 0, len(sorted))
	for _, f := range sorted {
		cells = append(cells, fmt.Sprintf("%c: %s", f.Char, FormatFloat(f.Frequency)))
	}
	return formatRows(Chunk(cells, columns), cellSep, opts.Align)
}

// FormatFloat renders v with three decimals.
func FormatFloat(v float64) string {
	return fmt.Sprintf(floatFmt, v)
}

func shouldUseColor(w io.Writer, enabled bool) bool {
	if !enabled || os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
