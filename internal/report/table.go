package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Chunk splits items into consecutive slices of at most size elements.
func Chunk(items []string, size int) [][]string {
	if size <= 0 || len(items) == 0 {
		return nil
	}
	rows := make([][]string, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		rows = append(rows, items[i:end])
	}
	return rows
}

func formatRows(rows [][]string, sep string, align bool) []string {
	var widths []int
	if align {
		widths = columnWidths(rows)
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, sep))
	}
	return lines
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func formatRow(row []string, widths []int, sep string) string {
	var b strings.Builder
	for i, cell := range row {
		if i > 0 {
			b.WriteString(sep)
		}
		// The last cell is never padded so rows carry no trailing blanks.
		if i < len(widths) && i < len(row)-1 {
			cell = padCell(cell, widths[i])
		}
		b.WriteString(cell)
	}
	return b.String()
}

func padCell(value string, width int) string {
	valueWidth := displayWidth(value)
	if valueWidth >= width {
		return value
	}
	return value + strings.Repeat(" ", width-valueWidth)
}

var widthCondition = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

func displayWidth(value string) int {
	return widthCondition.StringWidth(value)
}
