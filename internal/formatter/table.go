// Package formatter renders run reports as aligned markdown tables.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"linepipe/internal/stats"
)

// Report renders the statistics for one run. Format is "table" for an
// aligned markdown table or "plain" for key: value lines.
func Report(input string, s stats.LineStats, format string) string {
	rows := [][]string{
		{"Input", input},
		{"Physical lines", strconv.Itoa(s.Physical)},
		{"Blank lines", strconv.Itoa(s.Blank)},
		{"Accepted items", strconv.Itoa(s.Accepted)},
		{"Rejected lines", strconv.Itoa(s.Rejected)},
		{"Words", strconv.Itoa(s.Words)},
	}

	if format == "plain" {
		var b strings.Builder
		for _, row := range rows {
			fmt.Fprintf(&b, "%s: %s\n", row[0], row[1])
		}

		return b.String()
	}

	return RenderTable([]string{"Metric", "Value"}, rows)
}

// RenderTable builds a markdown table with cells padded to their column's
// display width. Widths use terminal display width, so wide runes align.
func RenderTable(header []string, rows [][]string) string {
	colCount := len(header)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	// Column widths from header and all rows, min 3 so the separator
	// keeps its customary "---".
	widths := make([]int, colCount)
	for i := range widths {
		widths[i] = 3
	}

	measure := func(row []string) {
		for i := 0; i < len(row) && i < colCount; i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	measure(header)
	for _, row := range rows {
		measure(row)
	}

	var b strings.Builder

	writeRow := func(row []string) {
		b.WriteString("|")

		for i := 0; i < colCount; i++ {
			content := ""
			if i < len(row) {
				content = row[i]
			}

			b.WriteString(" ")
			b.WriteString(content)

			if pad := widths[i] - runewidth.StringWidth(content); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}

			b.WriteString(" |")
		}

		b.WriteString("\n")
	}

	writeRow(header)

	b.WriteString("|")
	for i := 0; i < colCount; i++ {
		b.WriteString(" ")
		b.WriteString(strings.Repeat("-", widths[i]))
		b.WriteString(" |")
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(row)
	}

	return b.String()
}
