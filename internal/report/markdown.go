package report

import (
	"fmt"
	"strings"
)

const noResources = "_No resources found_\n"

// escapeCell keeps cell content from breaking the table structure.
func escapeCell(cell string) string {
	cell = strings.ReplaceAll(cell, "|", `\|`)
	return strings.ReplaceAll(cell, "\n", " ")
}

// Table renders a column-padded markdown table. Every column is padded to
// the width of its widest cell so the raw text stays readable too.
func Table(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return noResources
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	escaped := make([][]string, len(rows))
	for r, row := range rows {
		escaped[r] = make([]string, len(headers))
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = escapeCell(row[i])
			}
			escaped[r][i] = cell
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for i, cell := range cells {
			fmt.Fprintf(&b, " %-*s |", widths[i], cell)
		}
		b.WriteString("\n")
	}

	writeRow(headers)
	b.WriteString("|")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("|")
	}
	b.WriteString("\n")
	for _, row := range escaped {
		writeRow(row)
	}
	return b.String()
}

// joinLimited joins up to max items, noting how many were left out.
func joinLimited(items []string, sep string, max int) string {
	if len(items) <= max {
		return strings.Join(items, sep)
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(items[:max], sep), len(items)-max)
}
