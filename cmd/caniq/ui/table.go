package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SupportTable renders normalized compatibility rows as a static table.
type SupportTable struct {
	Headers []string
	Rows    [][]string
}

// NewSupportTable creates a table with the standard compatibility headers.
func NewSupportTable() *SupportTable {
	return &SupportTable{
		Headers: []string{"Browser", "Support", "Notes"},
	}
}

// AddRow appends one row of cells.
func (t *SupportTable) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// View renders the table. Multi-line cells (resolved notes) occupy one
// terminal line each, aligned under their column.
func (t *SupportTable) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	// Column widths come from the widest line in any cell; lipgloss.Width
	// is emoji- and ANSI-aware.
	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(colWidths) {
				continue
			}
			for _, line := range strings.Split(cell, "\n") {
				if w := lipgloss.Width(line); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}
	for i := range colWidths {
		colWidths[i] += 2
	}

	headerStyle := styles.Bold.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)
	sepStyle := styles.Muted

	var sb strings.Builder

	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(colWidths[i]).Render(h))
		if i < len(t.Headers)-1 {
			sb.WriteString(sepStyle.Render("|"))
		}
	}
	sb.WriteString("\n")

	totalWidth := len(t.Headers) - 1
	for _, w := range colWidths {
		totalWidth += w
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("-", totalWidth)) + "\n")

	for _, row := range t.Rows {
		for _, line := range splitRowLines(row) {
			for i, cell := range line {
				if i >= len(colWidths) {
					continue
				}
				sb.WriteString(rowStyle.Width(colWidths[i]).Render(cell))
				if i < len(line)-1 {
					sb.WriteString(sepStyle.Render("|"))
				}
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// splitRowLines expands a row with multi-line cells into aligned terminal
// lines, padding the shorter cells with empty strings.
func splitRowLines(row []string) [][]string {
	cells := make([][]string, len(row))
	height := 1
	for i, cell := range row {
		cells[i] = strings.Split(cell, "\n")
		if len(cells[i]) > height {
			height = len(cells[i])
		}
	}

	lines := make([][]string, height)
	for l := 0; l < height; l++ {
		line := make([]string, len(row))
		for i := range row {
			if l < len(cells[i]) {
				line[i] = cells[i][l]
			}
		}
		lines[l] = line
	}
	return lines
}
