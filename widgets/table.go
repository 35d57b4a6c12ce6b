package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Column describes one column of a list. Width is in terminal cells; a
// Width of 0 makes the column flexible, sharing whatever space the fixed
// columns leave over.
type Column struct {
	Title string
	Width int
}

// renderCells lays one row of cells out against the columns, truncating and
// padding each cell to its column width.
func renderCells(cells []string, cols []Column, width int) string {
	flex := flexWidth(cols, width)
	parts := make([]string, 0, len(cols))
	for i, col := range cols {
		var cell string
		if i < len(cells) {
			cell = strings.ReplaceAll(cells[i], "\n", " ")
		}
		w := col.Width
		if w == 0 {
			w = flex
		}
		if w <= 0 {
			continue
		}
		parts = append(parts, pad(ansi.Truncate(cell, w, "…"), w))
	}
	return ansi.Truncate(strings.Join(parts, "  "), width, "")
}

// flexWidth returns the width available to each zero-width column.
func flexWidth(cols []Column, width int) int {
	fixed, flexible := 0, 0
	for _, col := range cols {
		if col.Width == 0 {
			flexible++
		} else {
			fixed += col.Width
		}
	}
	if flexible == 0 {
		return 0
	}
	gaps := 2 * (len(cols) - 1)
	w := (width - fixed - gaps) / flexible
	if w < 1 {
		w = 1
	}
	return w
}

func pad(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// bar fits text to width on a single line, truncating and padding.
func bar(text string, width int) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	return pad(line, width)
}
