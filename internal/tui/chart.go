package tui

import (
	"strings"

	"github.com/f3rmion/kana"
	"github.com/mattn/go-runewidth"
)

// FormatTable lays t out as plain text in script s: a header line of column
// names, then one line per chart row. Cells are padded to the display width
// of their column, so kana and romaji columns line up in a terminal.
func FormatTable(t kana.Table, s kana.Script) string {
	columns := t.Columns()
	if len(columns) == 0 {
		return ""
	}

	lines := make([][]string, 0, t.Rows()+1)
	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.String()
	}
	lines = append(lines, header)
	for r := 0; r < t.Rows(); r++ {
		line := make([]string, t.Cols())
		for c, m := range t.Row(r) {
			if m.IsValid() {
				line[c] = m.In(s)
			}
		}
		lines = append(lines, line)
	}

	widths := make([]int, len(columns))
	for _, line := range lines {
		for c, cell := range line {
			widths[c] = max(widths[c], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	for i, line := range lines {
		var row strings.Builder
		for c, cell := range line {
			if c > 0 {
				row.WriteString("  ")
			}
			row.WriteString(runewidth.FillRight(cell, widths[c]))
		}
		b.WriteString(strings.TrimRight(row.String(), " "))
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
