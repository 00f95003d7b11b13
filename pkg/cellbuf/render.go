package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render converts the buffer into a styled string. The caller provides
// a mapping from StyleKey to lipgloss.Style.
//
// Consecutive cells with the same StyleKey are merged into runs and
// rendered with a single Style.Render() call per run. Keys missing from
// styles render as plain text.
//
// Rows are joined with "\n". An empty buffer (W==0 or H==0) returns "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	lines := make([]string, b.H)
	var chunk []rune

	for y := 0; y < b.H; y++ {
		var sb strings.Builder
		row := b.Cells[y]

		runStart := 0
		runStyle := row[0].Style

		for x := 1; x <= b.W; x++ {
			// sentinel style at end flushes the last run
			curStyle := StyleKey(-1)
			if x < b.W {
				curStyle = row[x].Style
			}
			if curStyle == runStyle {
				continue
			}

			chunk = chunk[:0]
			for i := runStart; i < x; i++ {
				if row[i].Ch != 0 {
					chunk = append(chunk, row[i].Ch)
				}
			}
			if s, ok := styles[runStyle]; ok {
				sb.WriteString(s.Render(string(chunk)))
			} else {
				sb.WriteString(string(chunk))
			}
			runStart = x
			runStyle = curStyle
		}

		lines[y] = sb.String()
	}

	return strings.Join(lines, "\n")
}
