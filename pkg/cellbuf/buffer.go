// Package cellbuf provides a 2D character buffer with per-cell styling
// and efficient Lipgloss-based rendering.
//
// Each cell holds a rune and a StyleKey (an int enum). At render time,
// the caller provides a map[StyleKey]lipgloss.Style so the buffer is
// decoupled from specific color schemes.
//
// Double-width runes occupy two cells: the rune itself and a continuation
// cell (Ch == 0) that Render skips.
package cellbuf

import "github.com/mattn/go-runewidth"

// StyleKey identifies a visual style. The caller defines the mapping
// from StyleKey to lipgloss.Style at render time.
type StyleKey int

// Cell is a single character in the buffer with an associated style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a 2D grid of styled cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
}

// New creates a Buffer of the given size, filled with spaces in the
// given default style.
func New(w, h int, defaultStyle StyleKey) *Buffer {
	w = max(w, 0)
	h = max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		b.Cells[y] = make([]Cell, w)
	}
	b.Fill(defaultStyle)
	return b
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set writes a single character at (x, y). Out-of-bounds writes are
// silently ignored.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes s starting at (x, y) and returns the column after the
// last written rune. Cells outside the buffer are skipped, so x may start
// negative to clip the left side of s. A wide rune that would straddle
// either buffer edge is replaced by spaces.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) int {
	for _, ch := range s {
		rw := runewidth.RuneWidth(ch)
		if rw == 0 {
			continue
		}
		if rw == 2 && (!b.InBounds(x, y) || !b.InBounds(x+1, y)) {
			b.Set(x, y, ' ', style)
			b.Set(x+1, y, ' ', style)
		} else {
			b.Set(x, y, ch, style)
			if rw == 2 {
				b.Set(x+1, y, 0, style)
			}
		}
		x += rw
	}
	return x
}

// SetPadded writes s left-justified in a field of width columns, filling
// the remainder with spaces in the same style.
func (b *Buffer) SetPadded(x, y int, s string, width int, style StyleKey) {
	s = runewidth.Truncate(s, width, "")
	end := b.SetString(x, y, s, style)
	for ; end < x+width; end++ {
		b.Set(end, y, ' ', style)
	}
}

// Fill resets every cell to a space with the given style.
func (b *Buffer) Fill(style StyleKey) {
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
}
