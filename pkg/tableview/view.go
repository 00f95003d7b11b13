// Package tableview wraps a grid.Grid with a cursor, an ordered
// multi-cell selection and the scroll-follow logic that keeps the cursor
// inside a bounded viewport.
//
// View never touches terminal state. Callers ask StyleAt which of the three
// style tags a cell should be drawn with and map that to their own styles.
package tableview

import (
	"github.com/wesen/pick/pkg/grid"
	"github.com/wesen/pick/pkg/orderedset"
)

// Style tags a cell for drawing.
type Style int

const (
	StyleNormal Style = iota
	StyleSelected
	StyleCursor
)

func (s Style) String() string {
	switch s {
	case StyleCursor:
		return "cursor"
	case StyleSelected:
		return "selected"
	default:
		return "normal"
	}
}

// View is a navigable selection over an immutable Grid.
type View struct {
	grid      *grid.Grid
	cursor    grid.Cell
	selection *orderedset.Set[grid.Cell]
}

// New creates a View with the cursor at (0,0) and nothing selected.
func New(g *grid.Grid) *View {
	return &View{grid: g, selection: orderedset.New[grid.Cell]()}
}

// Grid returns the underlying grid.
func (v *View) Grid() *grid.Grid { return v.grid }

// Cursor returns the current cursor position.
func (v *View) Cursor() grid.Cell { return v.cursor }

// Move shifts the cursor by the given deltas, clamping the row to the grid
// and the column to the destination row's length. There is no wraparound.
func (v *View) Move(dRow, dCol int) {
	row := clamp(v.cursor.Row+dRow, 0, v.grid.Height()-1)
	col := clamp(v.cursor.Col+dCol, 0, v.grid.RowLen(row)-1)
	v.cursor = grid.Cell{Row: row, Col: col}
}

// cursorOnCell is false only when the cursor sits on an empty row.
func (v *View) cursorOnCell() bool {
	return v.cursor.Col < v.grid.RowLen(v.cursor.Row)
}

// ToggleSelect flips the cursor cell's membership in the selection.
func (v *View) ToggleSelect() {
	if !v.cursorOnCell() {
		return
	}
	v.selection.Toggle(v.cursor)
}

// ClearSelection empties the selection.
func (v *View) ClearSelection() {
	v.selection.Clear()
}

// SelectColumn toggles every cell in the cursor's column, skipping rows
// too short to have one.
func (v *View) SelectColumn() {
	col := v.cursor.Col
	for r := 0; r < v.grid.Height(); r++ {
		if col >= v.grid.RowLen(r) {
			continue
		}
		v.selection.Toggle(grid.Cell{Row: r, Col: col})
	}
}

// IsSelected reports whether c is in the selection.
func (v *View) IsSelected(c grid.Cell) bool {
	return v.selection.Has(c)
}

// Selection returns the selected cells in insertion order.
func (v *View) Selection() []grid.Cell {
	return v.selection.Items()
}

// SelectionContent returns the text of each selected cell in insertion
// order. Cells that do not exist in the grid are skipped.
func (v *View) SelectionContent() []string {
	out, _ := v.selectionContent()
	return out
}

// CheckSelection reports the first selected cell that does not exist in the
// grid, as a *grid.OutOfRangeError. It is nil while the view's invariants
// hold.
func (v *View) CheckSelection() error {
	_, err := v.selectionContent()
	return err
}

func (v *View) selectionContent() ([]string, error) {
	cells := v.selection.Items()
	out := make([]string, 0, len(cells))
	var firstErr error
	for _, c := range cells {
		s, err := v.grid.Get(c)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out = append(out, s)
	}
	return out, firstErr
}

// StyleAt returns the style tag for c. The cursor wins over selection.
func (v *View) StyleAt(c grid.Cell) Style {
	switch {
	case c == v.cursor:
		return StyleCursor
	case v.selection.Has(c):
		return StyleSelected
	default:
		return StyleNormal
	}
}

func clamp(x, lo, hi int) int {
	return max(lo, min(hi, x))
}
