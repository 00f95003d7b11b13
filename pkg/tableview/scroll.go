package tableview

// ComputeViewportOffsets returns the scroll offsets for the next frame.
//
// Each axis moves by at most one step per call: top follows the cursor once
// it passes the first half of the visible rows, left follows once the right
// edge of the cursor's column leaves the visible columns. A jump of several
// cells therefore catches up over several frames.
func (v *View) ComputeViewportOffsets(termRows, termCols, priorTop, priorLeft int) (top, left int) {
	top, left = priorTop, priorLeft
	row, col := v.cursor.Row, v.cursor.Col

	if row > priorTop+termRows/2-1 {
		top++
	} else if row < priorTop {
		top--
	}

	g := v.grid
	if g.Columns() == 0 || col >= g.Columns() {
		return top, left
	}
	leftEdge := g.ColumnOffset(clamp(priorLeft, 0, g.Columns()))
	if g.ColumnOffset(col+1) > termCols+leftEdge {
		left++
	} else if col < priorLeft {
		left--
	}
	return top, left
}
