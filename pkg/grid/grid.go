// Package grid parses delimited text lines into a ragged table of cells and
// computes the column layout used to render it.
//
// A Grid is immutable after construction. Rows keep their own length; all
// column bounds are checked against the specific row, never a global count.
package grid

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Padding is added to every column's content width.
const Padding = 2

// Cell identifies one table entry by row and column index.
type Cell struct {
	Row, Col int
}

// Grid is a parsed table plus its derived column layout.
type Grid struct {
	rows    [][]string
	widths  []int
	offsets []int // len(widths)+1, offsets[0] == 0
}

// New builds a Grid from raw lines. An empty delimiter splits on runs of
// whitespace; any other delimiter is matched literally and keeps empty
// cells between adjacent delimiters.
func New(lines []string, delimiter string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, &ConstructionError{Reason: "no input lines"}
	}

	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = splitLine(stripTerminator(line), delimiter)
	}

	widths, err := columnWidths(rows)
	if err != nil {
		return nil, err
	}

	return &Grid{
		rows:    rows,
		widths:  widths,
		offsets: columnOffsets(widths),
	}, nil
}

// Parse reads every line from r and builds a Grid from them. Lines may be
// of any length; a final line without a terminator is kept.
func Parse(r io.Reader, delimiter string) (*Grid, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ConstructionError{Reason: "reading input", Err: err}
		}
	}
	return New(lines, delimiter)
}

func stripTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

func splitLine(line, delimiter string) []string {
	if delimiter == "" {
		return strings.Fields(line)
	}
	return strings.Split(line, delimiter)
}

// columnWidths returns max display width per column index plus Padding.
// The widest row determines the column count.
func columnWidths(rows [][]string) ([]int, error) {
	var widths []int
	for _, row := range rows {
		for j, cell := range row {
			w := runewidth.StringWidth(cell)
			if j < len(widths) {
				widths[j] = max(widths[j], w)
			} else {
				widths = append(widths, w)
			}
		}
	}

	total := 0
	for j, w := range widths {
		if w > math.MaxInt-Padding || total > math.MaxInt-(w+Padding) {
			return nil, &ConstructionError{Reason: "column width overflow"}
		}
		widths[j] = w + Padding
		total += widths[j]
	}
	return widths, nil
}

func columnOffsets(widths []int) []int {
	offsets := make([]int, len(widths)+1)
	for i := 1; i <= len(widths); i++ {
		offsets[i] = offsets[i-1] + widths[i-1]
	}
	return offsets
}

// Get returns the raw, unpadded text of a cell.
func (g *Grid) Get(c Cell) (string, error) {
	if c.Row < 0 || c.Row >= len(g.rows) || c.Col < 0 || c.Col >= len(g.rows[c.Row]) {
		return "", &OutOfRangeError{Cell: c}
	}
	return g.rows[c.Row][c.Col], nil
}

// ColumnOffset returns the horizontal start of column index. Index
// Columns() is valid and returns the right edge of the last column.
func (g *Grid) ColumnOffset(index int) int {
	return g.offsets[index]
}

// ColumnWidth returns the padded width of a column.
func (g *Grid) ColumnWidth(index int) int {
	return g.widths[index]
}

// Width is the sum of all column widths.
func (g *Grid) Width() int {
	return g.offsets[len(g.widths)]
}

// Height is the number of rows.
func (g *Grid) Height() int {
	return len(g.rows)
}

// Columns is the number of columns of the widest row.
func (g *Grid) Columns() int {
	return len(g.widths)
}

// RowLen returns the number of cells in row r.
func (g *Grid) RowLen(r int) int {
	return len(g.rows[r])
}

// Row returns a copy of row r.
func (g *Grid) Row(r int) []string {
	return append([]string(nil), g.rows[r]...)
}
