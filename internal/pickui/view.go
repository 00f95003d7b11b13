package pickui

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/pick/pkg/cellbuf"
	"github.com/wesen/pick/pkg/grid"
	"github.com/wesen/pick/pkg/tealayout"
)

const indent = "    "

// View implements tea.Model.
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes the frame. The table band holds Height/2 rows, which is
// exactly the window the vertical scroll-follow keeps the cursor inside.
func (m Model) render() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	layout := tealayout.NewLayoutBuilder(m.Width, m.Height).
		TopFixed("title", 1).
		TopFixed("table", max(m.Height/2, 1)).
		BottomFixed("help", 1).
		Remaining("preview").
		Build()

	if err := m.Table.CheckSelection(); err != nil {
		m.lgr.Error(err, "invariant violation: selection holds a missing cell")
	}

	preview := layout.Get("preview")
	layers := []*lipgloss.Layer{
		tealayout.BarLayer(layout.Get("title"), m.titleText(), m.styles.title),
		tealayout.LinesLayer(preview, m.previewLines(preview.Rect.Dy()), lipgloss.NewStyle(), 1),
		tealayout.BarLayer(layout.Get("help"), m.help.View(m.keys), m.styles.hint),
	}
	layers = append(layers, m.tableLayers(layout.Get("table"))...)

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)
	return canvas.Render()
}

func (m Model) titleText() string {
	g := m.Table.Grid()
	c := m.Table.Cursor()
	title := m.Title
	if title == "" {
		title = "pick"
	}
	return fmt.Sprintf(" %s │ %d×%d │ row %d col %d │ %d selected",
		title, g.Height(), g.Columns(), c.Row+1, c.Col+1, len(m.Table.Selection()))
}

// tableLayers fills the table band and draws the visible part of the grid,
// starting at row Top and column Left, into a cell buffer sized to the
// part of the grid that is on screen.
func (m Model) tableLayers(r tealayout.Region) []*lipgloss.Layer {
	bg := tealayout.FillLayer(r, m.styles.band, r.Name+"-bg", 0)

	g := m.Table.Grid()
	left := min(max(m.Left, 0), g.Columns())
	originX := g.ColumnOffset(left)
	w := min(r.Rect.Dx(), g.Width()-originX)
	h := min(r.Rect.Dy(), g.Height()-m.Top)
	if w <= 0 || h <= 0 {
		return []*lipgloss.Layer{bg}
	}

	buf := cellbuf.New(w, h, styleBlank)

	for y := 0; y < h; y++ {
		row := m.Top + y
		if row < 0 || row >= g.Height() {
			continue
		}
		for col := 0; col < g.RowLen(row); col++ {
			x := g.ColumnOffset(col) - originX
			width := g.ColumnWidth(col)
			if x >= w {
				break
			}
			if x+width <= 0 {
				continue
			}
			cell := grid.Cell{Row: row, Col: col}
			text, err := g.Get(cell)
			if err != nil {
				var oor *grid.OutOfRangeError
				if errors.As(err, &oor) {
					m.lgr.Error(err, "invariant violation while drawing", "row", row, "col", col)
				}
				continue
			}
			buf.SetPadded(x, y, text, width, cellKeys[m.Table.StyleAt(cell)])
		}
	}

	rendered := buf.Render(m.styles.cells)
	table := lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(1).ID(r.Name)
	return []*lipgloss.Layer{bg, table}
}

// previewLines lists what enter would emit, fitted to height rows. When
// the selection does not fit, the last row says how many cells are hidden.
func (m Model) previewLines(height int) []string {
	if height <= 0 {
		return nil
	}
	content := m.Table.SelectionContent()
	if len(content) == 0 {
		return []string{m.styles.hint.Render("Nothing selected")}
	}
	lines := []string{m.styles.hint.Render(fmt.Sprintf("%d cells selected", len(content)))}
	room := height - 1
	if len(content) > room {
		shown := max(room-1, 0)
		for _, s := range content[:shown] {
			lines = append(lines, m.styles.preview.Render(indent+s))
		}
		if room > 0 {
			lines = append(lines, m.styles.hint.Render(fmt.Sprintf("%s… %d more", indent, len(content)-shown)))
		}
		return lines
	}
	for _, s := range content {
		lines = append(lines, m.styles.preview.Render(indent+s))
	}
	return lines
}
