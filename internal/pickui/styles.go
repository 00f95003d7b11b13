package pickui

import (
	"charm.land/lipgloss/v2"

	"github.com/wesen/pick/internal/config"
	"github.com/wesen/pick/pkg/cellbuf"
	"github.com/wesen/pick/pkg/tableview"
)

// cellbuf style keys for the table layer.
const (
	styleBlank    cellbuf.StyleKey = 0
	styleNormal   cellbuf.StyleKey = 1
	styleSelected cellbuf.StyleKey = 2
	styleCursor   cellbuf.StyleKey = 3
)

// cellKeys maps the table's style tags onto buffer style keys.
var cellKeys = map[tableview.Style]cellbuf.StyleKey{
	tableview.StyleNormal:   styleNormal,
	tableview.StyleSelected: styleSelected,
	tableview.StyleCursor:   styleCursor,
}

type styles struct {
	cells   map[cellbuf.StyleKey]lipgloss.Style
	band    lipgloss.Style // table band background, behind and between cells
	title   lipgloss.Style
	hint    lipgloss.Style
	preview lipgloss.Style
}

func newStyles(t config.Theme) styles {
	band := styleFor(config.Colors{BG: t.Normal.BG})
	return styles{
		cells: map[cellbuf.StyleKey]lipgloss.Style{
			styleBlank:    band,
			styleNormal:   styleFor(t.Normal),
			styleSelected: styleFor(t.Selected),
			styleCursor:   styleFor(t.Cursor),
		},
		band:    band,
		title:   styleFor(t.Hint).Bold(true),
		hint:    styleFor(t.Hint),
		preview: styleFor(t.Preview),
	}
}

func styleFor(c config.Colors) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c.FG != "" {
		s = s.Foreground(lipgloss.Color(c.FG))
	}
	if c.BG != "" {
		s = s.Background(lipgloss.Color(c.BG))
	}
	if c.Reverse {
		s = s.Reverse(true)
	}
	if c.Bold {
		s = s.Bold(true)
	}
	return s
}
