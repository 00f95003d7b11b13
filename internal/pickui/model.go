package pickui

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/go-logr/logr"

	"github.com/wesen/pick/internal/config"
	"github.com/wesen/pick/pkg/tableview"
)

// Options configures a Model.
type Options struct {
	Title  string // shown in the title bar, usually the input name
	Theme  config.Theme
	Logger logr.Logger
}

// Model is the main application state.
type Model struct {
	Width, Height int

	// Viewport offsets: Top is a row index, Left a column index. Both are
	// recomputed from the cursor after every event.
	Top, Left int

	Table *tableview.View
	Title string

	keys   keyMap
	help   help.Model
	styles styles
	lgr    logr.Logger

	confirmed bool
}

// NewModel creates a model over the given table view.
func NewModel(table *tableview.View, opts Options) Model {
	return Model{
		Table:  table,
		Title:  opts.Title,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: newStyles(opts.Theme),
		lgr:    opts.Logger,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Result reports the picked cell contents and whether the user confirmed.
// An aborted session, or a confirm with nothing selected, yields no lines.
func (m Model) Result() (lines []string, confirmed bool) {
	if !m.confirmed {
		return nil, false
	}
	return m.Table.SelectionContent(), true
}
