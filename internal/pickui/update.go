package pickui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m.follow(), nil

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	return m, nil
}

// handleKeys applies exactly one table operation per key, then recomputes
// the viewport offsets.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.lgr.V(1).Info("key", "key", msg.String())

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		m.confirmed = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.Table.Move(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.Table.Move(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.Table.Move(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.Table.Move(0, 1)

	case key.Matches(msg, m.keys.Toggle):
		m.Table.ToggleSelect()
	case key.Matches(msg, m.keys.Clear):
		m.Table.ClearSelection()
	case key.Matches(msg, m.keys.Column):
		m.Table.SelectColumn()

	default:
		return m, nil
	}

	return m.follow(), nil
}

// follow advances the viewport one step towards the cursor.
func (m Model) follow() Model {
	if m.Width <= 0 || m.Height <= 0 {
		return m
	}
	m.Top, m.Left = m.Table.ComputeViewportOffsets(m.Height, m.Width, m.Top, m.Left)
	return m
}
