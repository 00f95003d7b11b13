package pickui

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up, Down, Left, Right key.Binding
	Toggle                key.Binding
	Clear                 key.Binding
	Column                key.Binding
	Confirm               key.Binding
	Quit                  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Toggle:  key.NewBinding(key.WithKeys("space", " "), key.WithHelp("space", "select")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Column:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "select column")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "print and copy")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "abort")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Up, k.Down, k.Left, k.Right, k.Toggle, k.Column, k.Clear, k.Confirm}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Column, k.Clear},
		{k.Confirm, k.Quit},
	}
}
