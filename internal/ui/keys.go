package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	SetPage key.Binding
	Add     key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Copy    key.Binding
	Tracker key.Binding
	Surahs  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		SetPage: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "set page")),
		Add:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "add")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy board")),
		Tracker: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "tracker")),
		Surahs:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "surahs")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) trackerHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.SetPage, k.Add, k.Delete, k.Refresh, k.Copy, k.Surahs, k.Quit}
}

func (k keyMap) surahsHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Tracker, k.Quit}
}
