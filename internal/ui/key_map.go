package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	nextPage key.Binding
	prevPage key.Binding
	tab      key.Binding
	search   key.Binding
	songs    key.Binding
	reload   key.Binding
	back     key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		nextPage: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		prevPage: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next resource")),
		search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search by id")),
		songs:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "related")),
		reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.tab, k.nextPage, k.prevPage, k.search, k.songs, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.nextPage, k.prevPage},
		{k.tab, k.search, k.songs, k.reload},
		{k.back, k.quit},
	}
}
