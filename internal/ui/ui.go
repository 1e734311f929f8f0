package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prittywoman/harmonyctl/internal/browse"
	"github.com/prittywoman/harmonyctl/internal/catalog"
	"github.com/prittywoman/harmonyctl/internal/shared"
)

type pageLoadedMsg struct {
	err error
}

type lookupDoneMsg struct {
	err error
}

type relationDoneMsg struct {
	err error
}

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	panes     []pane
	active    int
	pageSize  int
	width     int
	height    int
	items     list.Model
	input     textinput.Model
	searching bool
	status    string
	help      help.Model
	keys      keyMap
}

// NewModel creates a new TUI model over the catalog client and shared
// credential.
func NewModel(ctx context.Context, client *catalog.Client, creds catalog.TokenSource, pageSize int) *Model {
	if pageSize < 1 {
		pageSize = 10
	}

	input := textinput.New()
	input.Placeholder = "entity id"
	input.CharLimit = 10
	input.Width = 16

	panes := newPanes(client, creds)

	items := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	items.Title = panes[0].name()
	items.SetShowHelp(false)

	return &Model{
		ctx:      ctx,
		panes:    panes,
		pageSize: pageSize,
		items:    items,
		input:    input,
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

func (m *Model) pane() pane { return m.panes[m.active] }

// Init loads the first page of the first resource.
func (m *Model) Init() tea.Cmd {
	return m.pane().load(m.ctx, 1, m.pageSize)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.items.SetSize(msg.Width-4, msg.Height-12)
		return m, nil

	case pageLoadedMsg:
		// A superseded load means a newer page already rendered; nothing to
		// report.
		if msg.err != nil && !errors.Is(msg.err, shared.ErrSuperseded) {
			m.status = styles.err.Render(msg.err.Error())
		} else if msg.err == nil {
			m.status = ""
		}
		m.syncList()
		return m, nil

	case lookupDoneMsg:
		if msg.err != nil {
			m.status = styles.err.Render(msg.err.Error())
		} else {
			m.status = ""
		}
		return m, nil

	case relationDoneMsg:
		if msg.err != nil {
			m.status = styles.err.Render(msg.err.Error())
		} else {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKeys(msg)
		}
		return m.handleBrowseKeys(msg)
	}

	var cmd tea.Cmd
	m.items, cmd = m.items.Update(msg)
	return m, cmd
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back):
		m.searching = false
		m.input.Blur()
		return m, nil
	case msg.String() == "enter":
		m.searching = false
		m.input.Blur()
		return m, m.pane().lookup(m.ctx, m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.tab):
		m.active = (m.active + 1) % len(m.panes)
		m.items.Title = m.pane().name()
		m.status = ""
		return m, m.pane().reload(m.ctx)

	case key.Matches(msg, m.keys.nextPage):
		return m, m.pane().advance(m.ctx, browse.Next)

	case key.Matches(msg, m.keys.prevPage):
		return m, m.pane().advance(m.ctx, browse.Previous)

	case key.Matches(msg, m.keys.reload):
		return m, m.pane().reload(m.ctx)

	case key.Matches(msg, m.keys.search):
		m.searching = true
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.songs):
		if cmd := m.pane().resolve(m.ctx, m.items.Index()); cmd != nil {
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.items, cmd = m.items.Update(msg)
	return m, cmd
}

// syncList rebuilds the visible list from the active pane's cached page.
func (m *Model) syncList() {
	m.items.SetItems(m.pane().rows())
	if m.items.Width() == 0 && m.width > 0 {
		m.items.SetSize(m.width-4, m.height-12)
	}
}

// View renders the active pane: list, pagination status, lookup and
// relation panels, and contextual help.
func (m *Model) View() string {
	out := fmt.Sprintf("%s\n%s\n", m.items.View(), styles.help.Render(m.pane().pageStatus()))

	if m.searching {
		out += fmt.Sprintf("\nSearch by id: %s\n", m.input.View())
	}

	if panel := m.pane().lookupPanel(); panel != "" {
		out += fmt.Sprintf("\n%s\n", panel)
	}
	if panel := m.pane().relationPanel(); panel != "" {
		out += fmt.Sprintf("\n%s", panel)
	}
	if m.status != "" {
		out += fmt.Sprintf("\n%s\n", m.status)
	}

	return fmt.Sprintf("%s\n%s", out, m.help.ShortHelpView(m.keys.ShortHelp()))
}
