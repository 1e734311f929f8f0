package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prittywoman/harmonyctl/internal/browse"
	"github.com/prittywoman/harmonyctl/internal/catalog"
)

// pane abstracts one resource view over its typed controller so the model
// can treat all five resources uniformly.
type pane interface {
	name() string
	load(ctx context.Context, page, pageSize int) tea.Cmd
	advance(ctx context.Context, dir browse.Direction) tea.Cmd
	reload(ctx context.Context) tea.Cmd
	rows() []list.Item
	pageStatus() string
	lookup(ctx context.Context, id string) tea.Cmd
	lookupPanel() string
	resolve(ctx context.Context, selected int) tea.Cmd
	relationPanel() string
}

// resourcePane binds a controller and lookup for entity type T to the pane
// interface. related/relationText are nil for resources without a dependent
// collection.
type resourcePane[T any] struct {
	title        string
	ctrl         *browse.Controller[T]
	look         *browse.Lookup[T]
	row          func(T) row
	detail       func(T) string
	related      func(ctx context.Context, owner T) tea.Cmd
	relationText func() string
}

func (p *resourcePane[T]) name() string { return p.title }

func (p *resourcePane[T]) load(ctx context.Context, page, pageSize int) tea.Cmd {
	return func() tea.Msg {
		return pageLoadedMsg{err: p.ctrl.LoadPage(ctx, page, pageSize)}
	}
}

func (p *resourcePane[T]) advance(ctx context.Context, dir browse.Direction) tea.Cmd {
	return func() tea.Msg {
		return pageLoadedMsg{err: p.ctrl.Advance(ctx, dir)}
	}
}

func (p *resourcePane[T]) reload(ctx context.Context) tea.Cmd {
	page := p.ctrl.Page()
	return p.load(ctx, page.Page, page.PageSize)
}

func (p *resourcePane[T]) rows() []list.Item {
	page := p.ctrl.Page()
	items := make([]list.Item, len(page.Items))
	for i, entity := range page.Items {
		items[i] = p.row(entity)
	}
	return items
}

func (p *resourcePane[T]) pageStatus() string {
	page := p.ctrl.Page()
	totalPages := page.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	return fmt.Sprintf("page %d of %d (%d total)", page.Page, totalPages, page.TotalCount)
}

func (p *resourcePane[T]) lookup(ctx context.Context, id string) tea.Cmd {
	return func() tea.Msg {
		_, err := p.look.Lookup(ctx, id)
		return lookupDoneMsg{err: err}
	}
}

func (p *resourcePane[T]) lookupPanel() string {
	result := p.look.Result()
	if result.ErrorMessage != "" {
		return styles.err.Render(result.ErrorMessage)
	}
	if result.Value != nil {
		return fmt.Sprintf("#%s: %s", result.Query, p.detail(*result.Value))
	}
	return ""
}

func (p *resourcePane[T]) resolve(ctx context.Context, selected int) tea.Cmd {
	if p.related == nil {
		return nil
	}
	page := p.ctrl.Page()
	if selected < 0 || selected >= len(page.Items) {
		return nil
	}
	return p.related(ctx, page.Items[selected])
}

func (p *resourcePane[T]) relationPanel() string {
	if p.relationText == nil {
		return ""
	}
	return p.relationText()
}

// renderRelation renders a resolver's current view with a line per related
// entity. A failed fetch and a legitimately empty collection render
// differently.
func renderRelation[O, R any](resolver *browse.Resolver[O, R], heading string, line func(R) string) string {
	view, ok := resolver.View()
	if !ok {
		return ""
	}
	if view.Err != nil {
		return styles.err.Render(fmt.Sprintf("%s: fetch failed: %v", heading, view.Err))
	}
	if len(view.Related) == 0 {
		return styles.warn.Render(fmt.Sprintf("%s: none", heading))
	}

	out := styles.ok.Render(heading) + "\n"
	for _, related := range view.Related {
		out += fmt.Sprintf("  • %s\n", line(related))
	}
	return out
}

func songLine(s catalog.Song) string {
	line := s.Title
	if s.Year != nil {
		line = fmt.Sprintf("%s (%d)", line, *s.Year)
	}
	return line
}

// newPanes wires every resource pane against the shared client and
// credential. Each pane owns its controller, lookup, and resolver; nothing
// is shared between panes.
func newPanes(c *catalog.Client, creds catalog.TokenSource) []pane {
	artistSongs := browse.ArtistSongs(c)
	albumSongs := browse.AlbumSongs(c)
	playlistSongs := browse.PlaylistSongs(c)

	artists := &resourcePane[catalog.Artist]{
		title: "Artists",
		ctrl:  browse.Artists(c, creds),
		look:  browse.ArtistLookup(c, creds),
		row: func(a catalog.Artist) row {
			return row{heading: a.Name, caption: fmt.Sprintf("id %d", a.ID)}
		},
		detail: func(a catalog.Artist) string { return a.Name },
		related: func(ctx context.Context, owner catalog.Artist) tea.Cmd {
			return func() tea.Msg {
				return relationDoneMsg{err: artistSongs.Resolve(ctx, owner).Err}
			}
		},
		relationText: func() string {
			return renderRelation(artistSongs, "Songs", songLine)
		},
	}

	genres := &resourcePane[catalog.Genre]{
		title: "Genres",
		ctrl:  browse.Genres(c, creds),
		look:  browse.GenreLookup(c, creds),
		row: func(g catalog.Genre) row {
			return row{heading: g.Name, caption: fmt.Sprintf("id %d", g.ID)}
		},
		detail: func(g catalog.Genre) string { return g.Name },
	}

	albums := &resourcePane[catalog.Album]{
		title: "Albums",
		ctrl:  browse.Albums(c, creds),
		look:  browse.AlbumLookup(c, creds),
		row: func(a catalog.Album) row {
			caption := fmt.Sprintf("id %d • artist %d", a.ID, a.Artist)
			if a.Year != nil {
				caption = fmt.Sprintf("%s • %d", caption, *a.Year)
			}
			return row{heading: a.Title, caption: caption}
		},
		detail: func(a catalog.Album) string { return a.Title },
		related: func(ctx context.Context, owner catalog.Album) tea.Cmd {
			return func() tea.Msg {
				return relationDoneMsg{err: albumSongs.Resolve(ctx, owner).Err}
			}
		},
		relationText: func() string {
			return renderRelation(albumSongs, "Songs", songLine)
		},
	}

	songs := &resourcePane[catalog.Song]{
		title: "Songs",
		ctrl:  browse.Songs(c, creds),
		look:  browse.SongLookup(c, creds),
		row: func(s catalog.Song) row {
			return row{heading: s.Title, caption: fmt.Sprintf("id %d", s.ID)}
		},
		detail: songLine,
	}

	playlists := &resourcePane[catalog.Playlist]{
		title: "Playlists",
		ctrl:  browse.Playlists(c, creds),
		look:  browse.PlaylistLookup(c, creds),
		row: func(p catalog.Playlist) row {
			return row{heading: p.Name, caption: fmt.Sprintf("id %d", p.ID)}
		},
		detail: func(p catalog.Playlist) string { return p.Name },
		related: func(ctx context.Context, owner catalog.Playlist) tea.Cmd {
			return func() tea.Msg {
				return relationDoneMsg{err: playlistSongs.Resolve(ctx, owner).Err}
			}
		},
		relationText: func() string {
			return renderRelation(playlistSongs, "Entries", func(e catalog.PlaylistEntry) string {
				return fmt.Sprintf("song %d at position %d", e.Song, e.Order)
			})
		},
	}

	return []pane{artists, genres, albums, songs, playlists}
}
