// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI is a catalog browser: one pane per resource (artists, genres,
// albums, songs, playlists), each backed by its own browse.Controller for
// the paginated list, a browse.Lookup for searching by id, and, where the
// resource owns a dependent collection, a browse.Resolver for the relation
// panel.
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View
// pattern. Network calls run as [tea.Cmd] closures and come back as typed
// messages; the render path only reads controller state.
//
// Keyboard navigation uses vim-style bindings (j/k, h/l for pages, tab to
// switch resources, / to search by id, s to resolve relations, q to quit)
// with contextual help displayed via charmbracelet/bubbles/help.
package ui
