package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const hubPrefix = "/harmonyhub"

// Resource is the typed CRUD surface for one paginated collection.
//
// Collection paths are rooted under the harmonyhub prefix and always carry a
// trailing slash, matching the server's routing.
type Resource[T any] struct {
	client *Client
	path   string
}

func newResource[T any](c *Client, name string) Resource[T] {
	return Resource[T]{client: c, path: fmt.Sprintf("%s/%s/", hubPrefix, name)}
}

// List fetches one page of the collection.
func (r Resource[T]) List(ctx context.Context, page, pageSize int) (*Page[T], error) {
	var result Page[T]
	path := fmt.Sprintf("%s?%s", r.path, pageQuery(page, pageSize, nil))
	if err := r.client.doRequest(ctx, http.MethodGet, path, nil, "", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListFiltered fetches the first page of the collection scoped by a
// server-side filter, e.g. songs belonging to one artist.
func (r Resource[T]) ListFiltered(ctx context.Context, filter url.Values) (*Page[T], error) {
	var result Page[T]
	path := r.path
	if len(filter) > 0 {
		path = fmt.Sprintf("%s?%s", r.path, filter.Encode())
	}
	if err := r.client.doRequest(ctx, http.MethodGet, path, nil, "", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get fetches a single entity by id.
func (r Resource[T]) Get(ctx context.Context, id int) (*T, error) {
	var result T
	path := fmt.Sprintf("%s%d/", r.path, id)
	if err := r.client.doRequest(ctx, http.MethodGet, path, nil, "", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Create posts a new entity and returns the server's representation.
func (r Resource[T]) Create(ctx context.Context, fields map[string]any) (*T, error) {
	var result T
	if err := r.client.doJSON(ctx, http.MethodPost, r.path, fields, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Update patches an existing entity and returns the server's representation.
func (r Resource[T]) Update(ctx context.Context, id int, fields map[string]any) (*T, error) {
	var result T
	path := fmt.Sprintf("%s%d/", r.path, id)
	if err := r.client.doJSON(ctx, http.MethodPatch, path, fields, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes an entity by id.
func (r Resource[T]) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("%s%d/", r.path, id)
	return r.client.doRequest(ctx, http.MethodDelete, path, nil, "", nil)
}

// Artists returns the artists collection.
func (c *Client) Artists() Resource[Artist] { return newResource[Artist](c, "artists") }

// Genres returns the genres collection.
func (c *Client) Genres() Resource[Genre] { return newResource[Genre](c, "genres") }

// Albums returns the albums collection.
func (c *Client) Albums() Resource[Album] { return newResource[Album](c, "albums") }

// Songs returns the songs collection. Song writes that attach audio go
// through [Client.CreateSong] / [Client.UpdateSong] instead, which submit
// multipart forms.
func (c *Client) Songs() Resource[Song] { return newResource[Song](c, "songs") }

// Playlists returns the playlists collection.
func (c *Client) Playlists() Resource[Playlist] { return newResource[Playlist](c, "playlists") }

// PlaylistEntries returns the playlist entries collection.
func (c *Client) PlaylistEntries() Resource[PlaylistEntry] {
	return newResource[PlaylistEntry](c, "playlists-entries")
}

// ArtistSongs fetches the songs belonging to one artist, filtered
// server-side by artist id.
func (c *Client) ArtistSongs(ctx context.Context, artistID int) (*Page[Song], error) {
	filter := url.Values{"artists": []string{fmt.Sprintf("%d", artistID)}}
	return c.Songs().ListFiltered(ctx, filter)
}

// AlbumSongs fetches the songs on one album via the album's nested songs
// route.
func (c *Client) AlbumSongs(ctx context.Context, albumID int) (*Page[Song], error) {
	var result Page[Song]
	path := fmt.Sprintf("%s/albums/%d/songs/", hubPrefix, albumID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, "", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PlaylistSongs fetches the entries of one playlist, filtered server-side
// by playlist id.
func (c *Client) PlaylistSongs(ctx context.Context, playlistID int) (*Page[PlaylistEntry], error) {
	filter := url.Values{"playlist": []string{fmt.Sprintf("%d", playlistID)}}
	return c.PlaylistEntries().ListFiltered(ctx, filter)
}

// AddPlaylistSong appends a song to a playlist at the given position.
func (c *Client) AddPlaylistSong(ctx context.Context, playlistID, songID, order int) (*PlaylistEntry, error) {
	return c.PlaylistEntries().Create(ctx, map[string]any{
		"order":    order,
		"song":     songID,
		"playlist": playlistID,
	})
}
