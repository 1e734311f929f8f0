package browse

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/prittywoman/harmonyctl/internal/catalog"
)

// Constructors wiring the catalog client into one view's controller,
// lookup, and resolver. Each view owns its own instances; nothing is shared
// across views except the credential.

func Artists(c *catalog.Client, creds catalog.TokenSource) *Controller[catalog.Artist] {
	return NewController(c.Artists(), func(a catalog.Artist) int { return a.ID }, ArtistRules, creds)
}

func Genres(c *catalog.Client, creds catalog.TokenSource) *Controller[catalog.Genre] {
	return NewController(c.Genres(), func(g catalog.Genre) int { return g.ID }, GenreRules, creds)
}

func Albums(c *catalog.Client, creds catalog.TokenSource) *Controller[catalog.Album] {
	return NewController(c.Albums(), func(a catalog.Album) int { return a.ID }, AlbumRules, creds)
}

func Songs(c *catalog.Client, creds catalog.TokenSource) *Controller[catalog.Song] {
	source := songCollection{Resource: c.Songs(), client: c}
	return NewController[catalog.Song](source, func(s catalog.Song) int { return s.ID }, SongRules, creds)
}

func Playlists(c *catalog.Client, creds catalog.TokenSource) *Controller[catalog.Playlist] {
	return NewController(c.Playlists(), func(p catalog.Playlist) int { return p.ID }, PlaylistRules, creds)
}

func ArtistLookup(c *catalog.Client, creds catalog.TokenSource) *Lookup[catalog.Artist] {
	return NewLookup(c.Artists().Get, creds, ArtistRules.LookupNeedsAuth)
}

func GenreLookup(c *catalog.Client, creds catalog.TokenSource) *Lookup[catalog.Genre] {
	return NewLookup(c.Genres().Get, creds, GenreRules.LookupNeedsAuth)
}

func AlbumLookup(c *catalog.Client, creds catalog.TokenSource) *Lookup[catalog.Album] {
	return NewLookup(c.Albums().Get, creds, AlbumRules.LookupNeedsAuth)
}

func SongLookup(c *catalog.Client, creds catalog.TokenSource) *Lookup[catalog.Song] {
	return NewLookup(c.Songs().Get, creds, SongRules.LookupNeedsAuth)
}

func PlaylistLookup(c *catalog.Client, creds catalog.TokenSource) *Lookup[catalog.Playlist] {
	return NewLookup(c.Playlists().Get, creds, PlaylistRules.LookupNeedsAuth)
}

// ArtistSongs resolves an artist's songs via the artists filter on the
// songs collection.
func ArtistSongs(c *catalog.Client) *Resolver[catalog.Artist, catalog.Song] {
	return NewResolver(func(ctx context.Context, owner catalog.Artist) ([]catalog.Song, error) {
		page, err := c.ArtistSongs(ctx, owner.ID)
		if err != nil {
			return nil, err
		}
		return page.Results, nil
	})
}

// AlbumSongs resolves an album's songs via the album's nested songs route.
func AlbumSongs(c *catalog.Client) *Resolver[catalog.Album, catalog.Song] {
	return NewResolver(func(ctx context.Context, owner catalog.Album) ([]catalog.Song, error) {
		page, err := c.AlbumSongs(ctx, owner.ID)
		if err != nil {
			return nil, err
		}
		return page.Results, nil
	})
}

// PlaylistSongs resolves a playlist's entries via the playlist filter on
// the entries collection.
func PlaylistSongs(c *catalog.Client) *Resolver[catalog.Playlist, catalog.PlaylistEntry] {
	return NewResolver(func(ctx context.Context, owner catalog.Playlist) ([]catalog.PlaylistEntry, error) {
		page, err := c.PlaylistSongs(ctx, owner.ID)
		if err != nil {
			return nil, err
		}
		return page.Results, nil
	})
}

// songCollection routes song writes through the multipart endpoints so an
// audio attachment can ride along; reads fall through to the embedded
// resource.
type songCollection struct {
	catalog.Resource[catalog.Song]
	client *catalog.Client
}

func (s songCollection) Create(ctx context.Context, fields map[string]any) (*catalog.Song, error) {
	upload, err := songUploadFromFields(fields)
	if err != nil {
		return nil, err
	}
	return s.client.CreateSong(ctx, upload)
}

func (s songCollection) Update(ctx context.Context, id int, fields map[string]any) (*catalog.Song, error) {
	upload, err := songUploadFromFields(fields)
	if err != nil {
		return nil, err
	}
	return s.client.UpdateSong(ctx, id, upload)
}

func songUploadFromFields(fields map[string]any) (*catalog.SongUpload, error) {
	upload := &catalog.SongUpload{}

	if title, ok := fields["title"].(string); ok {
		upload.Title = title
	}

	for key, dst := range map[string]**int{"year": &upload.Year, "album": &upload.Album, "artist": &upload.Artist} {
		n, err := intField(fields, key)
		if err != nil {
			return nil, err
		}
		*dst = n
	}

	if audio, ok := fields["song_file"].(io.Reader); ok {
		upload.Audio = audio
		if name, ok := fields["song_filename"].(string); ok {
			upload.AudioFilename = name
		}
	}

	return upload, nil
}

func intField(fields map[string]any, key string) (*int, error) {
	switch v := fields[key].(type) {
	case nil:
		return nil, nil
	case int:
		return &v, nil
	case *int:
		return v, nil
	case string:
		if v == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("field %s: %q is not numeric", key, v)
		}
		return &n, nil
	default:
		return nil, fmt.Errorf("field %s: unsupported type %T", key, v)
	}
}
