package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/prittywoman/harmonyctl/internal/browse"
	"github.com/prittywoman/harmonyctl/internal/catalog"
	"github.com/prittywoman/harmonyctl/internal/formatter"
	"github.com/prittywoman/harmonyctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// idArgument parses the positional id argument shared by get, update,
// delete and relation subcommands.
func idArgument(cmd *cli.Command) (int, error) {
	raw := cmd.StringArg("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q is not a valid id", shared.ErrMissingIdentifier, raw)
	}
	return id, nil
}

// listResource loads one page through the controller and renders it in the
// requested format.
func listResource[T any](ctx context.Context, r *Runner, cmd *cli.Command, ctrl *browse.Controller[T], resource string, table func(string, []T) formatter.Table) error {
	page := int(cmd.Int("page"))
	if page < 1 {
		page = 1
	}

	if err := ctrl.LoadPage(ctx, page, r.pageSize(cmd)); err != nil {
		return err
	}

	cached := ctrl.Page()
	r.logger.Debugf("loaded %v %s (page %v of %v)", len(cached.Items), resource, cached.Page, cached.TotalPages)

	title := formatter.PageTitle(resource, cached.Page, cached.TotalPages, cached.TotalCount)
	out, err := table(title, cached.Items).Render(cmd.String("format"))
	if err != nil {
		return err
	}
	return r.writePlain("%s", out)
}

// getResource looks up a single entity by the positional id argument.
func getResource[T any](ctx context.Context, r *Runner, cmd *cli.Command, look *browse.Lookup[T]) error {
	value, err := look.Lookup(ctx, cmd.StringArg("id"))
	if err != nil {
		return err
	}
	return r.writeJSON(value, true)
}

// createResource posts the entity and prints the server's representation.
func createResource[T any](ctx context.Context, r *Runner, ctrl *browse.Controller[T], fields map[string]any) error {
	created, err := ctrl.Create(ctx, fields)
	if err != nil {
		return err
	}
	return r.writeJSON(created, true)
}

// updateResource patches the entity named by the positional id argument.
func updateResource[T any](ctx context.Context, r *Runner, cmd *cli.Command, ctrl *browse.Controller[T], fields map[string]any) error {
	id, err := idArgument(cmd)
	if err != nil {
		return err
	}
	updated, err := ctrl.Update(ctx, id, fields)
	if err != nil {
		return err
	}
	return r.writeJSON(updated, true)
}

// deleteResource removes the entity named by the positional id argument.
func deleteResource[T any](ctx context.Context, r *Runner, cmd *cli.Command, ctrl *browse.Controller[T], resource string) error {
	id, err := idArgument(cmd)
	if err != nil {
		return err
	}
	if err := ctrl.Remove(ctx, id); err != nil {
		return err
	}
	return r.writePlain("✓ Deleted %s %d\n", resource, id)
}

// relatedSongs renders a resolver's dependent song collection for the owner
// entity named by the positional id argument.
func relatedSongs[O any](ctx context.Context, r *Runner, cmd *cli.Command, resolver *browse.Resolver[O, catalog.Song], owner func(id int) O) error {
	id, err := idArgument(cmd)
	if err != nil {
		return err
	}

	view := resolver.Resolve(ctx, owner(id))
	if view.Err != nil {
		return view.Err
	}

	title := fmt.Sprintf("Songs (%d)", len(view.Related))
	out, err := formatter.SongTable(title, view.Related).Render(cmd.String("format"))
	if err != nil {
		return err
	}
	return r.writePlain("%s", out)
}

func (r *Runner) ArtistsList(ctx context.Context, cmd *cli.Command) error {
	return listResource(ctx, r, cmd, browse.Artists(r.client, r.session), "Artists", formatter.ArtistTable)
}

func (r *Runner) ArtistsGet(ctx context.Context, cmd *cli.Command) error {
	return getResource(ctx, r, cmd, browse.ArtistLookup(r.client, r.session))
}

func (r *Runner) ArtistsCreate(ctx context.Context, cmd *cli.Command) error {
	return createResource(ctx, r, browse.Artists(r.client, r.session), artistFields(cmd))
}

func (r *Runner) ArtistsUpdate(ctx context.Context, cmd *cli.Command) error {
	return updateResource(ctx, r, cmd, browse.Artists(r.client, r.session), artistFields(cmd))
}

func (r *Runner) ArtistsDelete(ctx context.Context, cmd *cli.Command) error {
	return deleteResource(ctx, r, cmd, browse.Artists(r.client, r.session), "artist")
}

func (r *Runner) ArtistSongs(ctx context.Context, cmd *cli.Command) error {
	return relatedSongs(ctx, r, cmd, browse.ArtistSongs(r.client), func(id int) catalog.Artist {
		return catalog.Artist{ID: id}
	})
}

func (r *Runner) GenresList(ctx context.Context, cmd *cli.Command) error {
	return listResource(ctx, r, cmd, browse.Genres(r.client, r.session), "Genres", formatter.GenreTable)
}

func (r *Runner) GenresGet(ctx context.Context, cmd *cli.Command) error {
	return getResource(ctx, r, cmd, browse.GenreLookup(r.client, r.session))
}

func (r *Runner) GenresCreate(ctx context.Context, cmd *cli.Command) error {
	return createResource(ctx, r, browse.Genres(r.client, r.session), map[string]any{"name": cmd.String("name")})
}

func (r *Runner) GenresUpdate(ctx context.Context, cmd *cli.Command) error {
	return updateResource(ctx, r, cmd, browse.Genres(r.client, r.session), map[string]any{"name": cmd.String("name")})
}

func (r *Runner) GenresDelete(ctx context.Context, cmd *cli.Command) error {
	return deleteResource(ctx, r, cmd, browse.Genres(r.client, r.session), "genre")
}

func (r *Runner) AlbumsList(ctx context.Context, cmd *cli.Command) error {
	return listResource(ctx, r, cmd, browse.Albums(r.client, r.session), "Albums", formatter.AlbumTable)
}

func (r *Runner) AlbumsGet(ctx context.Context, cmd *cli.Command) error {
	return getResource(ctx, r, cmd, browse.AlbumLookup(r.client, r.session))
}

func (r *Runner) AlbumsCreate(ctx context.Context, cmd *cli.Command) error {
	return createResource(ctx, r, browse.Albums(r.client, r.session), albumFields(cmd))
}

func (r *Runner) AlbumsUpdate(ctx context.Context, cmd *cli.Command) error {
	return updateResource(ctx, r, cmd, browse.Albums(r.client, r.session), albumFields(cmd))
}

func (r *Runner) AlbumsDelete(ctx context.Context, cmd *cli.Command) error {
	return deleteResource(ctx, r, cmd, browse.Albums(r.client, r.session), "album")
}

func (r *Runner) AlbumSongs(ctx context.Context, cmd *cli.Command) error {
	return relatedSongs(ctx, r, cmd, browse.AlbumSongs(r.client), func(id int) catalog.Album {
		return catalog.Album{ID: id}
	})
}

func (r *Runner) SongsList(ctx context.Context, cmd *cli.Command) error {
	return listResource(ctx, r, cmd, browse.Songs(r.client, r.session), "Songs", formatter.SongTable)
}

func (r *Runner) SongsGet(ctx context.Context, cmd *cli.Command) error {
	return getResource(ctx, r, cmd, browse.SongLookup(r.client, r.session))
}

func (r *Runner) SongsCreate(ctx context.Context, cmd *cli.Command) error {
	fields, closer, err := songFields(cmd)
	if err != nil {
		return err
	}
	defer closer()
	return createResource(ctx, r, browse.Songs(r.client, r.session), fields)
}

func (r *Runner) SongsUpdate(ctx context.Context, cmd *cli.Command) error {
	fields, closer, err := songFields(cmd)
	if err != nil {
		return err
	}
	defer closer()
	return updateResource(ctx, r, cmd, browse.Songs(r.client, r.session), fields)
}

func (r *Runner) SongsDelete(ctx context.Context, cmd *cli.Command) error {
	return deleteResource(ctx, r, cmd, browse.Songs(r.client, r.session), "song")
}

func (r *Runner) PlaylistsList(ctx context.Context, cmd *cli.Command) error {
	return listResource(ctx, r, cmd, browse.Playlists(r.client, r.session), "Playlists", formatter.PlaylistTable)
}

func (r *Runner) PlaylistsGet(ctx context.Context, cmd *cli.Command) error {
	return getResource(ctx, r, cmd, browse.PlaylistLookup(r.client, r.session))
}

func (r *Runner) PlaylistsCreate(ctx context.Context, cmd *cli.Command) error {
	return createResource(ctx, r, browse.Playlists(r.client, r.session), map[string]any{"name": cmd.String("name")})
}

func (r *Runner) PlaylistsUpdate(ctx context.Context, cmd *cli.Command) error {
	return updateResource(ctx, r, cmd, browse.Playlists(r.client, r.session), map[string]any{"name": cmd.String("name")})
}

func (r *Runner) PlaylistsDelete(ctx context.Context, cmd *cli.Command) error {
	return deleteResource(ctx, r, cmd, browse.Playlists(r.client, r.session), "playlist")
}

// PlaylistEntries lists the entries of one playlist.
func (r *Runner) PlaylistEntries(ctx context.Context, cmd *cli.Command) error {
	id, err := idArgument(cmd)
	if err != nil {
		return err
	}

	view := browse.PlaylistSongs(r.client).Resolve(ctx, catalog.Playlist{ID: id})
	if view.Err != nil {
		return view.Err
	}

	title := fmt.Sprintf("Entries (%d)", len(view.Related))
	out, err := formatter.EntryTable(title, view.Related).Render(cmd.String("format"))
	if err != nil {
		return err
	}
	return r.writePlain("%s", out)
}

// PlaylistAddSong appends a song to a playlist at the given position.
func (r *Runner) PlaylistAddSong(ctx context.Context, cmd *cli.Command) error {
	id, err := idArgument(cmd)
	if err != nil {
		return err
	}
	if !r.session.Present() {
		return fmt.Errorf("%w: run `harmonyctl login` first", shared.ErrMissingCredential)
	}

	entry, err := r.client.AddPlaylistSong(ctx, id, int(cmd.Int("song")), int(cmd.Int("order")))
	if err != nil {
		return err
	}
	return r.writeJSON(entry, true)
}

func artistFields(cmd *cli.Command) map[string]any {
	fields := map[string]any{"name": cmd.String("name")}
	if cmd.IsSet("bio") {
		fields["bio"] = cmd.String("bio")
	}
	return fields
}

func albumFields(cmd *cli.Command) map[string]any {
	fields := map[string]any{
		"title":  cmd.String("title"),
		"artist": int(cmd.Int("artist")),
	}
	if cmd.IsSet("year") {
		fields["year"] = int(cmd.Int("year"))
	}
	return fields
}

// songFields assembles the song payload, opening the audio file when one is
// attached. The returned closer releases the file handle and is safe to
// call when no file was opened.
func songFields(cmd *cli.Command) (map[string]any, func(), error) {
	fields := map[string]any{"title": cmd.String("title")}
	for _, key := range []string{"year", "album", "artist"} {
		if cmd.IsSet(key) {
			fields[key] = int(cmd.Int(key))
		}
	}

	closer := func() {}
	if path := cmd.String("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, closer, fmt.Errorf("failed to open audio file: %w", err)
		}
		fields["song_file"] = f
		fields["song_filename"] = filepath.Base(path)
		closer = func() { f.Close() }
	}

	return fields, closer, nil
}
