// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func idArg() []cli.Argument {
	return []cli.Argument{
		&cli.StringArg{
			Name: "id",
		},
	}
}

func pagingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "page",
			Aliases: []string{"p"},
			Usage:   "Page number to load",
			Value:   1,
		},
		&cli.IntFlag{
			Name:  "page-size",
			Usage: "Items per page (defaults to the configured page size)",
		},
		formatFlag(),
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: text, csv, or markdown",
		Value:   "text",
	}
}

// loginCommand exchanges credentials for an API token.
func loginCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Log in to the catalog API and store the token",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "username",
				Aliases: []string{"u"},
				Usage:   "Account username (falls back to config / HARMONY_USERNAME)",
			},
			&cli.StringFlag{
				Name:    "password",
				Aliases: []string{"p"},
				Usage:   "Account password (falls back to config / HARMONY_PASSWORD)",
			},
		},
		Action: r.Login,
	}
}

// logoutCommand clears the stored token.
func logoutCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "logout",
		Usage:  "Discard the stored API token",
		Action: r.Logout,
	}
}

// profileCommand handles user profile operations.
func profileCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "View and update the authenticated user's profile",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the current profile",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.ProfileShow,
			},
			{
				Name:  "update",
				Usage: "Patch profile fields",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "first-name", Usage: "First name"},
					&cli.StringFlag{Name: "last-name", Usage: "Last name"},
					&cli.StringFlag{Name: "email", Usage: "Email address"},
					&cli.StringFlag{Name: "bio", Usage: "Profile bio"},
				},
				Action: r.ProfileUpdate,
			},
		},
	}
}

// artistsCommand handles artist catalog operations.
func artistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "artists",
		Usage: "Browse and manage artists",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List artists one page at a time",
				Flags:  pagingFlags(),
				Action: r.ArtistsList,
			},
			{
				Name:      "get",
				Usage:     "Fetch one artist by id",
				Arguments: idArg(),
				Action:    r.ArtistsGet,
			},
			{
				Name:  "create",
				Usage: "Create a new artist",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Artist name", Required: true},
					&cli.StringFlag{Name: "bio", Usage: "Artist bio"},
				},
				Action: r.ArtistsCreate,
			},
			{
				Name:      "update",
				Usage:     "Update an existing artist",
				Arguments: idArg(),
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Artist name", Required: true},
					&cli.StringFlag{Name: "bio", Usage: "Artist bio"},
				},
				Action: r.ArtistsUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete an artist",
				Arguments: idArg(),
				Action:    r.ArtistsDelete,
			},
			{
				Name:      "songs",
				Usage:     "List the songs credited to an artist",
				Arguments: idArg(),
				Flags:     []cli.Flag{formatFlag()},
				Action:    r.ArtistSongs,
			},
		},
	}
}

// genresCommand handles genre catalog operations.
func genresCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "genres",
		Usage: "Browse and manage genres",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List genres one page at a time",
				Flags:  pagingFlags(),
				Action: r.GenresList,
			},
			{
				Name:      "get",
				Usage:     "Fetch one genre by id",
				Arguments: idArg(),
				Action:    r.GenresGet,
			},
			{
				Name:  "create",
				Usage: "Create a new genre",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Genre name", Required: true},
				},
				Action: r.GenresCreate,
			},
			{
				Name:      "update",
				Usage:     "Update an existing genre",
				Arguments: idArg(),
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Genre name", Required: true},
				},
				Action: r.GenresUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a genre",
				Arguments: idArg(),
				Action:    r.GenresDelete,
			},
		},
	}
}

// albumsCommand handles album catalog operations.
func albumsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "albums",
		Usage: "Browse and manage albums",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List albums one page at a time",
				Flags:  pagingFlags(),
				Action: r.AlbumsList,
			},
			{
				Name:      "get",
				Usage:     "Fetch one album by id",
				Arguments: idArg(),
				Action:    r.AlbumsGet,
			},
			{
				Name:  "create",
				Usage: "Create a new album",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "Album title", Required: true},
					&cli.IntFlag{Name: "artist", Usage: "Artist id", Required: true},
					&cli.IntFlag{Name: "year", Usage: "Release year"},
				},
				Action: r.AlbumsCreate,
			},
			{
				Name:      "update",
				Usage:     "Update an existing album",
				Arguments: idArg(),
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "Album title", Required: true},
					&cli.IntFlag{Name: "artist", Usage: "Artist id", Required: true},
					&cli.IntFlag{Name: "year", Usage: "Release year"},
				},
				Action: r.AlbumsUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete an album",
				Arguments: idArg(),
				Action:    r.AlbumsDelete,
			},
			{
				Name:      "songs",
				Usage:     "List the songs on an album",
				Arguments: idArg(),
				Flags:     []cli.Flag{formatFlag()},
				Action:    r.AlbumSongs,
			},
		},
	}
}

// songsCommand handles song catalog operations.
func songsCommand(r *Runner) *cli.Command {
	songFlags := func() []cli.Flag {
		return []cli.Flag{
			&cli.StringFlag{Name: "title", Usage: "Song title", Required: true},
			&cli.IntFlag{Name: "year", Usage: "Release year"},
			&cli.IntFlag{Name: "album", Usage: "Album id"},
			&cli.IntFlag{Name: "artist", Usage: "Artist id"},
			&cli.StringFlag{Name: "file", Usage: "Path to the audio file to attach"},
		}
	}

	return &cli.Command{
		Name:  "songs",
		Usage: "Browse and manage songs",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List songs one page at a time",
				Flags:  pagingFlags(),
				Action: r.SongsList,
			},
			{
				Name:      "get",
				Usage:     "Fetch one song by id",
				Arguments: idArg(),
				Action:    r.SongsGet,
			},
			{
				Name:   "create",
				Usage:  "Upload a new song",
				Flags:  songFlags(),
				Action: r.SongsCreate,
			},
			{
				Name:      "update",
				Usage:     "Update an existing song",
				Arguments: idArg(),
				Flags:     songFlags(),
				Action:    r.SongsUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a song",
				Arguments: idArg(),
				Action:    r.SongsDelete,
			},
		},
	}
}

// playlistsCommand handles playlist catalog operations.
func playlistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "playlists",
		Usage: "Browse and manage playlists",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List playlists one page at a time",
				Flags:  pagingFlags(),
				Action: r.PlaylistsList,
			},
			{
				Name:      "get",
				Usage:     "Fetch one playlist by id",
				Arguments: idArg(),
				Action:    r.PlaylistsGet,
			},
			{
				Name:  "create",
				Usage: "Create a new playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Playlist name", Required: true},
				},
				Action: r.PlaylistsCreate,
			},
			{
				Name:      "update",
				Usage:     "Update an existing playlist",
				Arguments: idArg(),
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Playlist name", Required: true},
				},
				Action: r.PlaylistsUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a playlist",
				Arguments: idArg(),
				Action:    r.PlaylistsDelete,
			},
			{
				Name:      "entries",
				Usage:     "List a playlist's entries",
				Arguments: idArg(),
				Flags:     []cli.Flag{formatFlag()},
				Action:    r.PlaylistEntries,
			},
			{
				Name:      "add-song",
				Usage:     "Append a song to a playlist",
				Arguments: idArg(),
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "song", Usage: "Song id", Required: true},
					&cli.IntFlag{Name: "order", Usage: "Position within the playlist", Value: 1},
				},
				Action: r.PlaylistAddSong,
			},
		},
	}
}

// browseCommand launches the interactive catalog browser.
func browseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "browse",
		Aliases: []string{"tui"},
		Usage:   "Launch the interactive catalog browser",
		Action:  r.Browse,
	}
}

// setupCommand handles configuration and local database initialization.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and the local session database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}
