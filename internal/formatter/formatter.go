// package formatter renders catalog listings to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/prittywoman/harmonyctl/internal/catalog"
)

// Table is a renderable listing: a title, column headers, and rows.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// CSV renders the table as CSV with a header row.
func (t Table) CSV() ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(t.Headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// Markdown renders the table as a Markdown pipe table under a heading.
func (t Table) Markdown() []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", t.Title))

	buf.WriteString("|")
	for _, h := range t.Headers {
		buf.WriteString(fmt.Sprintf(" %s |", h))
	}
	buf.WriteString("\n|")
	for range t.Headers {
		buf.WriteString(" --- |")
	}
	buf.WriteString("\n")

	for _, row := range t.Rows {
		buf.WriteString("|")
		for _, cell := range row {
			buf.WriteString(fmt.Sprintf(" %s |", cell))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

// Text renders the table as numbered plain text lines.
func (t Table) Text() []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n", t.Title))
	for i, row := range t.Rows {
		buf.WriteString(fmt.Sprintf("%d.", i+1))
		for _, cell := range row {
			buf.WriteString(fmt.Sprintf(" %s", cell))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

// Render dispatches on a format name: "csv", "md" or "text".
func (t Table) Render(format string) ([]byte, error) {
	switch format {
	case "csv":
		return t.CSV()
	case "md", "markdown":
		return t.Markdown(), nil
	case "", "text":
		return t.Text(), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// ArtistTable builds a listing of artists.
func ArtistTable(title string, artists []catalog.Artist) Table {
	rows := make([][]string, 0, len(artists))
	for _, a := range artists {
		rows = append(rows, []string{strconv.Itoa(a.ID), a.Name})
	}
	return Table{Title: title, Headers: []string{"ID", "Name"}, Rows: rows}
}

// GenreTable builds a listing of genres.
func GenreTable(title string, genres []catalog.Genre) Table {
	rows := make([][]string, 0, len(genres))
	for _, g := range genres {
		rows = append(rows, []string{strconv.Itoa(g.ID), g.Name})
	}
	return Table{Title: title, Headers: []string{"ID", "Name"}, Rows: rows}
}

// AlbumTable builds a listing of albums.
func AlbumTable(title string, albums []catalog.Album) Table {
	rows := make([][]string, 0, len(albums))
	for _, a := range albums {
		rows = append(rows, []string{strconv.Itoa(a.ID), a.Title, optInt(a.Year), strconv.Itoa(a.Artist)})
	}
	return Table{Title: title, Headers: []string{"ID", "Title", "Year", "Artist"}, Rows: rows}
}

// SongTable builds a listing of songs.
func SongTable(title string, songs []catalog.Song) Table {
	rows := make([][]string, 0, len(songs))
	for _, s := range songs {
		rows = append(rows, []string{strconv.Itoa(s.ID), s.Title, optInt(s.Year), optInt(s.Album), optInt(s.Artist)})
	}
	return Table{Title: title, Headers: []string{"ID", "Title", "Year", "Album", "Artist"}, Rows: rows}
}

// PlaylistTable builds a listing of playlists.
func PlaylistTable(title string, playlists []catalog.Playlist) Table {
	rows := make([][]string, 0, len(playlists))
	for _, p := range playlists {
		rows = append(rows, []string{strconv.Itoa(p.ID), p.Name})
	}
	return Table{Title: title, Headers: []string{"ID", "Name"}, Rows: rows}
}

// EntryTable builds a listing of playlist entries.
func EntryTable(title string, entries []catalog.PlaylistEntry) Table {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{strconv.Itoa(e.ID), strconv.Itoa(e.Order), strconv.Itoa(e.Song), strconv.Itoa(e.Playlist)})
	}
	return Table{Title: title, Headers: []string{"ID", "Order", "Song", "Playlist"}, Rows: rows}
}

// PageTitle composes the listing title shown above a paginated table.
func PageTitle(resource string, page, totalPages, totalCount int) string {
	return fmt.Sprintf("%s (page %d of %d, %d total)", resource, page, totalPages, totalCount)
}
