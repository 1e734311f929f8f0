package formatter

import (
	"strings"
	"testing"

	"github.com/prittywoman/harmonyctl/internal/catalog"
)

func sampleSongs() []catalog.Song {
	y1969 := 1969
	album := 9
	artist := 7
	return []catalog.Song{
		{ID: 4, Title: "Muchacha", Year: &y1969, Album: &album, Artist: &artist},
		{ID: 5, Title: "Bajan"},
	}
}

func TestTable(t *testing.T) {
	t.Run("CSV", func(t *testing.T) {
		table := SongTable("Songs", sampleSongs())

		data, err := table.CSV()
		if err != nil {
			t.Fatalf("CSV failed: %v", err)
		}
		output := string(data)

		if !strings.Contains(output, "ID,Title,Year,Album,Artist") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "4,Muchacha,1969,9,7") {
			t.Errorf("CSV missing full row, got: %s", output)
		}
		if !strings.Contains(output, "5,Bajan,,,") {
			t.Errorf("CSV missing row with absent fields, got: %s", output)
		}
	})

	t.Run("Markdown", func(t *testing.T) {
		table := GenreTable("Genres", []catalog.Genre{{ID: 6, Name: "cumbia"}})

		output := string(table.Markdown())
		if !strings.HasPrefix(output, "# Genres") {
			t.Errorf("Markdown missing heading, got: %s", output)
		}
		if !strings.Contains(output, "| ID | Name |") {
			t.Errorf("Markdown missing header row, got: %s", output)
		}
		if !strings.Contains(output, "| 6 | cumbia |") {
			t.Errorf("Markdown missing data row, got: %s", output)
		}
	})

	t.Run("Text", func(t *testing.T) {
		table := ArtistTable("Artists", []catalog.Artist{{ID: 7, Name: "Spinetta"}})

		output := string(table.Text())
		if !strings.Contains(output, "Artists") {
			t.Errorf("Text missing title, got: %s", output)
		}
		if !strings.Contains(output, "1. 7 Spinetta") {
			t.Errorf("Text missing numbered row, got: %s", output)
		}
	})

	t.Run("Render Dispatch", func(t *testing.T) {
		table := PlaylistTable("Playlists", nil)

		if _, err := table.Render("csv"); err != nil {
			t.Errorf("csv render failed: %v", err)
		}
		if _, err := table.Render(""); err != nil {
			t.Errorf("default render failed: %v", err)
		}
		if _, err := table.Render("yaml"); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestPageTitle(t *testing.T) {
	title := PageTitle("Songs", 2, 3, 25)
	if title != "Songs (page 2 of 3, 25 total)" {
		t.Errorf("unexpected title: %s", title)
	}
}
