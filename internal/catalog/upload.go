package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// SongUpload is the multipart form payload for song writes. Audio is
// optional; when nil only the scalar fields are submitted.
type SongUpload struct {
	Title         string
	Year          *int
	Album         *int
	Artist        *int
	AudioFilename string
	Audio         io.Reader
}

// encode writes the upload as a multipart form and returns the body along
// with its content type (which carries the boundary).
func (u *SongUpload) encode() (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("title", u.Title); err != nil {
		return nil, "", fmt.Errorf("failed to write form field: %w", err)
	}
	if u.Year != nil {
		if err := w.WriteField("year", fmt.Sprintf("%d", *u.Year)); err != nil {
			return nil, "", fmt.Errorf("failed to write form field: %w", err)
		}
	}
	if u.Album != nil {
		if err := w.WriteField("album", fmt.Sprintf("%d", *u.Album)); err != nil {
			return nil, "", fmt.Errorf("failed to write form field: %w", err)
		}
	}
	if u.Artist != nil {
		if err := w.WriteField("artist", fmt.Sprintf("%d", *u.Artist)); err != nil {
			return nil, "", fmt.Errorf("failed to write form field: %w", err)
		}
	}

	if u.Audio != nil {
		name := u.AudioFilename
		if name == "" {
			name = "song.mp3"
		}
		part, err := w.CreateFormFile("song_file", name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := io.Copy(part, u.Audio); err != nil {
			return nil, "", fmt.Errorf("failed to copy audio data: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}

// CreateSong posts a new song as a multipart form, optionally attaching an
// audio file.
func (c *Client) CreateSong(ctx context.Context, upload *SongUpload) (*Song, error) {
	body, contentType, err := upload.encode()
	if err != nil {
		return nil, err
	}

	var song Song
	path := hubPrefix + "/songs/"
	if err := c.doRequest(ctx, http.MethodPost, path, body, contentType, &song); err != nil {
		return nil, err
	}
	return &song, nil
}

// UpdateSong patches an existing song as a multipart form.
func (c *Client) UpdateSong(ctx context.Context, id int, upload *SongUpload) (*Song, error) {
	body, contentType, err := upload.encode()
	if err != nil {
		return nil, err
	}

	var song Song
	path := fmt.Sprintf("%s/songs/%d/", hubPrefix, id)
	if err := c.doRequest(ctx, http.MethodPatch, path, body, contentType, &song); err != nil {
		return nil, err
	}
	return &song, nil
}
