package browse

import (
	"strings"

	"github.com/prittywoman/harmonyctl/internal/shared"
)

// Rules is the per-resource configuration record: display name, locally
// required fields, and whether single-item reads need a credential (most
// endpoints do; artist reads are open).
type Rules struct {
	Name            string
	Required        []string
	LookupNeedsAuth bool
}

// Per-resource rules matching the server's write contracts.
var (
	ArtistRules   = Rules{Name: "artist", Required: []string{"name"}}
	GenreRules    = Rules{Name: "genre", Required: []string{"name"}, LookupNeedsAuth: true}
	AlbumRules    = Rules{Name: "album", Required: []string{"title", "artist"}, LookupNeedsAuth: true}
	SongRules     = Rules{Name: "song", Required: []string{"title"}, LookupNeedsAuth: true}
	PlaylistRules = Rules{Name: "playlist", Required: []string{"name"}, LookupNeedsAuth: true}
)

// Validate checks the required fields and reports the blank ones. It never
// touches the network.
func (r Rules) Validate(fields map[string]any) error {
	var missing []string
	for _, name := range r.Required {
		if isBlank(fields[name]) {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return &shared.ValidationError{Fields: missing}
	}
	return nil
}

func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	default:
		return false
	}
}
