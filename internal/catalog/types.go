package catalog

// Page is the server's pagination envelope for collection reads.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// Artist represents a catalog artist.
type Artist struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Bio  string `json:"bio,omitempty"`
}

// Genre represents a catalog genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Album represents a catalog album. Artist is the owning artist's id.
type Album struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Year   *int   `json:"year"`
	Artist int    `json:"artist"`
}

// Song represents a catalog song. Album and Artist are foreign ids and may
// be absent. SongFile is the URL of the uploaded audio attachment, if any.
type Song struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Year     *int   `json:"year"`
	Album    *int   `json:"album"`
	Artist   *int   `json:"artist"`
	SongFile string `json:"song_file,omitempty"`
}

// Playlist represents a catalog playlist.
type Playlist struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PlaylistEntry is a song's membership in a playlist at a given position.
type PlaylistEntry struct {
	ID       int `json:"id"`
	Order    int `json:"order"`
	Song     int `json:"song"`
	Playlist int `json:"playlist"`
}

// Profile represents the authenticated user's profile.
type Profile struct {
	UserID    int    `json:"user__id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Bio       string `json:"bio,omitempty"`
}
