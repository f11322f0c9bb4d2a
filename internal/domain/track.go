// Package domain contains the core entities of the Cadenza music library editor.
package domain

// Track represents a single library track as returned by the backend,
// including the joined artist/album display columns.
//
// Identity is the numeric ID. Tracks are fetched in bulk when an edit
// session opens and superseded wholesale after a successful save.
type Track struct {
	ID           int64  `json:"id"`
	CollectionID int64  `json:"collection_id"`
	AlbumID      *int64 `json:"album_id,omitempty"`
	ArtistID     *int64 `json:"artist_id,omitempty"`

	Title       string `json:"title"`
	ArtistName  string `json:"artist_name,omitempty"` // joined multi-value string, e.g. "Alice / Bob"
	AlbumTitle  string `json:"album_title,omitempty"`
	AlbumArtist string `json:"album_artist,omitempty"`
	Composer    string `json:"composer,omitempty"`
	Genre       string `json:"genre,omitempty"`
	Year        *int   `json:"year,omitempty"`
	TrackNumber *int   `json:"track_number,omitempty"`
	TrackTotal  *int   `json:"track_total,omitempty"`
	DiscNumber  *int   `json:"disc_number,omitempty"`
	DiscTotal   *int   `json:"disc_total,omitempty"`
	BPM         *int   `json:"bpm,omitempty"`
	Comment     string `json:"comment,omitempty"`
	CommentLang string `json:"comment_lang,omitempty"`
	Lyrics      string `json:"lyrics,omitempty"`
	LyricsLang  string `json:"lyrics_lang,omitempty"`

	// Technical attributes, read-only in the editor.
	FilePath       string  `json:"file_path"`
	FileSizeBytes  int64   `json:"file_size_bytes"`
	FileFormat     string  `json:"file_format,omitempty"`
	DurationSecs   float64 `json:"duration_secs,omitempty"`
	BitrateKbps    int     `json:"bitrate_kbps,omitempty"`
	SampleRateHz   int     `json:"sample_rate_hz,omitempty"`
	AlbumCoverPath string  `json:"album_cover_path,omitempty"`
}

// Artist is a library artist row, used as an autocomplete suggestion source.
type Artist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Album is a library album row, used as an autocomplete suggestion source.
type Album struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ArtistID *int64 `json:"artist_id,omitempty"`
	Year     *int   `json:"year,omitempty"`
	Genre    string `json:"genre,omitempty"`
}

// ExtraTag is a free-form, frame-id-keyed string attribute on a track.
// Unique by FrameID within an edit session; only editable when exactly
// one track is selected.
type ExtraTag struct {
	FrameID string `json:"frame_id"`
	Value   string `json:"value"`
}

// CoverArt holds raw embedded artwork bytes and their MIME type.
type CoverArt struct {
	Data     []byte `json:"data"`
	MimeType string `json:"mime_type"`
}

// Suggestions carries the autocomplete sources for the shell's artist
// and album inputs.
type Suggestions struct {
	ArtistNames []string `json:"artist_names"`
	AlbumTitles []string `json:"album_titles"`
}
