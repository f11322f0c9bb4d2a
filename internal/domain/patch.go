package domain

import "encoding/json"

// NullInt is an explicitly nullable integer for patch fields. A nil
// *NullInt in a patch means "field untouched"; a non-nil value with
// Valid == false means "clear this field".
type NullInt struct {
	Valid bool
	Value int
}

// MarshalJSON emits the number, or null when the value is cleared.
func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON accepts a number or null.
func (n *NullInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.Valid = false
		n.Value = 0
		return nil
	}
	n.Valid = true
	return json.Unmarshal(data, &n.Value)
}

// TrackPatch is the minimal field map sent to the backend on save.
//
// Only fields the user actually edited are present; everything else is
// nil and omitted so the backend's partial-update semantics hold. The
// clear sentinel differs by kind, matching the backend contract:
// string fields clear with an explicit empty string, numeric fields
// clear with an explicit null.
type TrackPatch struct {
	Title       *string  `json:"title,omitempty"`
	ArtistName  *string  `json:"artist_name,omitempty"` // "" clears all artists
	AlbumTitle  *string  `json:"album_title,omitempty"` // "" clears the album link
	AlbumArtist *string  `json:"album_artist,omitempty"`
	Composer    *string  `json:"composer,omitempty"`
	Genre       *string  `json:"genre,omitempty"`
	Comment     *string  `json:"comment,omitempty"`
	CommentLang *string  `json:"comment_lang,omitempty"`
	Lyrics      *string  `json:"lyrics,omitempty"`
	LyricsLang  *string  `json:"lyrics_lang,omitempty"`
	Year        *NullInt `json:"year,omitempty"`
	BPM         *NullInt `json:"bpm,omitempty"`
	TrackNumber *NullInt `json:"track_number,omitempty"`
	TrackTotal  *NullInt `json:"track_total,omitempty"`
	DiscNumber  *NullInt `json:"disc_number,omitempty"`
	DiscTotal   *NullInt `json:"disc_total,omitempty"`
}

// IsEmpty reports whether the patch carries no field at all.
func (p *TrackPatch) IsEmpty() bool {
	return p.Title == nil &&
		p.ArtistName == nil &&
		p.AlbumTitle == nil &&
		p.AlbumArtist == nil &&
		p.Composer == nil &&
		p.Genre == nil &&
		p.Comment == nil &&
		p.CommentLang == nil &&
		p.Lyrics == nil &&
		p.LyricsLang == nil &&
		p.Year == nil &&
		p.BPM == nil &&
		p.TrackNumber == nil &&
		p.TrackTotal == nil &&
		p.DiscNumber == nil &&
		p.DiscTotal == nil
}

// String returns a pointer suitable for a string patch field.
func String(s string) *string { return &s }

// Int returns a set numeric patch value.
func Int(v int) *NullInt { return &NullInt{Valid: true, Value: v} }

// Null returns an explicit-null numeric patch value.
func Null() *NullInt { return &NullInt{} }
