package editor

import (
	"strconv"

	"github.com/cadenzaapp/cadenza-core/internal/domain"
)

// Field identifies an editable track field. The string value doubles as
// the validation registry key.
type Field string

// The closed set of editable fields. Technical track attributes
// (duration, size, format, bitrate, sample rate) are read-only and have
// no Field.
const (
	FieldTitle         Field = "title"
	FieldArtists       Field = "artists"
	FieldAlbum         Field = "album"
	FieldAlbumArtist   Field = "album_artist"
	FieldComposer      Field = "composer"
	FieldGenre         Field = "genre"
	FieldYear          Field = "year"
	FieldBPM           Field = "bpm"
	FieldTrackPosition Field = "track_position"
	FieldDiscPosition  Field = "disc_position"
	FieldComment       Field = "comment"
	FieldCommentLang   Field = "comment_lang"
	FieldLyrics        Field = "lyrics"
	FieldLyricsLang    Field = "lyrics_lang"
)

// Fields lists every editable field in display order.
var Fields = []Field{
	FieldTitle,
	FieldArtists,
	FieldAlbum,
	FieldAlbumArtist,
	FieldComposer,
	FieldGenre,
	FieldYear,
	FieldBPM,
	FieldTrackPosition,
	FieldDiscPosition,
	FieldComment,
	FieldCommentLang,
	FieldLyrics,
	FieldLyricsLang,
}

// project returns a track field's string editing representation.
// Composite fields are projected into a canonical form before equality
// is tested: the artist string is split, trimmed and re-joined, and
// positions are formatted "N" or "N/Total".
func (f Field) project(t *domain.Track) string {
	switch f {
	case FieldTitle:
		return t.Title
	case FieldArtists:
		return domain.JoinArtists(domain.SplitArtists(t.ArtistName))
	case FieldAlbum:
		return t.AlbumTitle
	case FieldAlbumArtist:
		return t.AlbumArtist
	case FieldComposer:
		return t.Composer
	case FieldGenre:
		return t.Genre
	case FieldYear:
		return intEditString(t.Year)
	case FieldBPM:
		return intEditString(t.BPM)
	case FieldTrackPosition:
		return domain.FormatPosition(t.TrackNumber, t.TrackTotal)
	case FieldDiscPosition:
		return domain.FormatPosition(t.DiscNumber, t.DiscTotal)
	case FieldComment:
		return t.Comment
	case FieldCommentLang:
		return t.CommentLang
	case FieldLyrics:
		return t.Lyrics
	case FieldLyricsLang:
		return t.LyricsLang
	default:
		return ""
	}
}

// intEditString renders an optional integer for editing; absent values
// edit as the empty string.
func intEditString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
