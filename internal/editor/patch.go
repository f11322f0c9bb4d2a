package editor

import (
	"strconv"

	"github.com/cadenzaapp/cadenza-core/internal/domain"
)

// BuildPatch converts the session's edits into the minimal outbound
// patch. A field contributes an entry if and only if its state is
// edited; untouched and divergent fields are omitted entirely so the
// backend's partial-update semantics are preserved.
//
// Translation follows the per-field clear-sentinel table: string fields
// send an explicit empty string to clear, numeric fields parse their
// editing representation and send an explicit null for an empty input,
// artists are re-joined with the split delimiter (empty list becomes
// the empty clear string), and positions split back into number/total
// pairs.
func BuildPatch(s *Session) *domain.TrackPatch {
	s.mu.Lock()
	defer s.mu.Unlock()

	patch := &domain.TrackPatch{}
	for f, state := range s.fields {
		if !state.IsEdited() {
			continue
		}
		applyEdit(patch, f, state.Value())
	}
	return patch
}

// applyEdit writes one edited field into the patch.
func applyEdit(patch *domain.TrackPatch, f Field, raw string) {
	switch f {
	case FieldTitle:
		patch.Title = domain.String(raw)
	case FieldArtists:
		patch.ArtistName = domain.String(domain.JoinArtists(domain.SplitArtists(raw)))
	case FieldAlbum:
		patch.AlbumTitle = domain.String(raw)
	case FieldAlbumArtist:
		patch.AlbumArtist = domain.String(raw)
	case FieldComposer:
		patch.Composer = domain.String(raw)
	case FieldGenre:
		patch.Genre = domain.String(raw)
	case FieldComment:
		patch.Comment = domain.String(raw)
	case FieldCommentLang:
		patch.CommentLang = domain.String(raw)
	case FieldLyrics:
		patch.Lyrics = domain.String(raw)
	case FieldLyricsLang:
		patch.LyricsLang = domain.String(raw)
	case FieldYear:
		patch.Year = parseNumeric(raw)
	case FieldBPM:
		patch.BPM = parseNumeric(raw)
	case FieldTrackPosition:
		patch.TrackNumber, patch.TrackTotal = parsePositionPair(raw)
	case FieldDiscPosition:
		patch.DiscNumber, patch.DiscTotal = parsePositionPair(raw)
	}
}

// parseNumeric translates a numeric field's editing representation.
// An empty or unparsable input becomes an explicit null.
func parseNumeric(raw string) *domain.NullInt {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return domain.Null()
	}
	return domain.Int(v)
}

// parsePositionPair translates a position field into its number/total
// patch entries. A present numerator with an absent denominator yields
// {number, null}; an unparsable numerator yields null for both.
func parsePositionPair(raw string) (number, total *domain.NullInt) {
	pos := domain.ParsePosition(raw)
	if pos.Number == nil {
		return domain.Null(), domain.Null()
	}
	number = domain.Int(*pos.Number)
	if pos.Total == nil {
		return number, domain.Null()
	}
	return number, domain.Int(*pos.Total)
}
