package editor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadenzaapp/cadenza-core/internal/domain"
	"github.com/cadenzaapp/cadenza-core/internal/validation"
)

func intp(v int) *int { return &v }

func testSession(t *testing.T, records []domain.Track, tags []domain.ExtraTag) *Session {
	t.Helper()
	return newSession(records, tags, validation.New(), time.Now)
}

func twoTracks() []domain.Track {
	return []domain.Track{
		{ID: 1, Title: "Intro", ArtistName: "Alice / Bob", AlbumTitle: "Debut", Year: intp(2001), TrackNumber: intp(1), TrackTotal: intp(12)},
		{ID: 2, Title: "Outro", ArtistName: "Alice/ Bob ", AlbumTitle: "Debut", Year: intp(2001), TrackNumber: intp(12), TrackTotal: intp(12)},
	}
}

func TestNewSession_Reconciliation(t *testing.T) {
	s := testSession(t, twoTracks(), nil)

	assert.Equal(t, []int64{1, 2}, s.TrackIDs())
	assert.False(t, s.Single())

	// Per-field, independently.
	assert.Equal(t, KindDivergent, s.Field(FieldTitle).Kind())
	assert.Equal(t, []string{"Intro", "Outro"}, s.Field(FieldTitle).Values())
	assert.Equal(t, KindUniform, s.Field(FieldAlbum).Kind())
	assert.Equal(t, "Debut", s.Field(FieldAlbum).Value())
	assert.Equal(t, KindUniform, s.Field(FieldYear).Kind())
	assert.Equal(t, "2001", s.Field(FieldYear).Value())
	assert.Equal(t, KindDivergent, s.Field(FieldTrackPosition).Kind())
	assert.Equal(t, []string{"1/12", "12/12"}, s.Field(FieldTrackPosition).Values())
}

func TestNewSession_ArtistWhitespaceIsCanonicalized(t *testing.T) {
	// The two raw artist strings differ only in spacing around the
	// delimiter, so the canonical projections agree.
	s := testSession(t, twoTracks(), nil)

	st := s.Field(FieldArtists)
	assert.Equal(t, KindUniform, st.Kind())
	assert.Equal(t, "Alice / Bob", st.Value())
}

func TestNewSession_AbsentNumericsEditAsEmpty(t *testing.T) {
	s := testSession(t, []domain.Track{{ID: 1, Title: "Solo"}}, nil)

	assert.Equal(t, "", s.Field(FieldYear).Value())
	assert.Equal(t, "", s.Field(FieldBPM).Value())
	assert.Equal(t, "", s.Field(FieldTrackPosition).Value())
}

func TestSetField_AlwaysEdited(t *testing.T) {
	s := testSession(t, twoTracks(), nil)

	// From divergent.
	s.SetField(FieldTitle, "New Title")
	assert.Equal(t, KindEdited, s.Field(FieldTitle).Kind())
	assert.Equal(t, "New Title", s.Field(FieldTitle).Value())

	// From uniform, even to the same value.
	s.SetField(FieldAlbum, "Debut")
	assert.Equal(t, KindEdited, s.Field(FieldAlbum).Kind())

	// Re-editing stays edited.
	s.SetField(FieldTitle, "Newer Title")
	assert.Equal(t, KindEdited, s.Field(FieldTitle).Kind())
	assert.Equal(t, "Newer Title", s.Field(FieldTitle).Value())
}

func TestSetField_ValidatesOnlyTouchedField(t *testing.T) {
	s := testSession(t, twoTracks(), nil)

	s.SetField(FieldYear, "20o1")
	assert.NotEmpty(t, s.FieldError(FieldYear))
	assert.True(t, s.HasBlockingErrors())
	assert.Empty(t, s.FieldError(FieldBPM))

	s.SetField(FieldYear, "2002")
	assert.Empty(t, s.FieldError(FieldYear))
	assert.False(t, s.HasBlockingErrors())
}

func TestDiscard_RestoresBaseline(t *testing.T) {
	s := testSession(t, twoTracks(), nil)

	s.SetField(FieldTitle, "New Title")
	s.SetField(FieldYear, "bad")
	require.True(t, s.HasBlockingErrors())

	s.Discard()

	assert.Equal(t, KindDivergent, s.Field(FieldTitle).Kind())
	assert.Equal(t, KindUniform, s.Field(FieldYear).Kind())
	assert.Equal(t, "2001", s.Field(FieldYear).Value())
	assert.False(t, s.HasBlockingErrors())
	assert.True(t, BuildPatch(s).IsEmpty())
}

func TestExtraTags_SingleOnly(t *testing.T) {
	s := testSession(t, twoTracks(), nil)

	assert.Error(t, s.AddExtraTag("TKEY"))
	assert.Error(t, s.SetExtraTag("TKEY", "Am"))
	assert.Error(t, s.RemoveExtraTag("TKEY"))
}

func TestExtraTags_Lifecycle(t *testing.T) {
	loaded := []domain.ExtraTag{{FrameID: "TKEY", Value: "Am"}}
	s := testSession(t, []domain.Track{{ID: 1, Title: "Solo"}}, loaded)

	assert.Equal(t, loaded, s.ExtraTags())

	// Duplicate frame ids are rejected.
	assert.Error(t, s.AddExtraTag("TKEY"))

	require.NoError(t, s.AddExtraTag("TSRC"))
	require.NoError(t, s.SetExtraTag("TSRC", "not an isrc"))
	assert.NotEmpty(t, s.ExtraTagError("TSRC"))
	assert.True(t, s.HasBlockingErrors())

	require.NoError(t, s.SetExtraTag("TSRC", "USRC17607839"))
	assert.Empty(t, s.ExtraTagError("TSRC"))

	require.NoError(t, s.RemoveExtraTag("TKEY"))
	assert.Equal(t, []domain.ExtraTag{{FrameID: "TSRC", Value: "USRC17607839"}}, s.ExtraTags())

	assert.Error(t, s.SetExtraTag("TKEY", "Am"))
	assert.Error(t, s.RemoveExtraTag("TKEY"))

	s.Discard()
	assert.Equal(t, loaded, s.ExtraTags())
}

func TestValidationErrors_MergesFieldsAndExtraTags(t *testing.T) {
	s := testSession(t, []domain.Track{{ID: 1, Title: "Solo"}}, nil)
	assert.Empty(t, s.ValidationErrors())

	s.SetField(FieldYear, "20o1")
	require.NoError(t, s.AddExtraTag("TSRC"))
	require.NoError(t, s.SetExtraTag("TSRC", "nope"))

	errs := s.ValidationErrors()
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, "year")
	assert.Contains(t, errs, "TSRC")
}

func TestSavedAckWindow(t *testing.T) {
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newSession(twoTracks(), nil, validation.New(), func() time.Time { return clock })

	assert.False(t, s.SavedAckVisible())
	s.showAck(1500 * time.Millisecond)
	assert.True(t, s.SavedAckVisible())

	require.Error(t, s.beginSave())

	clock = clock.Add(2 * time.Second)
	assert.False(t, s.SavedAckVisible())
	require.NoError(t, s.beginSave())

	// Second save while one is in flight.
	assert.Error(t, s.beginSave())
	s.endSave()
	require.NoError(t, s.beginSave())
}
