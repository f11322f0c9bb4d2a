package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField_Year(t *testing.T) {
	v := New()

	assert.Empty(t, v.Field("year", "2024"))
	assert.Empty(t, v.Field("year", "1000"))
	assert.Empty(t, v.Field("year", "2099"))
	assert.NotEmpty(t, v.Field("year", "99"))
	assert.NotEmpty(t, v.Field("year", "0999"))
	assert.NotEmpty(t, v.Field("year", "2100"))
	assert.NotEmpty(t, v.Field("year", "20x4"))
}

func TestField_BPM(t *testing.T) {
	v := New()

	assert.Empty(t, v.Field("bpm", "128"))
	assert.Empty(t, v.Field("bpm", "0"))
	assert.NotEmpty(t, v.Field("bpm", "abc"))
	assert.NotEmpty(t, v.Field("bpm", "-10"))
	assert.NotEmpty(t, v.Field("bpm", "128.5"))
}

func TestField_TrackPosition(t *testing.T) {
	v := New()

	assert.Empty(t, v.Field("track_position", "3/10"))
	assert.Empty(t, v.Field("track_position", "5"))
	assert.Empty(t, v.Field("disc_position", "1/2"))
	assert.NotEmpty(t, v.Field("track_position", "x"))
	assert.NotEmpty(t, v.Field("track_position", "3/"))
	assert.NotEmpty(t, v.Field("track_position", "/10"))
}

func TestField_LanguageCodes(t *testing.T) {
	v := New()

	assert.Empty(t, v.Field("comment_lang", "eng"))
	assert.Empty(t, v.Field("lyrics_lang", "jpn"))
	assert.NotEmpty(t, v.Field("comment_lang", "en"))
	assert.NotEmpty(t, v.Field("comment_lang", "ENG"))
	assert.NotEmpty(t, v.Field("comment_lang", "engl"))
}

func TestField_EmptyInputAlwaysPasses(t *testing.T) {
	v := New()

	for _, key := range []string{"year", "bpm", "track_position", "comment_lang"} {
		assert.Empty(t, v.Field(key, ""), "empty %s should pass", key)
	}
}

func TestField_UnknownKeyPasses(t *testing.T) {
	v := New()

	assert.Empty(t, v.Field("title", "anything at all"))
	assert.Empty(t, v.Field("lyrics", "la la la"))
}

func TestExtraTag_MusicalKey(t *testing.T) {
	v := New()

	for _, key := range []string{"C", "Am", "F#", "Ebm", "G#m", "o"} {
		assert.Empty(t, v.ExtraTag("TKEY", key), "key %q should pass", key)
	}
	for _, key := range []string{"H", "A#bm", "am", "c minor"} {
		assert.NotEmpty(t, v.ExtraTag("TKEY", key), "key %q should fail", key)
	}
}

func TestExtraTag_ISRC(t *testing.T) {
	v := New()

	assert.Empty(t, v.ExtraTag("TSRC", "USRC17607839"))
	assert.Empty(t, v.ExtraTag("TSRC", "GBAYE0601498"))
	assert.NotEmpty(t, v.ExtraTag("TSRC", "usrc17607839"))
	assert.NotEmpty(t, v.ExtraTag("TSRC", "USRC176078"))
	assert.NotEmpty(t, v.ExtraTag("TSRC", "not an isrc"))
}

func TestExtraTag_UnknownFramePasses(t *testing.T) {
	v := New()

	assert.Empty(t, v.ExtraTag("TXXX", "whatever"))
	assert.Empty(t, v.ExtraTag("TMOO", "moody"))
}
