// Package backendtest provides an in-memory backend.Client for tests.
package backendtest

import (
	"context"
	"sync"

	"github.com/cadenzaapp/cadenza-core/internal/domain"
	"github.com/cadenzaapp/cadenza-core/internal/errors"
)

// Fake is an in-memory backend.Client. It records call counts, supports
// per-command error injection, and exposes a gate for holding cover-art
// fetches open in concurrency tests.
//
// The zero value is not usable; call New.
type Fake struct {
	mu sync.Mutex

	tracks  map[int64]domain.Track
	extra   map[int64][]domain.ExtraTag
	artists []domain.Artist
	albums  []domain.Album
	covers  map[int64]*domain.CoverArt

	// Calls counts invocations per command name, e.g. "GetTrack".
	Calls map[string]int

	// Errs injects an error per command name; the call fails and is
	// still counted.
	Errs map[string]error

	// BatchPatches records every patch passed to BatchUpdateTracks.
	BatchPatches []*domain.TrackPatch
	// BatchIDs records the id list of every BatchUpdateTracks call.
	BatchIDs [][]int64
	// UpdatePatches records every patch passed to UpdateTrack, keyed by track id.
	UpdatePatches map[int64][]*domain.TrackPatch
	// SetExtraCalls records every SetTrackExtraTags payload, keyed by track id.
	SetExtraCalls map[int64][][]domain.ExtraTag

	// CoverGate, when non-nil, blocks GetCoverArt until closed. Lets
	// tests hold a fetch in flight.
	CoverGate chan struct{}

	// TrackGate, when non-nil, blocks GetTrack until closed.
	TrackGate chan struct{}
}

// New creates an empty fake backend.
func New() *Fake {
	return &Fake{
		tracks:        make(map[int64]domain.Track),
		extra:         make(map[int64][]domain.ExtraTag),
		covers:        make(map[int64]*domain.CoverArt),
		Calls:         make(map[string]int),
		Errs:          make(map[string]error),
		UpdatePatches: make(map[int64][]*domain.TrackPatch),
		SetExtraCalls: make(map[int64][][]domain.ExtraTag),
	}
}

// PutTrack seeds or replaces a track.
func (f *Fake) PutTrack(t domain.Track) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tracks[t.ID] = t
}

// PutExtraTags seeds the extra tags of a track.
func (f *Fake) PutExtraTags(trackID int64, tags []domain.ExtraTag) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.extra[trackID] = append([]domain.ExtraTag(nil), tags...)
}

// PutArtists seeds the artist suggestion source.
func (f *Fake) PutArtists(artists ...domain.Artist) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.artists = append([]domain.Artist(nil), artists...)
}

// PutAlbums seeds the album suggestion source.
func (f *Fake) PutAlbums(albums ...domain.Album) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.albums = append([]domain.Album(nil), albums...)
}

// PutCover seeds embedded cover art for a track.
func (f *Fake) PutCover(trackID int64, art *domain.CoverArt) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.covers[trackID] = art
}

// CallCount returns how often the named command was invoked.
func (f *Fake) CallCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[name]
}

// begin counts the call and returns any injected error.
func (f *Fake) begin(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls[name]++
	return f.Errs[name]
}

// GetTrack implements backend.Client.
func (f *Fake) GetTrack(_ context.Context, trackID int64) (*domain.Track, error) {
	if err := f.begin("GetTrack"); err != nil {
		return nil, err
	}

	f.mu.Lock()
	gate := f.TrackGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tracks[trackID]
	if !ok {
		return nil, errors.NotFoundf("track %d not found", trackID)
	}
	return &t, nil
}

// UpdateTrack implements backend.Client. It applies the patch to the
// stored track the way the real backend does: absent fields keep their
// value, empty strings clear, null numerics clear.
func (f *Fake) UpdateTrack(_ context.Context, trackID int64, patch *domain.TrackPatch) (*domain.Track, error) {
	if err := f.begin("UpdateTrack"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tracks[trackID]
	if !ok {
		return nil, errors.NotFoundf("track %d not found", trackID)
	}
	f.UpdatePatches[trackID] = append(f.UpdatePatches[trackID], patch)
	applyPatch(&t, patch)
	f.tracks[trackID] = t
	return &t, nil
}

// BatchUpdateTracks implements backend.Client.
func (f *Fake) BatchUpdateTracks(_ context.Context, trackIDs []int64, patch *domain.TrackPatch) error {
	if err := f.begin("BatchUpdateTracks"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.BatchPatches = append(f.BatchPatches, patch)
	f.BatchIDs = append(f.BatchIDs, append([]int64(nil), trackIDs...))
	for _, id := range trackIDs {
		t, ok := f.tracks[id]
		if !ok {
			return errors.NotFoundf("track %d not found", id)
		}
		applyPatch(&t, patch)
		f.tracks[id] = t
	}
	return nil
}

// ListArtists implements backend.Client.
func (f *Fake) ListArtists(_ context.Context) ([]domain.Artist, error) {
	if err := f.begin("ListArtists"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Artist(nil), f.artists...), nil
}

// ListAlbums implements backend.Client.
func (f *Fake) ListAlbums(_ context.Context) ([]domain.Album, error) {
	if err := f.begin("ListAlbums"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Album(nil), f.albums...), nil
}

// GetTrackExtraTags implements backend.Client.
func (f *Fake) GetTrackExtraTags(_ context.Context, trackID int64) ([]domain.ExtraTag, error) {
	if err := f.begin("GetTrackExtraTags"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.ExtraTag(nil), f.extra[trackID]...), nil
}

// SetTrackExtraTags implements backend.Client.
func (f *Fake) SetTrackExtraTags(_ context.Context, trackID int64, tags []domain.ExtraTag) error {
	if err := f.begin("SetTrackExtraTags"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := append([]domain.ExtraTag(nil), tags...)
	f.SetExtraCalls[trackID] = append(f.SetExtraCalls[trackID], copied)
	f.extra[trackID] = copied
	return nil
}

// GetCoverArt implements backend.Client.
func (f *Fake) GetCoverArt(ctx context.Context, trackID int64) (*domain.CoverArt, error) {
	if err := f.begin("GetCoverArt"); err != nil {
		return nil, err
	}

	f.mu.Lock()
	gate := f.CoverGate
	f.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.covers[trackID], nil
}

// GetAlbumCoverArt implements backend.Client.
func (f *Fake) GetAlbumCoverArt(ctx context.Context, albumID int64) (*domain.CoverArt, error) {
	if err := f.begin("GetAlbumCoverArt"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.covers[albumID], nil
}

// GetArtistCoverArt implements backend.Client.
func (f *Fake) GetArtistCoverArt(ctx context.Context, artistID int64) (*domain.CoverArt, error) {
	if err := f.begin("GetArtistCoverArt"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.covers[artistID], nil
}

// applyPatch mirrors the backend's partial-update semantics.
func applyPatch(t *domain.Track, p *domain.TrackPatch) {
	setString(&t.Title, p.Title)
	setString(&t.ArtistName, p.ArtistName)
	setString(&t.AlbumTitle, p.AlbumTitle)
	setString(&t.AlbumArtist, p.AlbumArtist)
	setString(&t.Composer, p.Composer)
	setString(&t.Genre, p.Genre)
	setString(&t.Comment, p.Comment)
	setString(&t.CommentLang, p.CommentLang)
	setString(&t.Lyrics, p.Lyrics)
	setString(&t.LyricsLang, p.LyricsLang)
	setInt(&t.Year, p.Year)
	setInt(&t.BPM, p.BPM)
	setInt(&t.TrackNumber, p.TrackNumber)
	setInt(&t.TrackTotal, p.TrackTotal)
	setInt(&t.DiscNumber, p.DiscNumber)
	setInt(&t.DiscTotal, p.DiscTotal)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst **int, src *domain.NullInt) {
	if src == nil {
		return
	}
	if !src.Valid {
		*dst = nil
		return
	}
	v := src.Value
	*dst = &v
}
