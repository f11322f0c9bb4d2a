// Package backend defines the command-layer contract between the editor
// core and the external library backend process.
//
// The backend is an opaque collaborator: how commands are transported is
// not this package's concern. Implementations are supplied by the host
// shell; tests use backendtest.Fake.
package backend

import (
	"context"

	"github.com/cadenzaapp/cadenza-core/internal/domain"
)

// Client is the set of backend commands the editor core invokes.
//
// All calls are asynchronous requests against another process; a missing
// entity surfaces as an error matching errors.ErrNotFound.
type Client interface {
	// GetTrack fetches a single track with its joined display columns.
	GetTrack(ctx context.Context, trackID int64) (*domain.Track, error)

	// UpdateTrack applies a partial update to one track and returns the
	// refreshed authoritative record.
	UpdateTrack(ctx context.Context, trackID int64, patch *domain.TrackPatch) (*domain.Track, error)

	// BatchUpdateTracks applies the same patch to every listed track.
	// The response carries no records; callers re-fetch.
	BatchUpdateTracks(ctx context.Context, trackIDs []int64, patch *domain.TrackPatch) error

	// ListArtists and ListAlbums feed the autocomplete suggestion sources.
	ListArtists(ctx context.Context) ([]domain.Artist, error)
	ListAlbums(ctx context.Context) ([]domain.Album, error)

	// GetTrackExtraTags and SetTrackExtraTags manage the free-form
	// frame-id-keyed attributes of a single track.
	GetTrackExtraTags(ctx context.Context, trackID int64) ([]domain.ExtraTag, error)
	SetTrackExtraTags(ctx context.Context, trackID int64, tags []domain.ExtraTag) error

	// Cover-art lookups. A track, album, or artist without artwork
	// returns (nil, nil).
	GetCoverArt(ctx context.Context, trackID int64) (*domain.CoverArt, error)
	GetAlbumCoverArt(ctx context.Context, albumID int64) (*domain.CoverArt, error)
	GetArtistCoverArt(ctx context.Context, artistID int64) (*domain.CoverArt, error)
}
