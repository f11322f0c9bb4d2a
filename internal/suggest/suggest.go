// Package suggest maintains the autocomplete suggestion sources for the
// tag editor: known artist names and album titles.
package suggest

import (
	"context"
	"sync"

	"github.com/cadenzaapp/cadenza-core/internal/backend"
	"github.com/cadenzaapp/cadenza-core/internal/domain"
	"github.com/cadenzaapp/cadenza-core/internal/logger"
)

// Service caches the library's artist and album names for the shell's
// autocomplete inputs. Refresh is called at load and after every
// successful save, since a save may create new artists or albums.
type Service struct {
	client backend.Client
	logger *logger.Logger

	mu      sync.RWMutex
	artists []string
	albums  []string
}

// New creates a suggestion service. The caches start empty until the
// first Refresh.
func New(client backend.Client, log *logger.Logger) *Service {
	return &Service{client: client, logger: log}
}

// Refresh reloads both suggestion sources from the backend.
func (s *Service) Refresh(ctx context.Context) error {
	artists, err := s.client.ListArtists(ctx)
	if err != nil {
		return err
	}
	albums, err := s.client.ListAlbums(ctx)
	if err != nil {
		return err
	}

	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	titles := make([]string, len(albums))
	for i, a := range albums {
		titles[i] = a.Title
	}

	s.mu.Lock()
	s.artists = names
	s.albums = titles
	s.mu.Unlock()

	s.logger.Debug("suggestion sources refreshed",
		"artists", len(names),
		"albums", len(titles),
	)
	return nil
}

// ArtistNames returns the cached artist-name suggestions.
func (s *Service) ArtistNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.artists...)
}

// AlbumTitles returns the cached album-title suggestions.
func (s *Service) AlbumTitles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.albums...)
}

// Current returns both suggestion sources as one snapshot.
func (s *Service) Current() domain.Suggestions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Suggestions{
		ArtistNames: append([]string(nil), s.artists...),
		AlbumTitles: append([]string(nil), s.albums...),
	}
}
