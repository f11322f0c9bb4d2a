// Package artwork caches cover art lookups. Every key is fetched at
// most once per process lifetime; concurrent requests for the same key
// share the single in-flight fetch, and results (including misses) are
// kept until Reset.
package artwork

import (
	"context"
	"fmt"
	"sync"

	"github.com/cadenzaapp/cadenza-core/internal/backend"
	"github.com/cadenzaapp/cadenza-core/internal/domain"
	"github.com/cadenzaapp/cadenza-core/internal/logger"
)

// Kind names the entity a cover belongs to.
type Kind string

const (
	KindTrack  Kind = "track"
	KindAlbum  Kind = "album"
	KindArtist Kind = "artist"
)

// Key identifies one cover art lookup.
type Key struct {
	Kind Kind
	ID   int64
}

func (k Key) String() string { return fmt.Sprintf("%s/%d", k.Kind, k.ID) }

// Image is a resolved cover. Nil Art means the entity has no cover;
// that miss is cached like any other result. Width, Height and
// BlurHash are best-effort enrichment and stay zero when the image
// data could not be decoded.
type Image struct {
	Art      *domain.CoverArt
	Width    int
	Height   int
	BlurHash string
}

// call is one in-flight fetch. done is closed once img is set.
type call struct {
	done chan struct{}
	img  Image
}

// Cache deduplicates cover art fetches against the backend.
type Cache struct {
	client backend.Client
	logger *logger.Logger
	// decode controls dimension and BlurHash enrichment.
	decode bool

	mu       sync.Mutex
	resolved map[Key]Image
	inflight map[Key]*call
}

// New creates an empty cache. When decode is true, resolved images are
// enriched with their dimensions and a BlurHash placeholder.
func New(client backend.Client, log *logger.Logger, decode bool) *Cache {
	return &Cache{
		client:   client,
		logger:   log,
		decode:   decode,
		resolved: make(map[Key]Image),
		inflight: make(map[Key]*call),
	}
}

// Get returns the cover for a key. A resolved entry returns
// immediately; an in-flight fetch is joined rather than repeated. When
// neither exists, Get starts the one fetch for this key on a context
// detached from the caller, so cancelling ctx abandons only this
// caller's wait and never the fetch itself.
func (c *Cache) Get(ctx context.Context, key Key) (Image, error) {
	c.mu.Lock()
	if img, ok := c.resolved[key]; ok {
		c.mu.Unlock()
		return img, nil
	}
	cl, ok := c.inflight[key]
	if !ok {
		cl = &call{done: make(chan struct{})}
		c.inflight[key] = cl
		go c.fetch(key, cl)
	}
	c.mu.Unlock()

	select {
	case <-cl.done:
		return cl.img, nil
	case <-ctx.Done():
		return Image{}, ctx.Err()
	}
}

// fetch runs the single backend lookup for a key and publishes the
// result. Backend errors resolve to a cached miss so a flaky lookup is
// not retried on every render.
func (c *Cache) fetch(key Key, cl *call) {
	ctx := context.Background()

	var art *domain.CoverArt
	var err error
	switch key.Kind {
	case KindAlbum:
		art, err = c.client.GetAlbumCoverArt(ctx, key.ID)
	case KindArtist:
		art, err = c.client.GetArtistCoverArt(ctx, key.ID)
	default:
		art, err = c.client.GetCoverArt(ctx, key.ID)
	}
	if err != nil {
		c.logger.WithError(err).Warn("cover art fetch failed", "key", key.String())
		art = nil
	}

	img := Image{Art: art}
	if art != nil && c.decode {
		img = enrich(art)
	}

	c.mu.Lock()
	c.resolved[key] = img
	delete(c.inflight, key)
	c.mu.Unlock()

	cl.img = img
	close(cl.done)
}

// Reset drops every resolved entry. In-flight fetches finish and
// publish into the fresh map. Used when the library data is reloaded
// wholesale.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolved = make(map[Key]Image)
}
