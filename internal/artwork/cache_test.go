package artwork

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadenzaapp/cadenza-core/internal/backend/backendtest"
	"github.com/cadenzaapp/cadenza-core/internal/domain"
	"github.com/cadenzaapp/cadenza-core/internal/logger"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestGet_ResolvedHit(t *testing.T) {
	fake := backendtest.New()
	fake.PutCover(1, &domain.CoverArt{Data: []byte("raw"), MimeType: "image/jpeg"})
	c := New(fake, logger.Discard(), false)

	key := Key{Kind: KindTrack, ID: 1}
	img, err := c.Get(context.Background(), key)
	require.NoError(t, err)
	require.NotNil(t, img.Art)
	assert.Equal(t, []byte("raw"), img.Art.Data)
	assert.Equal(t, 1, fake.CallCount("GetCoverArt"))

	// Second request is served from the resolved map.
	_, err = c.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.CallCount("GetCoverArt"))
}

func TestGet_MissIsCached(t *testing.T) {
	fake := backendtest.New()
	c := New(fake, logger.Discard(), false)

	key := Key{Kind: KindTrack, ID: 9}
	img, err := c.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Nil(t, img.Art)

	_, err = c.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.CallCount("GetCoverArt"))
}

func TestGet_BackendErrorCachedAsMiss(t *testing.T) {
	fake := backendtest.New()
	fake.Errs["GetCoverArt"] = assert.AnError
	c := New(fake, logger.Discard(), false)

	img, err := c.Get(context.Background(), Key{Kind: KindTrack, ID: 1})
	require.NoError(t, err)
	assert.Nil(t, img.Art)

	_, err = c.Get(context.Background(), Key{Kind: KindTrack, ID: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, fake.CallCount("GetCoverArt"))
}

func TestGet_ConcurrentRequestsShareOneFetch(t *testing.T) {
	fake := backendtest.New()
	fake.PutCover(1, &domain.CoverArt{Data: []byte("raw"), MimeType: "image/jpeg"})
	gate := make(chan struct{})
	fake.CoverGate = gate
	c := New(fake, logger.Discard(), false)

	key := Key{Kind: KindTrack, ID: 1}
	type result struct {
		img Image
		err error
	}
	results := make(chan result, 2)
	for i := 0; i < 2; i++ {
		go func() {
			img, err := c.Get(context.Background(), key)
			results <- result{img, err}
		}()
	}

	// Both callers are attached to the one in-flight fetch.
	require.Eventually(t, func() bool {
		return fake.CallCount("GetCoverArt") == 1
	}, time.Second, time.Millisecond)

	close(gate)
	for i := 0; i < 2; i++ {
		r := <-results
		require.NoError(t, r.err)
		require.NotNil(t, r.img.Art)
	}
	assert.Equal(t, 1, fake.CallCount("GetCoverArt"))

	// A third request after resolution issues no fetch at all.
	_, err := c.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.CallCount("GetCoverArt"))
}

func TestGet_CallerCancelDetachesOnlyThatCaller(t *testing.T) {
	fake := backendtest.New()
	fake.PutCover(1, &domain.CoverArt{Data: []byte("raw"), MimeType: "image/jpeg"})
	gate := make(chan struct{})
	fake.CoverGate = gate
	c := New(fake, logger.Discard(), false)

	key := Key{Kind: KindTrack, ID: 1}
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() {
		_, err := c.Get(ctx, key)
		errc <- err
	}()
	require.Eventually(t, func() bool {
		return fake.CallCount("GetCoverArt") == 1
	}, time.Second, time.Millisecond)

	// The caller gives up; the fetch keeps going.
	cancel()
	assert.ErrorIs(t, <-errc, context.Canceled)

	close(gate)

	// The abandoned fetch still resolved and populated the cache.
	require.Eventually(t, func() bool {
		img, err := c.Get(context.Background(), key)
		return err == nil && img.Art != nil
	}, time.Second, time.Millisecond)
	assert.Equal(t, 1, fake.CallCount("GetCoverArt"))
}

func TestGet_KindsDispatch(t *testing.T) {
	fake := backendtest.New()
	fake.PutCover(5, &domain.CoverArt{Data: []byte("raw"), MimeType: "image/png"})
	c := New(fake, logger.Discard(), false)

	_, err := c.Get(context.Background(), Key{Kind: KindAlbum, ID: 5})
	require.NoError(t, err)
	_, err = c.Get(context.Background(), Key{Kind: KindArtist, ID: 5})
	require.NoError(t, err)

	assert.Equal(t, 1, fake.CallCount("GetAlbumCoverArt"))
	assert.Equal(t, 1, fake.CallCount("GetArtistCoverArt"))
	assert.Equal(t, 0, fake.CallCount("GetCoverArt"))
}

func TestGet_Enrichment(t *testing.T) {
	fake := backendtest.New()
	fake.PutCover(1, &domain.CoverArt{Data: pngBytes(t, 300, 200), MimeType: "image/png"})
	c := New(fake, logger.Discard(), true)

	img, err := c.Get(context.Background(), Key{Kind: KindTrack, ID: 1})
	require.NoError(t, err)
	assert.Equal(t, 300, img.Width)
	assert.Equal(t, 200, img.Height)
	assert.NotEmpty(t, img.BlurHash)
}

func TestGet_UndecodableDataKeepsBytes(t *testing.T) {
	fake := backendtest.New()
	fake.PutCover(1, &domain.CoverArt{Data: []byte("not an image"), MimeType: "image/jpeg"})
	c := New(fake, logger.Discard(), true)

	img, err := c.Get(context.Background(), Key{Kind: KindTrack, ID: 1})
	require.NoError(t, err)
	require.NotNil(t, img.Art)
	assert.Equal(t, []byte("not an image"), img.Art.Data)
	assert.Zero(t, img.Width)
	assert.Empty(t, img.BlurHash)
}

func TestReset(t *testing.T) {
	fake := backendtest.New()
	fake.PutCover(1, &domain.CoverArt{Data: []byte("raw"), MimeType: "image/jpeg"})
	c := New(fake, logger.Discard(), false)

	key := Key{Kind: KindTrack, ID: 1}
	_, err := c.Get(context.Background(), key)
	require.NoError(t, err)

	c.Reset()

	_, err = c.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, 2, fake.CallCount("GetCoverArt"))
}
