package suggest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadenzaapp/cadenza-core/internal/backend/backendtest"
	"github.com/cadenzaapp/cadenza-core/internal/domain"
	"github.com/cadenzaapp/cadenza-core/internal/logger"
)

func TestRefresh(t *testing.T) {
	fake := backendtest.New()
	fake.PutArtists(domain.Artist{ID: 1, Name: "Alice"}, domain.Artist{ID: 2, Name: "Bob"})
	fake.PutAlbums(domain.Album{ID: 1, Title: "Debut"})

	svc := New(fake, logger.Discard())
	assert.Empty(t, svc.ArtistNames())

	require.NoError(t, svc.Refresh(context.Background()))

	assert.Equal(t, []string{"Alice", "Bob"}, svc.ArtistNames())
	assert.Equal(t, []string{"Debut"}, svc.AlbumTitles())

	cur := svc.Current()
	assert.Equal(t, domain.Suggestions{
		ArtistNames: []string{"Alice", "Bob"},
		AlbumTitles: []string{"Debut"},
	}, cur)
}

func TestRefresh_BackendError(t *testing.T) {
	fake := backendtest.New()
	fake.Errs["ListArtists"] = assert.AnError

	svc := New(fake, logger.Discard())
	assert.Error(t, svc.Refresh(context.Background()))
	assert.Empty(t, svc.ArtistNames())
}
