package backend

import (
	"context"
	"sync"

	"github.com/cadenzaapp/cadenza-core/internal/domain"
)

// FetchTracks fetches the given tracks with one independent GetTrack
// request per id. Requests run concurrently and responses arrive in any
// order, so results are matched back by id and returned in selection
// order. Failed or missing tracks are silently dropped from the result.
func FetchTracks(ctx context.Context, client Client, ids []int64) []domain.Track {
	results := make([]*domain.Track, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		i, id := i, id
		wg.Add(1)
		go func() {
			defer wg.Done()
			track, err := client.GetTrack(ctx, id)
			if err != nil {
				return
			}
			results[i] = track
		}()
	}
	wg.Wait()

	tracks := make([]domain.Track, 0, len(ids))
	for _, r := range results {
		if r != nil {
			tracks = append(tracks, *r)
		}
	}
	return tracks
}
