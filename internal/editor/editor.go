// Package editor implements the tag-editing core: field reconciliation
// across a multi-track selection, edit tracking, validation, and the
// save flow that turns edits into minimal backend patches.
package editor

import (
	"context"
	"sync"
	"time"

	"github.com/cadenzaapp/cadenza-core/internal/backend"
	"github.com/cadenzaapp/cadenza-core/internal/domain"
	"github.com/cadenzaapp/cadenza-core/internal/errors"
	"github.com/cadenzaapp/cadenza-core/internal/logger"
	"github.com/cadenzaapp/cadenza-core/internal/suggest"
	"github.com/cadenzaapp/cadenza-core/internal/validation"
)

// Editor loads selections into edit sessions and commits them back.
// One Editor serves the whole application; sessions are throwaway.
type Editor struct {
	client      backend.Client
	validator   *validation.Validator
	suggestions *suggest.Service
	logger      *logger.Logger
	ackDuration time.Duration

	// now is injectable so tests can control the ack window.
	now func() time.Time

	mu  sync.Mutex
	gen uint64
}

// Options configures an Editor.
type Options struct {
	// AckDuration is how long the post-save acknowledgment stays
	// visible and blocks a re-save. Zero means no window.
	AckDuration time.Duration
	// Now overrides the clock. Nil means time.Now.
	Now func() time.Time
}

// New creates an Editor over the given backend client.
func New(client backend.Client, v *validation.Validator, sug *suggest.Service, log *logger.Logger, opts Options) *Editor {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Editor{
		client:      client,
		validator:   v,
		suggestions: sug,
		logger:      log,
		ackDuration: opts.AckDuration,
		now:         now,
	}
}

// Open loads the selected tracks and reconciles them into a new
// session. Tracks that fail to load are dropped from the selection;
// if none load, Open fails with a not-found error.
//
// Open guards against overlapping loads: when a newer Open starts
// while this one is still fetching, the stale result is discarded and
// Open fails with a stale error so the caller never installs an
// out-of-date session.
func (e *Editor) Open(ctx context.Context, trackIDs []int64) (*Session, error) {
	e.mu.Lock()
	e.gen++
	gen := e.gen
	e.mu.Unlock()

	records := backend.FetchTracks(ctx, e.client, trackIDs)
	if len(records) == 0 {
		return nil, errors.NotFoundf("none of the %d selected tracks could be loaded", len(trackIDs))
	}

	var tags []domain.ExtraTag
	if len(records) == 1 {
		var err error
		tags, err = e.client.GetTrackExtraTags(ctx, records[0].ID)
		if err != nil {
			// The main fields are still editable without the
			// extra-tag list, so this is not fatal.
			e.logger.WithError(err).Warn("extra tags unavailable", "track_id", records[0].ID)
			tags = nil
		}
	}

	e.mu.Lock()
	stale := gen != e.gen
	e.mu.Unlock()
	if stale {
		return nil, errors.Stale("selection changed while loading")
	}

	s := newSession(records, tags, e.validator, e.now)
	e.logger.Debug("session opened",
		"session_id", s.ID(),
		"requested", len(trackIDs),
		"loaded", len(records),
	)
	return s, nil
}
