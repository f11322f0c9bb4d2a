package editor

import (
	"context"

	"github.com/cadenzaapp/cadenza-core/internal/backend"
	"github.com/cadenzaapp/cadenza-core/internal/domain"
	"github.com/cadenzaapp/cadenza-core/internal/errors"
)

// Save commits the session's edits and returns the replacement session
// built from the re-fetched records. The acknowledgment window is
// already running on the returned session.
//
// Save refuses to run when there is nothing to send, when a save is
// already in flight or the previous acknowledgment is still showing,
// or when any field or extra tag carries a validation error. On
// backend failure the original session is left intact, edits and all.
func (e *Editor) Save(ctx context.Context, s *Session) (*Session, error) {
	patch := BuildPatch(s)
	extra, extraDirty := pendingExtraTags(s)
	if patch.IsEmpty() && !extraDirty {
		return nil, errors.Conflict("nothing to save")
	}
	if errs := s.ValidationErrors(); len(errs) > 0 {
		return nil, errors.ValidationWithDetails("fix the highlighted fields before saving", errs)
	}
	if err := s.beginSave(); err != nil {
		return nil, err
	}
	defer s.endSave()

	if s.Single() {
		id := s.TrackIDs()[0]
		if !patch.IsEmpty() {
			if _, err := e.client.UpdateTrack(ctx, id, patch); err != nil {
				return nil, errors.Wrapf(err, errors.CodeUnavailable, "update of track %d failed", id)
			}
		}
		if extraDirty {
			if err := e.client.SetTrackExtraTags(ctx, id, extra); err != nil {
				return nil, errors.Wrap(err, errors.CodeUnavailable, "extra tag update failed")
			}
		}
	} else {
		if err := e.client.BatchUpdateTracks(ctx, s.TrackIDs(), patch); err != nil {
			return nil, errors.Wrap(err, errors.CodeUnavailable, "batch update failed")
		}
	}

	next, err := e.reopen(ctx, s)
	if err != nil {
		return nil, err
	}
	next.showAck(e.ackDuration)

	if err := e.suggestions.Refresh(ctx); err != nil {
		// Stale suggestions are cosmetic; the save already landed.
		e.logger.WithError(err).Warn("suggestion refresh failed after save")
	}

	e.logger.Info("session saved",
		"session_id", s.ID(),
		"tracks", len(s.TrackIDs()),
		"next_session_id", next.ID(),
	)
	return next, nil
}

// reopen re-fetches the saved tracks and reconciles them into the
// session that replaces s.
func (e *Editor) reopen(ctx context.Context, s *Session) (*Session, error) {
	records := backend.FetchTracks(ctx, e.client, s.TrackIDs())
	if len(records) == 0 {
		return nil, errors.NotFound("saved tracks could not be reloaded")
	}

	var tags []domain.ExtraTag
	if len(records) == 1 {
		var err error
		tags, err = e.client.GetTrackExtraTags(ctx, records[0].ID)
		if err != nil {
			e.logger.WithError(err).Warn("extra tags unavailable", "track_id", records[0].ID)
			tags = nil
		}
	}
	return newSession(records, tags, e.validator, e.now), nil
}

// pendingExtraTags reports the session's current extra-tag list and
// whether it differs from the loaded snapshot. Multi-track selections
// never edit extra tags.
func pendingExtraTags(s *Session) ([]domain.ExtraTag, bool) {
	if !s.Single() {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.extraTags) != len(s.snapshotTags) {
		return append([]domain.ExtraTag(nil), s.extraTags...), true
	}
	for i := range s.extraTags {
		if s.extraTags[i] != s.snapshotTags[i] {
			return append([]domain.ExtraTag(nil), s.extraTags...), true
		}
	}
	return nil, false
}
