package editor

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cadenzaapp/cadenza-core/internal/domain"
	"github.com/cadenzaapp/cadenza-core/internal/errors"
	"github.com/cadenzaapp/cadenza-core/internal/validation"
)

// Session is one live edit session over the selected tracks. It owns
// one FieldState per editable field, the per-field validation errors,
// and - for single selections - the track's extra-tag list.
//
// A Session is replaced wholesale when the selection changes or after a
// successful save re-fetch; it is never reloaded in place. The snapshot
// of the loaded records is kept only so Discard can recompute the
// baseline; patch construction never re-diffs against it.
type Session struct {
	id  string
	ids []int64

	mu           sync.Mutex
	snapshot     []domain.Track
	snapshotTags []domain.ExtraTag
	fields       map[Field]FieldState[string]
	fieldErrs    map[Field]string
	extraTags    []domain.ExtraTag
	extraErrs    map[string]string

	validator *validation.Validator
	now       func() time.Time
	saving    bool
	ackUntil  time.Time
}

// newSession reconciles the loaded records into a fresh session.
func newSession(records []domain.Track, tags []domain.ExtraTag, v *validation.Validator, now func() time.Time) *Session {
	ids := make([]int64, len(records))
	for i := range records {
		ids[i] = records[i].ID
	}

	return &Session{
		id:           uuid.NewString(),
		ids:          ids,
		snapshot:     records,
		snapshotTags: append([]domain.ExtraTag(nil), tags...),
		fields:       reconcileFields(records),
		fieldErrs:    make(map[Field]string),
		extraTags:    append([]domain.ExtraTag(nil), tags...),
		extraErrs:    make(map[string]string),
		validator:    v,
		now:          now,
	}
}

// reconcileFields computes every FieldState from scratch. The result
// never contains an edited state.
func reconcileFields(records []domain.Track) map[Field]FieldState[string] {
	fields := make(map[Field]FieldState[string], len(Fields))
	for _, f := range Fields {
		fields[f] = ComputeField(records, func(t domain.Track) string {
			return f.project(&t)
		}, func(a, b string) bool {
			return a == b
		})
	}
	return fields
}

// ID returns the session's instance id, used for log correlation.
func (s *Session) ID() string { return s.id }

// TrackIDs returns the selection in order.
func (s *Session) TrackIDs() []int64 {
	return append([]int64(nil), s.ids...)
}

// Single reports whether exactly one track is selected.
func (s *Session) Single() bool { return len(s.ids) == 1 }

// Field returns the current state of a field.
func (s *Session) Field(f Field) FieldState[string] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields[f]
}

// DisplayValue returns the value to render for a field, or false when
// the field is divergent and the view shows its placeholder instead.
func (s *Session) DisplayValue(f Field) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields[f].DisplayValue()
}

// SetField records an explicit user edit. The field transitions to
// edited unconditionally, whatever its prior state, and its validator
// runs on the new raw value. Only the touched field is validated.
func (s *Session) SetField(f Field, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fields[f] = Edited(raw)
	if msg := s.validator.Field(string(f), raw); msg != "" {
		s.fieldErrs[f] = msg
	} else {
		delete(s.fieldErrs, f)
	}
}

// FieldError returns the validation message for a field, or "".
func (s *Session) FieldError(f Field) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fieldErrs[f]
}

// Discard recomputes every field from the originally loaded records,
// dropping all edits, extra-tag changes, and validation errors. The
// session returns to its just-loaded baseline.
func (s *Session) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fields = reconcileFields(s.snapshot)
	s.fieldErrs = make(map[Field]string)
	s.extraTags = append([]domain.ExtraTag(nil), s.snapshotTags...)
	s.extraErrs = make(map[string]string)
}

// ExtraTags returns the session's extra-tag entries in order.
func (s *Session) ExtraTags() []domain.ExtraTag {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ExtraTag(nil), s.extraTags...)
}

// AddExtraTag appends a new empty entry for the given frame id. Frame
// ids are unique within a session, and extra tags are only addressable
// when exactly one track is selected.
func (s *Session) AddExtraTag(frameID string) error {
	if !s.Single() {
		return errors.Conflict("extra tags are only editable for a single track")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tag := range s.extraTags {
		if tag.FrameID == frameID {
			return errors.Conflictf("extra tag %s already present", frameID)
		}
	}
	s.extraTags = append(s.extraTags, domain.ExtraTag{FrameID: frameID})
	return nil
}

// SetExtraTag sets the value of an existing entry and validates it
// against the frame id's rule.
func (s *Session) SetExtraTag(frameID, value string) error {
	if !s.Single() {
		return errors.Conflict("extra tags are only editable for a single track")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.extraTags {
		if s.extraTags[i].FrameID != frameID {
			continue
		}
		s.extraTags[i].Value = value
		if msg := s.validator.ExtraTag(frameID, value); msg != "" {
			s.extraErrs[frameID] = msg
		} else {
			delete(s.extraErrs, frameID)
		}
		return nil
	}
	return errors.NotFoundf("extra tag %s not present", frameID)
}

// RemoveExtraTag deletes an entry and its validation error.
func (s *Session) RemoveExtraTag(frameID string) error {
	if !s.Single() {
		return errors.Conflict("extra tags are only editable for a single track")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.extraTags {
		if s.extraTags[i].FrameID == frameID {
			s.extraTags = append(s.extraTags[:i], s.extraTags[i+1:]...)
			delete(s.extraErrs, frameID)
			return nil
		}
	}
	return errors.NotFoundf("extra tag %s not present", frameID)
}

// ExtraTagError returns the validation message for an extra tag, or "".
func (s *Session) ExtraTagError(frameID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.extraErrs[frameID]
}

// HasBlockingErrors reports whether any field or extra-tag validation
// error is outstanding. Saving is refused while this holds.
func (s *Session) HasBlockingErrors() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.fieldErrs) > 0 || len(s.extraErrs) > 0
}

// ValidationErrors returns every outstanding validation message in one
// map, field errors keyed by field name and extra-tag errors by frame
// id. Empty when nothing blocks a save.
func (s *Session) ValidationErrors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	errs := make(map[string]string, len(s.fieldErrs)+len(s.extraErrs))
	for f, msg := range s.fieldErrs {
		errs[string(f)] = msg
	}
	for frameID, msg := range s.extraErrs {
		errs[frameID] = msg
	}
	return errs
}

// SavedAckVisible reports whether the transient "saved" acknowledgment
// from the last successful save is still showing.
func (s *Session) SavedAckVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now().Before(s.ackUntil)
}

// beginSave marks a save in flight. It reports false when one already
// is, or when the previous save's acknowledgment is still showing.
func (s *Session) beginSave() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saving {
		return errors.Conflict("a save is already in progress")
	}
	if s.now().Before(s.ackUntil) {
		return errors.Conflict("previous save acknowledgment still showing")
	}
	s.saving = true
	return nil
}

// endSave clears the in-flight marker.
func (s *Session) endSave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false
}

// showAck starts the acknowledgment window.
func (s *Session) showAck(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ackUntil = s.now().Add(d)
}
