// Package validation provides the per-field input validators for the tag
// editor, built on the validator/v10 library.
//
// Validation is pure and synchronous: it runs on every keystroke for the
// touched field only, and independently over every extra-tag entry keyed
// by its frame id. An empty input never fails - clearing a field is
// always legal and handled by the patch layer's clear sentinels.
package validation

import (
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Validation patterns for the custom rules.
var (
	nonNegIntRe  = regexp.MustCompile(`^\d+$`)
	yearRe       = regexp.MustCompile(`^\d{4}$`)
	positionRe   = regexp.MustCompile(`^\d+(/\d+)?$`)
	lang3Re      = regexp.MustCompile(`^[a-z]{3}$`)
	musicalKeyRe = regexp.MustCompile(`^(o|[A-G][#b]?m?)$`)
	isrcRe       = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{3}\d{7}$`)
)

// rule pairs a validator tag with its user-facing message.
type rule struct {
	tag     string
	message string
}

// fieldRules maps editable field keys to their rule. Fields without an
// entry accept any input.
var fieldRules = map[string]rule{
	"year":           {"year_range", "must be a 4-digit year between 1000 and 2099"},
	"bpm":            {"nonneg_int", "must be a non-negative whole number"},
	"track_position": {"track_position", "must be a number, or number/total like 3/10"},
	"disc_position":  {"track_position", "must be a number, or number/total like 1/2"},
	"comment_lang":   {"lang3", "must be a 3-letter lowercase language code"},
	"lyrics_lang":    {"lang3", "must be a 3-letter lowercase language code"},
}

// frameRules maps the closed set of validated extra-tag frame ids to
// their rule. Frames without an entry accept any value.
var frameRules = map[string]rule{
	"TBPM": {"nonneg_int", "must be a non-negative whole number"},
	"TKEY": {"musical_key", "must be a musical key like Am, F# or Ebm"},
	"TSRC": {"isrc", "must be a 12-character ISRC like USRC17607839"},
	"TLAN": {"lang3", "must be a 3-letter lowercase language code"},
}

// Validator validates raw field input against the fixed per-field rules.
type Validator struct {
	v *validator.Validate
}

// New creates a validator with the editor's custom rules registered.
func New() *Validator {
	v := validator.New()

	mustRegister(v, "nonneg_int", func(fl validator.FieldLevel) bool {
		return nonNegIntRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "year_range", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !yearRe.MatchString(s) {
			return false
		}
		year, err := strconv.Atoi(s)
		return err == nil && year >= 1000 && year <= 2099
	})
	mustRegister(v, "track_position", func(fl validator.FieldLevel) bool {
		return positionRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "lang3", func(fl validator.FieldLevel) bool {
		return lang3Re.MatchString(fl.Field().String())
	})
	mustRegister(v, "musical_key", func(fl validator.FieldLevel) bool {
		return musicalKeyRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "isrc", func(fl validator.FieldLevel) bool {
		return isrcRe.MatchString(fl.Field().String())
	})

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Field validates the raw editing representation of a field and returns
// a user-facing message, or "" when the input is acceptable.
func (v *Validator) Field(key, raw string) string {
	return v.check(fieldRules, key, raw)
}

// ExtraTag validates an extra-tag value against its frame id's rule and
// returns a user-facing message, or "" when the input is acceptable.
func (v *Validator) ExtraTag(frameID, raw string) string {
	return v.check(frameRules, frameID, raw)
}

func (v *Validator) check(rules map[string]rule, key, raw string) string {
	if raw == "" {
		return ""
	}
	r, ok := rules[key]
	if !ok {
		return ""
	}
	if err := v.v.Var(raw, r.tag); err != nil {
		return r.message
	}
	return ""
}
