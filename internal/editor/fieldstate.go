package editor

import "reflect"

// Kind discriminates the closed set of field states.
type Kind int

const (
	// KindUniform means every selected track agrees on the field's value.
	KindUniform Kind = iota
	// KindDivergent means the selected tracks disagree.
	KindDivergent
	// KindEdited means the user set an explicit value, superseding
	// whatever state preceded it.
	KindEdited
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindUniform:
		return "uniform"
	case KindDivergent:
		return "divergent"
	case KindEdited:
		return "edited"
	default:
		return "unknown"
	}
}

// FieldState is the per-field reconciliation result: uniform with a
// single value, divergent with one value per selected track, or edited
// with the user's explicit value.
//
// A freshly computed state is never edited; edited is reachable only
// through Session.SetField and sticky until discard or reload.
type FieldState[T any] struct {
	kind   Kind
	value  T
	values []T
}

// Uniform constructs a uniform state.
func Uniform[T any](value T) FieldState[T] {
	return FieldState[T]{kind: KindUniform, value: value}
}

// Divergent constructs a divergent state holding one value per track in
// selection order.
func Divergent[T any](values []T) FieldState[T] {
	return FieldState[T]{kind: KindDivergent, values: values}
}

// Edited constructs an edited state.
func Edited[T any](value T) FieldState[T] {
	return FieldState[T]{kind: KindEdited, value: value}
}

// Kind returns the state's discriminator.
func (s FieldState[T]) Kind() Kind { return s.kind }

// IsEdited reports whether the user has explicitly set this field.
func (s FieldState[T]) IsEdited() bool { return s.kind == KindEdited }

// Value returns the uniform or edited value. For divergent states it
// returns the zero value; use Values.
func (s FieldState[T]) Value() T { return s.value }

// Values returns the per-track values of a divergent state, in
// selection order. Nil for uniform and edited states.
func (s FieldState[T]) Values() []T { return s.values }

// DisplayValue returns the value to render and true for uniform and
// edited states. For divergent states it returns false: there is no
// single value to show and the view renders its divergence placeholder.
func (s FieldState[T]) DisplayValue() (T, bool) {
	if s.kind == KindDivergent {
		var zero T
		return zero, false
	}
	return s.value, true
}

// ComputeField reconciles one field across the selected records. It
// returns Uniform with the first record's projected value when every
// record agrees under equals, and Divergent with one entry per record
// in input order otherwise. equals defaults to value equality.
//
// Reconciliation is applied independently per field; fields are never
// coupled to each other's divergence.
func ComputeField[R, T any](records []R, extract func(R) T, equals func(a, b T) bool) FieldState[T] {
	if equals == nil {
		equals = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}

	first := extract(records[0])
	uniform := true
	values := make([]T, len(records))
	values[0] = first
	for i := 1; i < len(records); i++ {
		values[i] = extract(records[i])
		if !equals(values[i], first) {
			uniform = false
		}
	}

	if uniform {
		return Uniform(first)
	}
	return Divergent(values)
}
