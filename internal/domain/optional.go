package domain

import (
	"bytes"
	"encoding/json"
)

// Optional is a three-state field for partial updates: unset (field absent),
// null (field explicitly cleared) or set to a value.
//
// When embedded in a request struct, a missing JSON key leaves the zero
// Optional (unset); a JSON null marks it null.
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Null returns an explicitly cleared Optional.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// IsSet reports whether the field was supplied at all (value or null).
func (o Optional[T]) IsSet() bool { return o.set }

// IsNull reports whether the field was supplied as null.
func (o Optional[T]) IsNull() bool { return o.set && o.null }

// Get returns the value and whether one is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set && !o.null
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.value = zero
		o.null = true
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}
