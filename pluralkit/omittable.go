package pluralkit

// Omittable is a tri-state value for PATCH payloads. The zero value is
// "absent": the field is left out of the payload entirely and the API
// leaves it unchanged. An explicit null is sent as JSON null and clears
// the field.
type Omittable[T any] struct {
	value T
	set   bool
	null  bool
}

// Set wraps a concrete value.
func Set[T any](v T) Omittable[T] {
	return Omittable[T]{value: v, set: true}
}

// SetNull marks the field for clearing.
func SetNull[T any]() Omittable[T] {
	return Omittable[T]{set: true, null: true}
}

// IsSet reports whether the field carries either a value or an explicit
// null. The zero value reports false.
func (o Omittable[T]) IsSet() bool {
	return o.set
}

// IsNull reports whether the field is an explicit null.
func (o Omittable[T]) IsNull() bool {
	return o.set && o.null
}

// Value returns the wrapped value and whether one is present.
func (o Omittable[T]) Value() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// putField writes the field into a wire payload: absent fields are
// omitted, explicit nulls are kept as null.
func putField[T any](payload map[string]any, key string, o Omittable[T]) {
	switch {
	case !o.set:
	case o.null:
		payload[key] = nil
	default:
		payload[key] = o.value
	}
}
