package defaults

// Option represents an optional value of type T: it either contains a value
// or it does not.
//
// Option is a plain value type. When T is comparable, Option[T] is comparable
// too, so nested options can be checked with ==. The zero value is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option containing v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns the empty Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// HasValue reports whether the Option contains a value.
func (o Option[T]) HasValue() bool { return o.present }

// Value returns the contained value, or the zero value of T when empty.
func (o Option[T]) Value() T { return o.value }

// ValueOr returns the contained value, or fallback when empty.
func (o Option[T]) ValueOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}
