// Package defaults provides a small, generic default-value facility.
//
// It models "the default value for type T" as a Builder[T]: an opaque wrapper
// holding exactly one concrete value. Primitive constructors produce builders
// for base types, and combinators derive builders for composite types from
// builders for their components.
//
// Design goals:
//   - Lightweight: one wrapper type, a handful of free functions, no state.
//   - Deterministic: Value always returns the value fixed at construction.
//   - Total: no constructor, combinator, or accessor can fail at runtime;
//     type constraints (e.g. ordered map keys) are enforced at compile time.
//
// Notes on performance:
//   - Each combinator wraps an already-built inner value; application is O(1)
//     and never re-derives the inner default.
//   - Nesting depth is limited only by what the compiler accepts for the
//     resulting type, not by anything in this package.
package defaults

import "cmp"

// Builder carries the default value for type T.
//
// A Builder is immutable once constructed and safe to copy and share; its only
// operations are construction (via the primitives and combinators in this
// package) and Value.
type Builder[T any] struct {
	val T
}

// Value returns the default value fixed at construction.
//
// It is a total function: it always succeeds, and repeated calls return equal
// values.
func (b Builder[T]) Value() T { return b.val }

// Int returns the builder for the integer default, 0.
func Int() Builder[int] { return Builder[int]{} }

// Float returns the builder for the floating-point default, 0.0.
func Float() Builder[float64] { return Builder[float64]{} }

// String returns the builder for the string default, "".
func String() Builder[string] { return Builder[string]{} }

// Bool returns the builder for the boolean default, false.
func Bool() Builder[bool] { return Builder[bool]{} }

// Zero returns a builder wrapping the zero value of T.
//
// It covers types the fixed primitives do not name (structs, named types).
func Zero[T any]() Builder[T] { return Builder[T]{} }

// Const returns a builder wrapping a caller-chosen default.
//
// The value is captured as-is; callers sharing reference types through Const
// must treat them as read-only to preserve determinism.
func Const[T any](v T) Builder[T] { return Builder[T]{val: v} }

// OptionOf derives the builder for Option[T] from a builder for T.
//
// The default option is always present: OptionOf(b).Value() is Some of the
// inner default, never None.
func OptionOf[T any](inner Builder[T]) Builder[Option[T]] {
	return Builder[Option[T]]{val: Some(inner.val)}
}

// ListOf derives the builder for List[T] from a builder for T.
//
// The default list holds exactly one element, the inner default.
func ListOf[T any](inner Builder[T]) Builder[List[T]] {
	return Builder[List[T]]{val: NewList(inner.val)}
}

// SliceOf derives the builder for []T from a builder for T.
//
// The default slice holds exactly one element, the inner default. It is the
// random-access counterpart of ListOf.
func SliceOf[T any](inner Builder[T]) Builder[[]T] {
	return Builder[[]T]{val: []T{inner.val}}
}

// MapOf derives the builder for map[K]V from builders for K and V.
//
// The default map holds a single entry: the default key mapped to the default
// value. K is constrained to cmp.Ordered, so key types without a total
// ordering are rejected at compile time.
func MapOf[K cmp.Ordered, V any](key Builder[K], val Builder[V]) Builder[map[K]V] {
	return Builder[map[K]V]{val: map[K]V{key.val: val.val}}
}

// PairOf derives the builder for Pair[A, B] from builders for A and B.
func PairOf[A any, B any](first Builder[A], second Builder[B]) Builder[Pair[A, B]] {
	return Builder[Pair[A, B]]{val: NewPair(first.val, second.val)}
}

// TripleOf derives the builder for Triple[A, B, C] from builders for A, B and C.
func TripleOf[A any, B any, C any](first Builder[A], second Builder[B], third Builder[C]) Builder[Triple[A, B, C]] {
	return Builder[Triple[A, B, C]]{val: NewTriple(first.val, second.val, third.val)}
}

// PtrOf derives the builder for *T from a builder for T.
//
// The pointer targets a private copy of the inner default taken here, so every
// Value call returns the same pointer. Callers must not write through it.
func PtrOf[T any](inner Builder[T]) Builder[*T] {
	v := inner.val
	return Builder[*T]{val: &v}
}
