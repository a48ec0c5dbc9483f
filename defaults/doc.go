// Package defaults provides a generic carrier for default values plus
// combinators that compose carriers for nested types.
//
// This package intentionally supports two layers:
//
//   - Builder[T] — an opaque, immutable wrapper around exactly one value of T,
//     built from primitive constructors (Int, Float, String, Bool, Zero, Const)
//     and composed via combinators (OptionOf, ListOf, SliceOf, MapOf, PairOf,
//     TripleOf, PtrOf). Unwrap with Value(). Every operation is pure and total.
//
//   - Registry — an optional, build-time-only bag of named builders for stub
//     harnesses that resolve defaults by key. Typed retrieval (ResolveAs)
//     returns structured errors you can assert in tests.
//
// Quick guidance
//
// Compose builders structurally, innermost first:
//
//	b := defaults.OptionOf(defaults.SliceOf(defaults.Int()))
//	b.Value() // Some([]int{0})
//
// Builders are freely copyable and safe to share: nothing mutates them after
// construction, so no synchronization is needed.
//
// Import
//
//	"github.com/sghaida/defo/defaults"
package defaults
