// Package defo provides composable default values for Go types.
//
// The core idea is a single generic carrier, defaults.Builder[T], which holds
// exactly one value designated as "the default" for T. A fixed set of
// primitive constructors covers the base types (0, 0.0, "", false), and a set
// of combinators derives builders for composite types (options, lists,
// slices, maps, pairs, triples) out of builders for their component types.
//
// Everything is pure and total: construction never fails, Value never fails,
// and unwrapping the same builder twice returns equal values. There is no
// reflection-based construction, no container, and no wiring: a builder is
// just a value you compose once and then unwrap wherever a real result is not
// available (typically inside stubs and fakes standing in for deferred or
// effectful computations).
//
// See subpackages:
//   - defaults: the builder, its combinators, the supporting value types
//     (Option, List, Pair, Triple), and a small named-defaults Registry
//   - examples/stub: a runnable example wiring builders into a stubbed service
package defo
