// Package dnf models Boolean functions over an opaque ordered variable
// domain as sums-of-products ("cubes"). It provides term insertion with
// constant folding, cube-level disjunction reduction, subsumption testing,
// and a multi-pass formula optimizer.
//
// The engine is intentionally conservative: try-reduce never produces a
// logically wrong cube, but it may report "not reducible" when a cleverer
// split would succeed. Formula.Optimize compensates by iterating reductions
// to a fixpoint.
//
// # Term order
//
// Terms are totally ordered:
//
//	False < Var(v) < NegVar(v) < Var(v') (v<v') < ... < True
//
// False sorts first so a cube containing it can short-circuit to "always
// false" in O(1). True sorts last and is absorbed on insertion, so it never
// actually appears inside a stored Cube; the empty cube already denotes
// "always true".
//
// # Errors
//
// None. Every operation in this package is a total function; a malformed
// invariant (unsorted terms, duplicate terms) is a programming error in the
// caller, not a reportable runtime error.
package dnf
