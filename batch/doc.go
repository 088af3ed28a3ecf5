// Package batch orchestrates router.Route over every eligible source pin of
// a sitegraph.Graph, single-threaded or sharded across a fixed worker
// count.
//
// A source pin is eligible when its direction is Output or Inout — an
// Input-only pin never drives a net, so it can never be the origin of a
// route. Results are collected into a map keyed by Pair{Source, Sink},
// with pairs whose requires and implies formulas are both ⊥ dropped.
package batch
