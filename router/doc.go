// Package router computes, for a single source pin in a sitegraph.Graph,
// the requires/implies DNF formulas of every pin reachable from it.
//
// Route performs a breadth-first expansion of the graph starting at the
// source. Each visited node accumulates a requires formula (the resource
// conditions a placer must satisfy to use this route) and an implies
// formula (the conditions the route forces once taken), both folded via
// disjunction as alternative routes are discovered. Expansion past a node
// is pruned once its requires formula is already a subformula of its
// successor's — any route through that edge is already covered.
//
// The router never mutates the graph it walks; all state lives in a
// per-call set of markers local to one Route invocation, so concurrent
// callers can route from different sources over the same *sitegraph.Graph
// without synchronization.
package router
