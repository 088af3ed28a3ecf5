package router

import (
	"github.com/antmicro/nisp/dnf"
	"github.com/antmicro/nisp/sitegraph"
)

type nodeMarker struct {
	requires dnf.Formula
	implies  dnf.Formula
}

type queueItem[A any] struct {
	hasPrev bool
	prev    sitegraph.PinID
	node    sitegraph.PinID
	acc     A
}

// walker carries the mutable state of one Route call.
type walker[A any] struct {
	g       *sitegraph.Graph
	opts    Options
	step    Step[A]
	markers []nodeMarker
	queue   []queueItem[A]
}

// Route performs the BFS expansion described in package doc from source,
// returning a NodeResult for every pin in g (including pins with no
// routing relationship to source, left to the caller to filter via
// NodeResult.IsEmpty). initial is the accumulator value seeded on the
// source frame; step computes the value threaded to each frame spawned
// during expansion.
func Route[A any](g *sitegraph.Graph, source sitegraph.PinID, initial A, step Step[A], opts Options) (map[sitegraph.PinID]NodeResult, error) {
	if int(source) < 0 || int(source) >= g.PinCount() {
		return nil, ErrSourceOutOfRange
	}
	if step == nil {
		step = NoAccumulator[A]
	}

	w := &walker[A]{
		g:       g,
		opts:    opts,
		step:    step,
		markers: make([]nodeMarker, g.PinCount()),
	}

	w.markers[source] = nodeMarker{requires: dnf.TrueFormula(), implies: dnf.TrueFormula()}
	w.queue = append(w.queue, queueItem[A]{node: source, acc: initial})

	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.visit(item)
	}

	if opts.Optimize {
		for i := range w.markers {
			w.markers[i].requires.Optimize()
			w.markers[i].implies.Optimize()
		}
	}

	out := make(map[sitegraph.PinID]NodeResult, len(w.markers))
	for i := range w.markers {
		pid := sitegraph.PinID(i)
		out[pid] = NodeResult{Requires: w.markers[i].requires, Implies: w.markers[i].implies}
	}
	return out, nil
}

// visit is the per-frame work: fix up this node's own last-added cube with
// the single-driver requirement and predecessor-activation terms, then
// propagate into every successor whose requires formula doesn't already
// subsume this node's. Whether implies is merged on that propagation is
// decided separately by Options.ImpliesUsesOwnSubformulaTest.
func (w *walker[A]) visit(item queueItem[A]) {
	node := item.node

	if item.hasPrev {
		prev := item.prev
		for _, d := range w.g.Drivers(node) {
			if d == prev {
				continue
			}
			w.markers[node].requires.ConjunctTermLast(negVar(d))
		}

		mustActivate := false
		for _, d := range w.g.Drivers(node) {
			if d != prev {
				mustActivate = true
				break
			}
		}
		if mustActivate {
			w.markers[node].implies.ConjunctTermLast(posVar(prev))
		}
	}

	acc := w.step(Frame[A]{HasPrev: item.hasPrev, Prev: item.prev, Node: node, Accumulator: item.acc})

	for _, next := range w.g.Successors(node) {
		reqSubsumed := w.markers[node].requires.IsSubformulaOf(w.markers[next].requires)
		if reqSubsumed {
			continue
		}

		implSubsumed := false
		if w.opts.ImpliesUsesOwnSubformulaTest {
			implSubsumed = w.markers[node].implies.IsSubformulaOf(w.markers[next].implies)
		}

		w.markers[next].requires.Disjunct(w.markers[node].requires.Clone())
		if !implSubsumed {
			w.markers[next].implies.Disjunct(w.markers[node].implies.Clone())
		}

		w.queue = append(w.queue, queueItem[A]{hasPrev: true, prev: node, node: next, acc: acc})
	}
}
