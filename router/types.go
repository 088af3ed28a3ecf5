package router

import (
	"errors"

	"github.com/antmicro/nisp/dnf"
	"github.com/antmicro/nisp/sitegraph"
)

// ErrSourceOutOfRange is returned when Route is called with a source pin
// outside the graph's pin range.
var ErrSourceOutOfRange = errors.New("router: source pin out of range")

// ConstrainingElement is the DNF variable domain the router reasons over.
// It carries exactly one case, matching the fact that this port's sole
// routing resource is "is this pin driving the net". Kept as a distinct
// type (rather than using dnf.VarID directly) so call sites read as
// domain concepts, not raw integers.
type ConstrainingElement struct {
	Port sitegraph.PinID
}

// Var returns the dnf.VarID this element corresponds to.
func (e ConstrainingElement) Var() dnf.VarID { return dnf.VarID(e.Port) }

func portTerm(p sitegraph.PinID) ConstrainingElement { return ConstrainingElement{Port: p} }

func posVar(p sitegraph.PinID) dnf.Term { return dnf.PosVar(portTerm(p).Var()) }
func negVar(p sitegraph.PinID) dnf.Term { return dnf.NegatedVar(portTerm(p).Var()) }

// NodeResult is the requires/implies pair Route computes for one pin.
type NodeResult struct {
	Requires dnf.Formula
	Implies  dnf.Formula
}

// IsEmpty reports whether both formulas are ⊥, meaning the pin carries no
// interesting routing relationship to the source and should be filtered
// from output (spec: "filter out nodes where both are empty").
func (r NodeResult) IsEmpty() bool { return r.Requires.IsFalse() && r.Implies.IsFalse() }

// Options configures a Route call.
type Options struct {
	// Optimize runs Formula.Optimize on every node's requires and implies
	// formulas once BFS expansion completes. Expensive but keeps the
	// resulting cache from growing unboundedly on routing-dense sites.
	Optimize bool

	// ImpliesUsesOwnSubformulaTest selects how a node's implies formula
	// is merged into a successor's. When true (the default), a
	// successor's implies formula is updated only when the current
	// node's implies is NOT already a subformula of it — an independent
	// test from the one gating requires propagation. When false, implies
	// is merged whenever requires is (the legacy coupled behavior),
	// which can let implies accumulate disjuncts that optimize() cannot
	// later collapse because they were never structurally necessary.
	ImpliesUsesOwnSubformulaTest bool
}

// DefaultOptions returns Options{Optimize: true, ImpliesUsesOwnSubformulaTest: true}.
func DefaultOptions() Options {
	return Options{Optimize: true, ImpliesUsesOwnSubformulaTest: true}
}

// Frame describes one step of BFS expansion, handed to a Step callback so
// callers can thread caller-defined state (e.g. path reconstruction for a
// debug tool) through the traversal without the router depending on it.
type Frame[A any] struct {
	// HasPrev is false only for the source node's own frame.
	HasPrev bool
	Prev    sitegraph.PinID
	Node    sitegraph.PinID

	Accumulator A
}

// Step computes the accumulator value propagated to every frame spawned
// from f.
type Step[A any] func(f Frame[A]) A

// NoAccumulator is a Step that carries no information; use it when Route's
// generic accumulator parameter is not needed.
func NoAccumulator[A any](f Frame[A]) A { return f.Accumulator }
