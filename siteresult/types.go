package siteresult

import (
	"sort"

	"github.com/antmicro/nisp/dnf"
	"github.com/antmicro/nisp/router"
)

// PinPairRoutingInfo is the externally-visible shape of one (source, sink)
// routing relationship: its cubes, not the dnf.Formula wrapper, since a
// Formula's only other state (no cubes meaning ⊥) is already expressed by
// an empty slice here.
type PinPairRoutingInfo struct {
	Requires []dnf.Cube
	Implies  []dnf.Cube
}

// IsEmpty reports whether neither field carries any cube.
func (p PinPairRoutingInfo) IsEmpty() bool { return len(p.Requires) == 0 && len(p.Implies) == 0 }

// FromNodeResult converts a router.NodeResult into a PinPairRoutingInfo,
// applying the placement-friendly "fewest constraints first" sort: cubes
// ordered ascending by term count, since a placer greedy on minimal
// constraints benefits from seeing shorter cubes first.
func FromNodeResult(r router.NodeResult) PinPairRoutingInfo {
	p := PinPairRoutingInfo{
		Requires: append([]dnf.Cube(nil), r.Requires.Cubes...),
		Implies:  append([]dnf.Cube(nil), r.Implies.Cubes...),
	}
	p.sort()
	return p
}

func (p PinPairRoutingInfo) sort() {
	byTermCount := func(cubes []dnf.Cube) func(i, j int) bool {
		return func(i, j int) bool { return cubes[i].Len() < cubes[j].Len() }
	}
	sort.SliceStable(p.Requires, byTermCount(p.Requires))
	sort.SliceStable(p.Implies, byTermCount(p.Implies))
}
