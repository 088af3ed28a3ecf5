package sitegraph

import (
	"fmt"

	"github.com/antmicro/nisp/devicemodel"
	"github.com/antmicro/nisp/intern"
)

// AddVirtualConstants extends g in place with synthetic constant-distribution
// infrastructure, per spec.md §4.2 item 3. For every constant source
// targeting siteTypeIndex it adds:
//
//  1. A single input site-port BEL named "$VCC" or "$GND" (one per net
//     kind, shared across every source of that kind in the site), with a
//     single output pin.
//  2. A routing-BEL-port "pip" per source, named
//     "<source BEL>_$VCC_SITE_WIRE" (or "<source BEL>_$GND_SITE_WIRE"),
//     with one input pin named after the source BEL and one
//     output pin named after the source's site wire.
//  3. Edges: site-port output -> pip input; pip input -> pip output; pip
//     output -> every pre-existing sink of the original source's wire.
//
// AddVirtualConstants must run before any router worker starts reading g,
// since it changes g.PinCount() and the adjacency matrix's dimensions.
func AddVirtualConstants(g *Graph, dev devicemodel.DeviceView, siteTypeIndex int, pool *intern.Pool) error {
	st := dev.SiteType(siteTypeIndex)
	strings := dev.Strings()

	var sources []devicemodel.ConstantSource
	for _, c := range dev.ConstantSources() {
		if c.SiteType == siteTypeIndex {
			sources = append(sources, c)
		}
	}
	if len(sources) == 0 {
		return nil
	}

	a := &augmenter{g: g, st: st, strings: strings, pool: pool}
	sitePortByKind := make(map[devicemodel.ConstantKind]PinID)

	for _, src := range sources {
		kindName, err := constantKindName(src.Kind)
		if err != nil {
			return err
		}

		sitePortOut, ok := sitePortByKind[src.Kind]
		if !ok {
			sitePortOut = a.addSitePort(kindName)
			sitePortByKind[src.Kind] = sitePortOut
		}

		sourceBELName, _ := strings.Lookup(st.BELs()[src.BEL].Name)
		sourceWirePins := a.wirePinsOf(src.BEL, src.BELPin)

		pipIn, pipOut := a.addPip(sourceBELName, kindName, sourceWirePins.wireName)

		g.setEdge(sitePortOut, pipIn)
		g.setEdge(pipIn, pipOut)
		for _, sink := range sourceWirePins.sinks {
			g.setEdge(pipOut, sink)
		}
	}

	return nil
}

func constantKindName(k devicemodel.ConstantKind) (string, error) {
	switch k {
	case devicemodel.ConstVCC:
		return "$VCC", nil
	case devicemodel.ConstGND:
		return "$GND", nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnsupportedConstantKind, k)
	}
}

// augmenter carries the scratch state AddVirtualConstants needs while it
// grows g; it reuses g's own append-based growth so the result is a
// perfectly ordinary (if larger) Graph, with no separate "augmented graph"
// type.
type augmenter struct {
	g       *Graph
	st      devicemodel.SiteTypeView
	strings devicemodel.StringTable
	pool    *intern.Pool
}

// addSitePort appends an input site-port BEL named name, whose single pin
// (also named name) has direction Output so it drives into the site, and
// returns that pin's PinID.
func (a *augmenter) addSitePort(name string) PinID {
	belIdx := len(a.g.bels)
	a.g.bels = append(a.g.bels, belRecord{
		name:     FromInternedString(a.pool.Intern(name)),
		category: devicemodel.SitePort,
	})
	return a.appendPin(belIdx, SitePort, devicemodel.Output, name)
}

// addPip appends a two-pin routing BEL named "<sourceBEL>_<kindName>_SITE_WIRE",
// with its input pin named after sourceBEL and its output pin named after
// wireName, returning both pins' PinIDs. Site wires carry no name of their
// own in this model (see wirePinsOf), so the "_SITE_WIRE" suffix stands in
// for the real site wire name the original device format would supply.
func (a *augmenter) addPip(sourceBELName, kindName, wireName string) (in, out PinID) {
	pipName := fmt.Sprintf("%s_%s_SITE_WIRE", sourceBELName, kindName)
	belIdx := len(a.g.bels)
	a.g.bels = append(a.g.bels, belRecord{
		name:     FromInternedString(a.pool.Intern(pipName)),
		category: devicemodel.LogicOrRouting,
	})
	in = a.appendPin(belIdx, RoutingBelPort, devicemodel.Input, sourceBELName)
	out = a.appendPin(belIdx, RoutingBelPort, devicemodel.Output, wireName)
	return in, out
}

func (a *augmenter) appendPin(belIdx int, kind NodeKind, dir devicemodel.Direction, name string) PinID {
	id := PinID(len(a.g.nodes))
	a.g.nodes = append(a.g.nodes, node{
		kind: kind,
		bel:  belIdx,
		dir:  dir,
		name: FromInternedString(a.pool.Intern(name)),
	})
	a.growEdges()
	return id
}

// growEdges re-allocates the adjacency matrix to match the new node count,
// preserving every existing edge. AddVirtualConstants only ever adds a
// handful of pins per device, so a realloc-per-pin here is not the hot
// path the router's own traversal is.
func (a *augmenter) growEdges() {
	n := len(a.g.nodes)
	oldN := n - 1
	newEdges := make([]bool, n*n)
	for r := 0; r < oldN; r++ {
		copy(newEdges[r*n:r*n+oldN], a.g.edges[r*oldN:r*oldN+oldN])
	}
	a.g.edges = newEdges
}

type wirePins struct {
	wireName string
	sinks    []PinID
}

// wirePinsOf finds the site wire containing the given (bel, belPin) device
// indices and returns that wire's name and its current sink pins, so
// AddVirtualConstants can wire the synthesized pip's output to them.
//
// Site wires carry no name of their own in the device model (spec.md §3
// lists only a pin-index list); "named after the source's site wire"
// resolves, in the absence of a dedicated wire name, to the source pin's
// own name, which is what downstream diagnostics key on anyway.
func (a *augmenter) wirePinsOf(belIdx, belPinLocalIdx int) wirePins {
	bel := a.st.BELs()[belIdx]
	devicePinIdx := bel.PinIndices[belPinLocalIdx]
	pin := a.st.BELPins()[devicePinIdx]
	sourceName, _ := a.strings.Lookup(pin.Name)

	pinToID := a.g.devicePinToID
	sourceID, ok := pinToID[devicePinIdx]
	if !ok {
		return wirePins{wireName: sourceName}
	}

	var sinks []PinID
	for _, wire := range a.st.Wires() {
		found := false
		for _, p := range wire.PinIndices {
			if p == devicePinIdx {
				found = true
				break
			}
		}
		if !found {
			continue
		}
		for _, p := range wire.PinIndices {
			id, ok := pinToID[p]
			if !ok || id == sourceID {
				continue
			}
			pins := a.st.BELPins()
			if pins[p].Direction == devicemodel.Input || pins[p].Direction == devicemodel.Inout {
				sinks = append(sinks, id)
			}
		}
	}
	return wirePins{wireName: sourceName, sinks: sinks}
}
