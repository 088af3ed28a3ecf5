package sitegraph

import (
	"github.com/antmicro/nisp/devicemodel"
	"github.com/antmicro/nisp/intern"
)

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	addVirtualConstants bool
	pool                *intern.Pool
}

// WithVirtualConstants requests that Build run AddVirtualConstants on the
// freshly built graph before returning it, using pool to mint the
// synthesized $VCC/$GND names.
func WithVirtualConstants(pool *intern.Pool) BuildOption {
	return func(c *buildConfig) {
		c.addVirtualConstants = true
		c.pool = pool
	}
}

// Build translates site type siteTypeIndex of dev into a routing graph,
// per spec.md §4.2: BELs and their pins are enumerated in device order to
// assign dense pin-instance ids, site wires become driver→sink edges, and
// pseudo-pips become input→output edges with both endpoints promoted to
// RoutingBelPort.
//
// Build returns a *FatalError (see errors.go) for every schema-contract
// violation spec.md §7 names: duplicate BEL names, a pseudo-pip spanning
// two different BELs, or a pseudo-pip targeting a node already classified
// SitePort.
func Build(dev devicemodel.DeviceView, siteTypeIndex int, opts ...BuildOption) (*Graph, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if siteTypeIndex < 0 || siteTypeIndex >= dev.SiteTypeCount() {
		return nil, ErrSiteTypeIndexOutOfRange
	}
	st := dev.SiteType(siteTypeIndex)
	strings := dev.Strings()
	siteTypeName, _ := strings.Lookup(st.Name())

	b := &buildState{
		dev:          dev,
		st:           st,
		strings:      strings,
		siteTypeName: siteTypeName,
	}

	if err := b.enumeratePins(); err != nil {
		return nil, err
	}
	if err := b.emitWireEdges(); err != nil {
		return nil, err
	}
	if err := b.emitPseudoPipEdges(); err != nil {
		return nil, err
	}
	if err := b.checkAllInitialized(); err != nil {
		return nil, err
	}

	g := &Graph{
		siteTypeName:  siteTypeName,
		nodes:         b.nodes,
		edges:         b.edges,
		bels:          b.bels,
		devicePinToID: b.devicePinToID,
	}

	if cfg.addVirtualConstants {
		if err := AddVirtualConstants(g, dev, siteTypeIndex, cfg.pool); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// buildState carries the scratch maps used only while building one graph.
type buildState struct {
	dev          devicemodel.DeviceView
	st           devicemodel.SiteTypeView
	strings      devicemodel.StringTable
	siteTypeName string

	nodes []node
	edges []bool
	bels  []belRecord

	// devicePinToID maps a device-level index into st.BELPins() to the
	// dense PinID this builder assigned it.
	devicePinToID map[int]PinID
	belNameSeen   map[uint32]int // device string index -> bel index, for duplicate detection
}

func (b *buildState) enumeratePins() error {
	bels := b.st.BELs()
	pins := b.st.BELPins()

	b.devicePinToID = make(map[int]PinID)
	b.belNameSeen = make(map[uint32]int, len(bels))

	for belIdx, bel := range bels {
		if existing, dup := b.belNameSeen[bel.Name]; dup {
			existingName, _ := b.strings.Lookup(bels[existing].Name)
			thisName, _ := b.strings.Lookup(bel.Name)
			return fatalf(b.siteTypeName, "duplicate BEL name %q (conflicts with BEL %q)", thisName, existingName)
		}
		b.belNameSeen[bel.Name] = belIdx

		b.bels = append(b.bels, belRecord{
			name:     FromDeviceString(bel.Name),
			category: bel.Category,
		})

		kind := BelPort
		if bel.Category == devicemodel.SitePort {
			kind = SitePort
		}

		for _, pinIdx := range bel.PinIndices {
			pin := pins[pinIdx]
			id := PinID(len(b.nodes))
			b.devicePinToID[pinIdx] = id
			b.nodes = append(b.nodes, node{
				kind: kind,
				bel:  belIdx,
				dir:  pin.Direction,
				name: FromDeviceString(pin.Name),
			})
		}
	}

	n := len(b.nodes)
	b.edges = make([]bool, n*n)
	return nil
}

func (b *buildState) emitWireEdges() error {
	n := len(b.nodes)
	pins := b.st.BELPins()

	for _, wire := range b.st.Wires() {
		var drivers, sinks []PinID
		for _, pinIdx := range wire.PinIndices {
			id := b.devicePinToID[pinIdx]
			dir := pins[pinIdx].Direction
			if dir == devicemodel.Output || dir == devicemodel.Inout {
				drivers = append(drivers, id)
			}
			if dir == devicemodel.Input || dir == devicemodel.Inout {
				sinks = append(sinks, id)
			}
		}
		for _, d := range drivers {
			for _, s := range sinks {
				if d == s {
					continue
				}
				b.edges[int(d)*n+int(s)] = true
			}
		}
	}
	return nil
}

func (b *buildState) emitPseudoPipEdges() error {
	n := len(b.nodes)

	for _, pip := range b.st.PseudoPips() {
		in := b.devicePinToID[pip.InputPinIndex]
		out := b.devicePinToID[pip.OutputPinIndex]

		if b.nodes[in].bel != b.nodes[out].bel {
			return fatalf(b.siteTypeName, "pseudo-pip spans two different BELs (pins %d -> %d)", in, out)
		}
		if b.nodes[in].kind == SitePort || b.nodes[out].kind == SitePort {
			return fatalf(b.siteTypeName, "pseudo-pip targets a SitePort node (pins %d -> %d)", in, out)
		}

		b.nodes[in].kind = RoutingBelPort
		b.nodes[out].kind = RoutingBelPort
		b.edges[int(in)*n+int(out)] = true
	}
	return nil
}

func (b *buildState) checkAllInitialized() error {
	for i, nd := range b.nodes {
		if nd.kind == nodeKindUnset {
			return fatalf(b.siteTypeName, "pin %d left uninitialized after construction", i)
		}
	}
	return nil
}
