package export_test

import (
	"testing"

	"github.com/antmicro/nisp/devicemodel"
	"github.com/antmicro/nisp/sitegraph"
	"github.com/stretchr/testify/require"
)

type stringTable []string

func (s stringTable) Lookup(id uint32) (string, bool) {
	if int(id) >= len(s) {
		return "", false
	}
	return s[id], true
}

func strs(s ...string) stringTable { return stringTable(s) }

type siteTypeFixture struct {
	name       uint32
	bels       []devicemodel.BEL
	pins       []devicemodel.BELPin
	wires      []devicemodel.SiteWire
	pseudoPips []devicemodel.SitePseudoPip
}

func (f siteTypeFixture) Name() uint32                            { return f.name }
func (f siteTypeFixture) BELs() []devicemodel.BEL                 { return f.bels }
func (f siteTypeFixture) BELPins() []devicemodel.BELPin           { return f.pins }
func (f siteTypeFixture) Wires() []devicemodel.SiteWire           { return f.wires }
func (f siteTypeFixture) PseudoPips() []devicemodel.SitePseudoPip { return f.pseudoPips }

type deviceFixture struct {
	strings   stringTable
	siteTypes []siteTypeFixture
}

func (d deviceFixture) Strings() devicemodel.StringTable { return d.strings }
func (d deviceFixture) SiteTypeCount() int               { return len(d.siteTypes) }
func (d deviceFixture) SiteType(index int) devicemodel.SiteTypeView {
	return d.siteTypes[index]
}
func (d deviceFixture) ConstantSources() []devicemodel.ConstantSource { return nil }

// muxGraph: S0.o and S1.o (independent Output BELs) both drive Y.i through a
// shared wire, giving the router a driver-exclusion case to reason about.
func muxGraph(t *testing.T) (*sitegraph.Graph, devicemodel.StringTable) {
	t.Helper()
	dev := deviceFixture{
		strings: strs("SITE", "S0", "S0.o", "S1", "S1.o", "Y", "Y.i"),
		siteTypes: []siteTypeFixture{
			{
				name: 0,
				bels: []devicemodel.BEL{
					{Name: 1, PinIndices: []int{0}},
					{Name: 3, PinIndices: []int{1}},
					{Name: 5, PinIndices: []int{2}},
				},
				pins: []devicemodel.BELPin{
					{Name: 2, BEL: 0, Direction: devicemodel.Output},
					{Name: 4, BEL: 1, Direction: devicemodel.Output},
					{Name: 6, BEL: 2, Direction: devicemodel.Input},
				},
				wires: []devicemodel.SiteWire{{PinIndices: []int{0, 1, 2}}},
			},
		},
	}
	g, err := sitegraph.Build(dev, 0)
	require.NoError(t, err)
	return g, dev.strings
}
