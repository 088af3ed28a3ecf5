package sitegraph_test

import "github.com/antmicro/nisp/devicemodel"

type stringTable []string

func (s stringTable) Lookup(id uint32) (string, bool) {
	if int(id) >= len(s) {
		return "", false
	}
	return s[id], true
}

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
	constants []devicemodel.ConstantSource
}

func (d deviceFixture) Strings() devicemodel.StringTable { return d.strings }
func (d deviceFixture) SiteTypeCount() int               { return len(d.siteTypes) }
func (d deviceFixture) SiteType(index int) devicemodel.SiteTypeView {
	return d.siteTypes[index]
}
func (d deviceFixture) ConstantSources() []devicemodel.ConstantSource { return d.constants }

// strs is a convenience string-table builder: strs("a","b") returns a table
// where "a" is index 0, "b" is index 1, so fixtures can reference indices
// directly without repeating the slice literal.
func strs(s ...string) stringTable { return stringTable(s) }
