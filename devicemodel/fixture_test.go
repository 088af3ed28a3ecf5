package devicemodel_test

import "github.com/antmicro/nisp/devicemodel"

// stringTable is a minimal in-memory devicemodel.StringTable used by this
// package's own tests. Other packages cannot import devicemodel_test, so
// the sitegraph/router test fixtures each keep their own tiny copy in the
// same shape.
type stringTable []string

func (s stringTable) Lookup(id uint32) (string, bool) {
	if int(id) >= len(s) {
		return "", false
	}
	return s[id], true
}

// siteTypeFixture is a plain in-memory devicemodel.SiteTypeView.
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

// deviceFixture is a plain in-memory devicemodel.DeviceView.
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
