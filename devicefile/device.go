package devicefile

import (
	"io"

	"github.com/antmicro/nisp/devicemodel"
)

// Device is a fully decoded, in-memory devicemodel.DeviceView. Both
// OpenRaw and OpenGzip return one; the two loaders differ only in how they
// get a byte stream to decode.
type Device struct {
	strings   stringTable
	siteTypes []*siteType
	constants []devicemodel.ConstantSource
}

var _ devicemodel.DeviceView = (*Device)(nil)

// Strings returns the device's string table.
func (d *Device) Strings() devicemodel.StringTable { return d.strings }

// SiteTypeCount returns the number of site types in the device.
func (d *Device) SiteTypeCount() int { return len(d.siteTypes) }

// SiteType returns the view for the site type at index.
func (d *Device) SiteType(index int) devicemodel.SiteTypeView { return d.siteTypes[index] }

// ConstantSources returns every constant source declared by the device.
func (d *Device) ConstantSources() []devicemodel.ConstantSource { return d.constants }

type stringTable []string

func (s stringTable) Lookup(id uint32) (string, bool) {
	if int(id) >= len(s) {
		return "", false
	}
	return s[id], true
}

type siteType struct {
	name       uint32
	bels       []devicemodel.BEL
	pins       []devicemodel.BELPin
	wires      []devicemodel.SiteWire
	pseudoPips []devicemodel.SitePseudoPip
}

func (s *siteType) Name() uint32                            { return s.name }
func (s *siteType) BELs() []devicemodel.BEL                 { return s.bels }
func (s *siteType) BELPins() []devicemodel.BELPin           { return s.pins }
func (s *siteType) Wires() []devicemodel.SiteWire           { return s.wires }
func (s *siteType) PseudoPips() []devicemodel.SitePseudoPip { return s.pseudoPips }

func decodeDevice(r io.Reader) (*Device, error) {
	r = bufferedReader(r)

	if err := readHeader(r); err != nil {
		return nil, err
	}

	stringCount, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	strs := make(stringTable, stringCount)
	for i := range strs {
		s, err := readString(r)
		if err != nil {
			return nil, err
		}
		strs[i] = s
	}

	siteTypeCount, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	siteTypes := make([]*siteType, siteTypeCount)
	for i := range siteTypes {
		st, err := decodeSiteType(r)
		if err != nil {
			return nil, err
		}
		siteTypes[i] = st
	}

	constantCount, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	constants := make([]devicemodel.ConstantSource, constantCount)
	for i := range constants {
		siteIdx, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		belIdx, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		pinIdx, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		kind, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		constants[i] = devicemodel.ConstantSource{
			SiteType: int(siteIdx),
			BEL:      int(belIdx),
			BELPin:   int(pinIdx),
			Kind:     devicemodel.ConstantKind(kind),
		}
	}

	return &Device{strings: strs, siteTypes: siteTypes, constants: constants}, nil
}

func decodeSiteType(r io.Reader) (*siteType, error) {
	name, err := readUint32(r)
	if err != nil {
		return nil, err
	}

	belCount, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	bels := make([]devicemodel.BEL, belCount)
	for i := range bels {
		belName, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		category, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		pinIndices, err := readUint32Slice(r)
		if err != nil {
			return nil, err
		}
		bels[i] = devicemodel.BEL{
			Name:       belName,
			Category:   devicemodel.BELCategory(category),
			PinIndices: pinIndices,
		}
	}

	pinCount, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	pins := make([]devicemodel.BELPin, pinCount)
	for i := range pins {
		pinName, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		owningBEL, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		direction, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		pins[i] = devicemodel.BELPin{
			Name:      pinName,
			BEL:       int(owningBEL),
			Direction: devicemodel.Direction(direction),
		}
	}

	wireCount, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	wires := make([]devicemodel.SiteWire, wireCount)
	for i := range wires {
		pinIndices, err := readUint32Slice(r)
		if err != nil {
			return nil, err
		}
		wires[i] = devicemodel.SiteWire{PinIndices: pinIndices}
	}

	pipCount, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	pips := make([]devicemodel.SitePseudoPip, pipCount)
	for i := range pips {
		in, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		out, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		pips[i] = devicemodel.SitePseudoPip{InputPinIndex: int(in), OutputPinIndex: int(out)}
	}

	return &siteType{name: name, bels: bels, pins: pins, wires: wires, pseudoPips: pips}, nil
}

// EncodeDevice writes dev to w in devicefile's own binary layout. It exists
// primarily so tests and the route-pair/preprocess CLI's fixture-generation
// path can produce a file OpenRaw/OpenGzip can read back; it is not a
// general-purpose device-authoring API.
func EncodeDevice(w io.Writer, dev *Device) error {
	if err := writeHeader(w); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(len(dev.strings))); err != nil {
		return err
	}
	for _, s := range dev.strings {
		if err := writeString(w, s); err != nil {
			return err
		}
	}

	if err := writeUint32(w, uint32(len(dev.siteTypes))); err != nil {
		return err
	}
	for _, st := range dev.siteTypes {
		if err := encodeSiteType(w, st); err != nil {
			return err
		}
	}

	if err := writeUint32(w, uint32(len(dev.constants))); err != nil {
		return err
	}
	for _, c := range dev.constants {
		if err := writeUint32(w, uint32(c.SiteType)); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(c.BEL)); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(c.BELPin)); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(c.Kind)); err != nil {
			return err
		}
	}
	return nil
}

func encodeSiteType(w io.Writer, st *siteType) error {
	if err := writeUint32(w, st.name); err != nil {
		return err
	}

	if err := writeUint32(w, uint32(len(st.bels))); err != nil {
		return err
	}
	for _, bel := range st.bels {
		if err := writeUint32(w, bel.Name); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(bel.Category)); err != nil {
			return err
		}
		if err := writeUint32Slice(w, bel.PinIndices); err != nil {
			return err
		}
	}

	if err := writeUint32(w, uint32(len(st.pins))); err != nil {
		return err
	}
	for _, pin := range st.pins {
		if err := writeUint32(w, pin.Name); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(pin.BEL)); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(pin.Direction)); err != nil {
			return err
		}
	}

	if err := writeUint32(w, uint32(len(st.wires))); err != nil {
		return err
	}
	for _, wire := range st.wires {
		if err := writeUint32Slice(w, wire.PinIndices); err != nil {
			return err
		}
	}

	if err := writeUint32(w, uint32(len(st.pseudoPips))); err != nil {
		return err
	}
	for _, pip := range st.pseudoPips {
		if err := writeUint32(w, uint32(pip.InputPinIndex)); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(pip.OutputPinIndex)); err != nil {
			return err
		}
	}
	return nil
}

// NewDevice builds an in-memory Device from already-materialized parts,
// primarily for tests that want devicefile's concrete type (rather than a
// devicemodel.DeviceView fixture) without going through a byte stream.
func NewDevice(strings []string, siteTypes []devicemodel.SiteTypeView, constants []devicemodel.ConstantSource) *Device {
	sts := make([]*siteType, len(siteTypes))
	for i, v := range siteTypes {
		sts[i] = &siteType{
			name:       v.Name(),
			bels:       v.BELs(),
			pins:       v.BELPins(),
			wires:      v.Wires(),
			pseudoPips: v.PseudoPips(),
		}
	}
	return &Device{strings: stringTable(strings), siteTypes: sts, constants: constants}
}
