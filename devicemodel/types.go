package devicemodel

// Direction classifies a BEL pin's signal flow.
type Direction uint8

const (
	// Input pins only ever sink a signal.
	Input Direction = iota
	// Output pins only ever drive a signal.
	Output
	// Inout pins can drive or sink, depending on the route chosen.
	Inout
)

// String implements fmt.Stringer for log and diagnostic output.
func (d Direction) String() string {
	switch d {
	case Input:
		return "Input"
	case Output:
		return "Output"
	case Inout:
		return "Inout"
	default:
		return "Direction(?)"
	}
}

// BELCategory distinguishes a site boundary pin from everything internal.
// Routing-category BELs loaded from the device are folded into
// LogicOrRouting here; the site graph builder recovers the logic/routing
// distinction itself by observing pseudo-pip participation.
type BELCategory uint8

const (
	// LogicOrRouting is every BEL that is not a site boundary port.
	LogicOrRouting BELCategory = iota
	// SitePort is a BEL representing a boundary pin of the site.
	SitePort
)

// ConstantKind identifies which constant net a ConstantSource distributes.
type ConstantKind uint8

const (
	// ConstVCC marks a logic-high constant source.
	ConstVCC ConstantKind = iota
	// ConstGND marks a logic-low constant source.
	ConstGND
)

// String implements fmt.Stringer.
func (k ConstantKind) String() string {
	switch k {
	case ConstVCC:
		return "VCC"
	case ConstGND:
		return "GND"
	default:
		return "ConstantKind(?)"
	}
}

// StringTable resolves a device string-table index to its text. Both the
// mmap/gzip-backed loader in devicefile and in-memory test fixtures satisfy
// this interface identically.
type StringTable interface {
	// Lookup returns the string at id and true, or ("", false) if id is out
	// of range for this table.
	Lookup(id uint32) (string, bool)
}

// BELPin is one entry in a site type's flat, site-wide pin list. Every BEL's
// PinIndices index into this same list — pins are not stored per-BEL.
type BELPin struct {
	// Name indexes the device string table.
	Name uint32
	// BEL is the owning BEL's index within the site type's BEL list.
	BEL int
	// Direction is this pin's signal flow.
	Direction Direction
}

// BEL is one basic element of logic within a site type.
type BEL struct {
	// Name indexes the device string table.
	Name uint32
	// Category distinguishes a site boundary port from everything else.
	Category BELCategory
	// PinIndices lists, in declaration order, indices into the owning site
	// type's BELPins. A BEL's pins are ordered; position here is the stable
	// local pin index used to form (bel_index, pin_index) pairs.
	PinIndices []int
}

// SiteWire is an internal conductor connecting a set of BEL pins. Every
// driver on the wire reaches every sink on the wire.
type SiteWire struct {
	// PinIndices lists indices into the owning site type's BELPins.
	PinIndices []int
}

// SitePseudoPip is a configurable internal connection modeled as a 2-pin
// BEL whose single edge is switchable, expressed as an (input, output)
// pair of indices into the owning site type's BELPins. Both indices must
// name pins belonging to the same BEL.
type SitePseudoPip struct {
	InputPinIndex  int
	OutputPinIndex int
}

// ConstantSource names one place in the device where a constant net ($VCC
// or $GND) originates.
type ConstantSource struct {
	// SiteType indexes the device's site-type list.
	SiteType int
	// BEL indexes that site type's BEL list.
	BEL int
	// BELPin is the pin's position within that BEL's PinIndices (a
	// BEL-local pin index, not an index into the site type's BELPins list).
	BELPin int
	Kind   ConstantKind
}

// SiteTypeView is the read-only view of a single site type: its BELs, the
// flat pin list they reference into, its internal wires, and its
// pseudo-pips.
type SiteTypeView interface {
	// Name indexes the device string table.
	Name() uint32
	// BELs returns the site type's BELs in declaration order.
	BELs() []BEL
	// BELPins returns the site type's flat, site-wide pin list. BEL and
	// SiteWire pin indices index into this slice.
	BELPins() []BELPin
	// Wires returns the site type's internal wires.
	Wires() []SiteWire
	// PseudoPips returns the site type's pseudo-pips.
	PseudoPips() []SitePseudoPip
}

// DeviceView is the read-only, random-access contract the site graph
// builder needs from a loaded device description. A concrete
// implementation lives in devicefile; tests may supply an in-memory
// fixture instead.
type DeviceView interface {
	// Strings returns the device's string table.
	Strings() StringTable
	// SiteTypeCount returns the number of site types in the device.
	SiteTypeCount() int
	// SiteType returns the view for the site type at index.
	SiteType(index int) SiteTypeView
	// ConstantSources returns every constant source declared by the device,
	// across all site types.
	ConstantSources() []ConstantSource
}
