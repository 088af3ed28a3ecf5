package sitegraph

import (
	"fmt"

	"github.com/antmicro/nisp/devicemodel"
	"github.com/antmicro/nisp/intern"
)

// NameSource distinguishes the two places a ResourceName's index can point.
type NameSource uint8

const (
	// FromDevice means Index is a device string-table index.
	FromDevice NameSource = iota
	// FromIntern means Index is an intern.ID minted by this process, for
	// synthetic names (e.g. "$VCC") that never appear in the device.
	FromIntern
)

// ResourceName names a pin or BEL as either a reference into the device's
// string table or an identifier into a process-wide interned string pool.
// It is a compact, comparable, hashable value usable as a map key.
type ResourceName struct {
	Source NameSource
	Index  uint32
}

// FromDeviceString builds a ResourceName referencing the device string
// table at idx.
func FromDeviceString(idx uint32) ResourceName {
	return ResourceName{Source: FromDevice, Index: idx}
}

// FromInternedString builds a ResourceName referencing id within the
// process-wide interned pool.
func FromInternedString(id intern.ID) ResourceName {
	return ResourceName{Source: FromIntern, Index: uint32(id)}
}

// Resolve returns the underlying text, looking it up in strings or pool
// depending on n.Source. It panics if n references an index neither table
// knows about, since a ResourceName minted by this package always points
// at a live entry in one of the two tables.
func (n ResourceName) Resolve(strings devicemodel.StringTable, pool *intern.Pool) string {
	switch n.Source {
	case FromDevice:
		s, ok := strings.Lookup(n.Index)
		if !ok {
			panic(fmt.Sprintf("sitegraph: dangling device string index %d", n.Index))
		}
		return s
	case FromIntern:
		return pool.Lookup(intern.ID(n.Index))
	default:
		panic(fmt.Sprintf("sitegraph: unknown ResourceName source %d", n.Source))
	}
}
