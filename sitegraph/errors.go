package sitegraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for inputs sitegraph rejects outright.
var (
	// ErrSiteTypeIndexOutOfRange indicates Build was asked for a site type
	// the device view does not have.
	ErrSiteTypeIndexOutOfRange = errors.New("sitegraph: site type index out of range")

	// ErrUnsupportedConstantKind indicates a ConstantSource named a kind
	// AddVirtualConstants does not know how to synthesize a net for.
	ErrUnsupportedConstantKind = errors.New("sitegraph: unsupported constant kind")
)

// FatalError reports a schema-contract violation in the device data: a
// malformed input that the builder cannot heal from and must abort on,
// matching spec.md §7's "input schema-contract violations... reported as
// fatal internal errors with an explanatory diagnostic and process abort".
// cmd/nisp catches FatalError at the top level rather than letting a panic
// reach main, but every other package should treat it like any other error.
type FatalError struct {
	// SiteTypeName is the device string for the site type under
	// construction, for diagnostic context.
	SiteTypeName string
	// Reason is a short, human-readable description of the violation.
	Reason string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("sitegraph: fatal: site type %q: %s", e.SiteTypeName, e.Reason)
}

func fatalf(siteTypeName, format string, args ...any) *FatalError {
	return &FatalError{SiteTypeName: siteTypeName, Reason: fmt.Sprintf(format, args...)}
}
