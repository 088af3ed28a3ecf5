package export

import (
	"os"
	"path/filepath"
)

// AllSentinel, when present in the name list passed to NewSelector, opts
// every name in rather than requiring each one be listed explicitly.
const AllSentinel = ":all"

// Selector gates which named outputs actually get written, and where.
// A zero-value Selector selects nothing.
type Selector struct {
	prefix string
	suffix string
	names  map[string]bool
	all    bool
}

// NewSelector builds a Selector from a raw name list (as collected from a
// repeated command-line flag): AllSentinel switches on export-everything,
// any other entry is added to the explicit allow-list.
func NewSelector(names []string, prefix, suffix string) Selector {
	s := Selector{prefix: prefix, suffix: suffix, names: make(map[string]bool, len(names))}
	for _, n := range names {
		if n == AllSentinel {
			s.all = true
			continue
		}
		s.names[n] = true
	}
	return s
}

// Enabled reports whether name is selected for export.
func (s Selector) Enabled(name string) bool { return s.all || s.names[name] }

// Path returns the output path this Selector would use for name.
func (s Selector) Path(name string) string {
	return filepath.Join(s.prefix, name+s.suffix)
}

// Export calls build and writes its result to Path(name), but only when
// name is selected; build is never invoked otherwise, since formatting an
// unwanted export is wasted work.
func (s Selector) Export(name string, build func() (string, error)) error {
	if !s.Enabled(name) {
		return nil
	}
	data, err := build()
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path(name), []byte(data), 0o644)
}
