package batch

import (
	"github.com/antmicro/nisp/router"
	"github.com/antmicro/nisp/sitegraph"
)

// Pair identifies one (source, sink) routing relationship within a single
// site's graph.
type Pair struct {
	Source sitegraph.PinID
	Sink   sitegraph.PinID
}

// Options configures a batch run.
type Options struct {
	// Workers is the number of goroutines sharding the source-pin range.
	// Values <= 1 run single-threaded. Has no effect on the result, only
	// on wall-clock time: the graph and router are read-only once built,
	// so partitioning the range never changes which routes are found.
	Workers int

	// Router is forwarded unchanged to every router.Route call made while
	// routing this site.
	Router router.Options
}

// DefaultOptions returns Options{Workers: 1, Router: router.DefaultOptions()}.
func DefaultOptions() Options { return Options{Workers: 1, Router: router.DefaultOptions()} }
