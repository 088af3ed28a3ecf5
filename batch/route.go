package batch

import (
	"sync"

	"github.com/antmicro/nisp/devicemodel"
	"github.com/antmicro/nisp/router"
	"github.com/antmicro/nisp/sitegraph"
)

// RouteSite routes from every eligible source pin of g and returns the
// merged (source, sink) map. Single-threaded when opts.Workers <= 1.
func RouteSite(g *sitegraph.Graph, opts Options) (map[Pair]router.NodeResult, error) {
	if opts.Workers <= 1 {
		return routeRange(g, pinRange{Start: 0, End: g.PinCount()}, opts.Router)
	}
	return routeSiteMultithreaded(g, opts)
}

// routeSiteMultithreaded shards [0, PinCount) across opts.Workers goroutines
// via a static range partition, joins all of them, and merges their maps.
// The graph is read-only after construction and router.Route allocates all
// of its state per call, so no synchronization is needed inside a worker.
func routeSiteMultithreaded(g *sitegraph.Graph, opts Options) (map[Pair]router.NodeResult, error) {
	ranges := splitRangeNicely(g.PinCount(), opts.Workers)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	merged := make(map[Pair]router.NodeResult)

	for _, r := range ranges {
		r := r
		wg.Add(1)
		go func() {
			defer wg.Done()
			partial, err := routeRange(g, r, opts.Router)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			for k, v := range partial {
				merged[k] = v
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return merged, nil
}

// routeRange routes from every eligible source pin in [r.Start, r.End),
// inserting every non-empty (source, sink) result into the returned map.
func routeRange(g *sitegraph.Graph, r pinRange, routerOpts router.Options) (map[Pair]router.NodeResult, error) {
	out := make(map[Pair]router.NodeResult)

	for src := r.Start; src < r.End; src++ {
		source := sitegraph.PinID(src)
		if g.Direction(source) == devicemodel.Input {
			continue // input-only pins never drive a net
		}

		results, err := router.Route(g, source, struct{}{}, nil, routerOpts)
		if err != nil {
			return nil, err
		}
		for sink, res := range results {
			if res.IsEmpty() {
				continue
			}
			out[Pair{Source: source, Sink: sink}] = res
		}
	}
	return out, nil
}
