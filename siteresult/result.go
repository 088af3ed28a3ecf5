package siteresult

import (
	"fmt"

	"github.com/antmicro/nisp/batch"
	"github.com/antmicro/nisp/devicemodel"
	"github.com/antmicro/nisp/intern"
	"github.com/antmicro/nisp/router"
	"github.com/antmicro/nisp/sitegraph"
)

// SiteResult is the fully shaped per-site output: routing info keyed by
// formatted pin-pair name, plus the out-of-site source/sink indices keyed
// by a single pin's formatted name.
type SiteResult struct {
	PinToPinRouting  map[string]PinPairRoutingInfo
	OutOfSiteSources map[string][]string
	OutOfSiteSinks   map[string][]string
}

// Assemble converts a batch.RouteSite result into a SiteResult: formats
// every pin as "<bel_name>.<pin_name>", keys pin_to_pin_routing by
// "<source>-><sink>", and derives the out-of-site maps by scanning for
// SitePort endpoints: a source pin of direction Output/Inout is recorded in
// OutOfSiteSources under its sink, and a sink pin of direction Input/Inout
// is recorded in OutOfSiteSinks under its source.
func Assemble(g *sitegraph.Graph, strings devicemodel.StringTable, pool *intern.Pool, pairs map[batch.Pair]router.NodeResult) SiteResult {
	res := SiteResult{
		PinToPinRouting:  make(map[string]PinPairRoutingInfo, len(pairs)),
		OutOfSiteSources: make(map[string][]string),
		OutOfSiteSinks:   make(map[string][]string),
	}

	names := make(map[sitegraph.PinID]string, g.PinCount())
	pinName := func(p sitegraph.PinID) string {
		if n, ok := names[p]; ok {
			return n
		}
		n := FormatPinName(g, strings, pool, p)
		names[p] = n
		return n
	}

	for pair, nodeResult := range pairs {
		key := fmt.Sprintf("%s->%s", pinName(pair.Source), pinName(pair.Sink))
		res.PinToPinRouting[key] = FromNodeResult(nodeResult)

		if isOutwardSitePort(g, pair.Source) {
			sink := pinName(pair.Sink)
			res.OutOfSiteSources[sink] = append(res.OutOfSiteSources[sink], pinName(pair.Source))
		}
		if isInwardSitePort(g, pair.Sink) {
			source := pinName(pair.Source)
			res.OutOfSiteSinks[source] = append(res.OutOfSiteSinks[source], pinName(pair.Sink))
		}
	}

	return res
}

// FormatPinName renders p as "<bel_name>.<pin_name>", the naming convention
// used throughout the shaped output.
func FormatPinName(g *sitegraph.Graph, strings devicemodel.StringTable, pool *intern.Pool, p sitegraph.PinID) string {
	bel := g.BELName(p).Resolve(strings, pool)
	pin := g.Name(p).Resolve(strings, pool)
	return fmt.Sprintf("%s.%s", bel, pin)
}

func isOutwardSitePort(g *sitegraph.Graph, p sitegraph.PinID) bool {
	if g.Kind(p) != sitegraph.SitePort {
		return false
	}
	dir := g.Direction(p)
	return dir == devicemodel.Output || dir == devicemodel.Inout
}

func isInwardSitePort(g *sitegraph.Graph, p sitegraph.PinID) bool {
	if g.Kind(p) != sitegraph.SitePort {
		return false
	}
	dir := g.Direction(p)
	return dir == devicemodel.Input || dir == devicemodel.Inout
}
