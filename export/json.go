package export

import (
	"encoding/json"

	"github.com/antmicro/nisp/devicemodel"
	"github.com/antmicro/nisp/dnf"
	"github.com/antmicro/nisp/intern"
	"github.com/antmicro/nisp/sitegraph"
	"github.com/antmicro/nisp/siteresult"
)

// Literal is one term of a cube, rendered against a pin name rather than
// the opaque dnf.VarID the router reasons over.
type Literal struct {
	Pin     string `json:"pin"`
	Negated bool   `json:"negated"`
}

// PinPairRouting is the JSON shape of a siteresult.PinPairRoutingInfo: each
// cube becomes a conjunction of Literals, each formula a disjunction of
// cubes.
type PinPairRouting struct {
	Requires [][]Literal `json:"requires"`
	Implies  [][]Literal `json:"implies"`
}

// SiteResultJSON is the serializable mirror of siteresult.SiteResult.
type SiteResultJSON struct {
	PinToPinRouting  map[string]PinPairRouting `json:"pin_to_pin_routing"`
	OutOfSiteSources map[string][]string       `json:"out_of_site_sources"`
	OutOfSiteSinks   map[string][]string       `json:"out_of_site_sinks"`
}

// ToJSON renders site as indented JSON, resolving every cube's variables
// back into "<bel>.<pin>" names via g, strings and pool.
func ToJSON(g *sitegraph.Graph, strings devicemodel.StringTable, pool *intern.Pool, site siteresult.SiteResult) ([]byte, error) {
	out := SiteResultJSON{
		PinToPinRouting:  make(map[string]PinPairRouting, len(site.PinToPinRouting)),
		OutOfSiteSources: site.OutOfSiteSources,
		OutOfSiteSinks:   site.OutOfSiteSinks,
	}
	for key, info := range site.PinToPinRouting {
		out.PinToPinRouting[key] = PinPairRouting{
			Requires: cubesToLiterals(g, strings, pool, info.Requires),
			Implies:  cubesToLiterals(g, strings, pool, info.Implies),
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

func cubesToLiterals(g *sitegraph.Graph, strings devicemodel.StringTable, pool *intern.Pool, cubes []dnf.Cube) [][]Literal {
	out := make([][]Literal, 0, len(cubes))
	for _, cube := range cubes {
		lits := make([]Literal, 0, cube.Len())
		for _, term := range cube.Terms {
			switch term.Kind {
			case dnf.Var:
				lits = append(lits, Literal{Pin: pinNameForVar(g, strings, pool, term.Var), Negated: false})
			case dnf.NegVar:
				lits = append(lits, Literal{Pin: pinNameForVar(g, strings, pool, term.Var), Negated: true})
			}
		}
		out = append(out, lits)
	}
	return out
}

func pinNameForVar(g *sitegraph.Graph, strings devicemodel.StringTable, pool *intern.Pool, v dnf.VarID) string {
	return siteresult.FormatPinName(g, strings, pool, sitegraph.PinID(v))
}
