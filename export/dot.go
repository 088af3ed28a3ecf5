package export

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"

	"github.com/antmicro/nisp/devicemodel"
	"github.com/antmicro/nisp/intern"
	"github.com/antmicro/nisp/sitegraph"
)

var dotTemplate = template.Must(template.New("dot").Parse(`# DOT graph generated by nisp

digraph {{.Name}} {

{{- range .Clusters}}
    subgraph cluster_{{.ID}} {
        node [style=filled];
        label = "{{.Label}}";
        color = "blue";
{{- range .Pins}}
        {{.ID}} [label="{{.Label}}"];
{{- end}}
    }

{{- end}}

{{- range .Edges}}
    {{.From}} -> {{.To}};
{{- end}}
}
`))

type dotPin struct {
	ID    sitegraph.PinID
	Label string
}

type dotCluster struct {
	ID    string
	Label string
	Pins  []dotPin
}

type dotEdge struct {
	From, To sitegraph.PinID
}

type dotData struct {
	Name     string
	Clusters []dotCluster
	Edges    []dotEdge
}

// RenderDot renders g as a Graphviz digraph named name: one subgraph
// cluster per BEL, grouping that BEL's pins, followed by every directed
// edge in the adjacency matrix.
func RenderDot(g *sitegraph.Graph, strings devicemodel.StringTable, pool *intern.Pool, name string) (string, error) {
	clusterOrder := make([]string, 0)
	clusters := make(map[string]*dotCluster)

	for p := sitegraph.PinID(0); int(p) < g.PinCount(); p++ {
		belName := g.BELName(p).Resolve(strings, pool)
		belID := fmt.Sprintf("bel%d", g.BELIndex(p))

		c, ok := clusters[belID]
		if !ok {
			c = &dotCluster{ID: belID, Label: belName}
			clusters[belID] = c
			clusterOrder = append(clusterOrder, belID)
		}
		c.Pins = append(c.Pins, dotPin{ID: p, Label: g.Name(p).Resolve(strings, pool)})
	}

	data := dotData{Name: name}
	for _, id := range clusterOrder {
		data.Clusters = append(data.Clusters, *clusters[id])
	}

	var edges []dotEdge
	for p := sitegraph.PinID(0); int(p) < g.PinCount(); p++ {
		for _, succ := range g.Successors(p) {
			edges = append(edges, dotEdge{From: p, To: succ})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	data.Edges = edges

	var buf bytes.Buffer
	if err := dotTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
