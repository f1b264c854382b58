// Package pajek renders weighted directed graphs as Pajek .net documents,
// the plain text exchange format most community detection tools accept.
package pajek

import (
	"bufio"
	"fmt"
	"io"

	"github.com/railgraph/railgraph/pkg/network"
)

// Write renders the graph with a 1-based vertex list followed by an arc
// list. Vertex identifiers follow the graph's (sorted) vertex order, so two
// graphs sharing a vertex set serialize with identical identifiers.
func Write(w io.Writer, graph *network.WeightedDirectedGraph, formatWeight func(float64) string) error {
	buffered := bufio.NewWriter(w)

	fmt.Fprintf(buffered, "*Vertices %d\n", len(graph.Vertices))

	identifiers := make(map[string]int, len(graph.Vertices))
	for index, label := range graph.Vertices {
		identifiers[label] = index + 1
		fmt.Fprintf(buffered, "%d %q\n", index+1, label)
	}

	edges := graph.Edges()

	fmt.Fprintf(buffered, "*Arcs %d\n", len(edges))

	for _, edge := range edges {
		fmt.Fprintf(buffered, "%d %d %s\n",
			identifiers[edge.Source],
			identifiers[edge.Target],
			formatWeight(graph.Weights[edge]),
		)
	}

	return buffered.Flush()
}
