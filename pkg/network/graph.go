package network

import (
	"sort"

	"golang.org/x/exp/maps"
)

// WeightedDirectedGraph is the final product of a space under one weight
// scheme. Vertices are sorted station labels; the vertex set is shared by
// both weight schemes of a space so that vertex identifiers line up across
// their output files.
type WeightedDirectedGraph struct {
	Vertices []string
	Weights  map[Edge]float64
}

// Edges returns the graph's edges ordered by source then target, so output
// is reproducible between runs.
func (g *WeightedDirectedGraph) Edges() []Edge {
	edges := maps.Keys(g.Weights)

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Source != edges[j].Source {
			return edges[i].Source < edges[j].Source
		}
		return edges[i].Target < edges[j].Target
	})

	return edges
}
