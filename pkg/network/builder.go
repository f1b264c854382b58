package network

import (
	"sort"
	"strings"

	"github.com/railgraph/railgraph/pkg/timetable"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/exp/maps"
)

// SpaceNetwork holds everything one space observed across every route: the
// vertex set and the raw observations grouped by directed pair. Weighting
// happens afterwards because both schemes need the whole multiset.
type SpaceNetwork struct {
	Space        Space
	Vertices     []string
	Observations map[Edge][]EdgeObservation
}

// BuildSpaceNetwork runs one space's rules over every route. The vertex set
// is every station appearing in an event the space retains, including
// stations from single event routes that produce no edges.
func BuildSpaceNetwork(space Space, routes []timetable.Route) *SpaceNetwork {
	vertices := map[string]bool{}
	observations := map[Edge][]EdgeObservation{}

	for _, route := range routes {
		events := space.Filter(route)

		for _, event := range events {
			vertices[strings.TrimSpace(event.Station)] = true
		}

		for _, observation := range space.ExtractEdges(events) {
			edge := Edge{Source: observation.Source, Target: observation.Target}
			observations[edge] = append(observations[edge], observation)
		}
	}

	labels := maps.Keys(vertices)
	sort.Strings(labels)

	log.Debug().
		Str("space", space.Name).
		Int("vertices", len(labels)).
		Int("pairs", len(observations)).
		Msg("Built space network")

	return &SpaceNetwork{
		Space:        space,
		Vertices:     labels,
		Observations: observations,
	}
}

// BuildAllSpaces builds the three space networks in parallel. Each space
// only reads the shared routes so they are independent of one another.
func BuildAllSpaces(routes []timetable.Route) []*SpaceNetwork {
	p := pool.NewWithResults[*SpaceNetwork]()

	for _, space := range Spaces {
		space := space
		p.Go(func() *SpaceNetwork {
			return BuildSpaceNetwork(space, routes)
		})
	}

	networks := p.Wait()

	// Pool results arrive in completion order
	sort.Slice(networks, func(i, j int) bool {
		return spaceOrder(networks[i].Space) < spaceOrder(networks[j].Space)
	})

	return networks
}

func spaceOrder(space Space) int {
	for index, known := range Spaces {
		if known.Name == space.Name {
			return index
		}
	}

	return len(Spaces)
}

// Aggregate reduces the network's observations into a weighted graph under
// one scheme. Pairs the scheme rejects are dropped; a rejection that still
// had travel time samples means a degenerate (non-positive) mean, which is
// reported but not fatal.
func (n *SpaceNetwork) Aggregate(scheme WeightScheme) *WeightedDirectedGraph {
	graph := &WeightedDirectedGraph{
		Vertices: n.Vertices,
		Weights:  map[Edge]float64{},
	}

	for edge, observations := range n.Observations {
		weight, ok := scheme.Weigh(observations)
		if !ok {
			if len(TravelTimeSamples(observations)) > 0 {
				log.Warn().
					Str("space", n.Space.Name).
					Str("scheme", scheme.Name).
					Str("source", edge.Source).
					Str("target", edge.Target).
					Msg("Skipped edge with degenerate travel time")
			}

			continue
		}

		graph.Weights[edge] = weight
	}

	return graph
}
