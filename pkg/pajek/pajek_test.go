package pajek

import (
	"strings"
	"testing"

	"github.com/railgraph/railgraph/pkg/network"
)

func TestWrite(t *testing.T) {
	graph := &network.WeightedDirectedGraph{
		Vertices: []string{"AAA", "BBB", "CCC"},
		Weights: map[network.Edge]float64{
			{Source: "BBB", Target: "CCC"}: 1,
			{Source: "AAA", Target: "BBB"}: 2,
		},
	}

	var builder strings.Builder
	if err := Write(&builder, graph, network.DSN.FormatWeight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `*Vertices 3
1 "AAA"
2 "BBB"
3 "CCC"
*Arcs 2
1 2 2
2 3 1
`

	if builder.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", builder.String(), want)
	}
}

func TestWriteEmptyGraph(t *testing.T) {
	graph := &network.WeightedDirectedGraph{
		Weights: map[network.Edge]float64{},
	}

	var builder strings.Builder
	if err := Write(&builder, graph, network.DSN.FormatWeight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "*Vertices 0\n*Arcs 0\n"
	if builder.String() != want {
		t.Errorf("output = %q, want %q", builder.String(), want)
	}
}

// Both weightings of a space share the same vertex slice, so their files
// must assign identical identifiers.
func TestWriteIdentifierStabilityAcrossSchemes(t *testing.T) {
	vertices := []string{"AAA", "BBB", "CCC"}

	dsn := &network.WeightedDirectedGraph{
		Vertices: vertices,
		Weights: map[network.Edge]float64{
			{Source: "AAA", Target: "CCC"}: 3,
		},
	}
	dtn := &network.WeightedDirectedGraph{
		Vertices: vertices,
		Weights:  map[network.Edge]float64{},
	}

	var dsnOut, dtnOut strings.Builder
	if err := Write(&dsnOut, dsn, network.DSN.FormatWeight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Write(&dtnOut, dtn, network.DTN.FormatWeight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dsnLines := strings.Split(dsnOut.String(), "\n")
	dtnLines := strings.Split(dtnOut.String(), "\n")

	// Vertex section: header plus one line per vertex
	for i := 0; i <= len(vertices); i++ {
		if dsnLines[i] != dtnLines[i] {
			t.Errorf("vertex line %d differs: %q vs %q", i, dsnLines[i], dtnLines[i])
		}
	}
}

func TestWriteDTNWeightFormat(t *testing.T) {
	graph := &network.WeightedDirectedGraph{
		Vertices: []string{"AAA", "BBB"},
		Weights: map[network.Edge]float64{
			{Source: "AAA", Target: "BBB"}: 1.0 / 15.0,
		},
	}

	var builder strings.Builder
	if err := Write(&builder, graph, network.DTN.FormatWeight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(builder.String(), "1 2 0.07\n") {
		t.Errorf("DTN arcs should render with two decimals, got:\n%s", builder.String())
	}
}
