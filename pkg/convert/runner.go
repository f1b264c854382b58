// Package convert runs the full timetable to network conversion: one input
// timetable becomes six Pajek files, one per space and weight scheme.
package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/railgraph/railgraph/pkg/network"
	"github.com/railgraph/railgraph/pkg/pajek"
	"github.com/railgraph/railgraph/pkg/timetable"
	"github.com/rs/zerolog/log"
)

type Options struct {
	InputPath string
	OutputDir string
}

// Run reads the timetable, builds the three space networks and writes both
// weightings of each. Structural input problems abort before any file is
// written; row level problems are recovered and summarized at the end.
func Run(options Options) error {
	file, err := os.Open(options.InputPath)
	if err != nil {
		return fmt.Errorf("failed to open timetable: %w", err)
	}
	defer file.Close()

	parsed, err := timetable.ParseTimetable(file)
	if err != nil {
		return err
	}

	routes := timetable.ExtractRoutes(parsed.Events)

	log.Info().
		Int("events", len(parsed.Events)).
		Int("trains", len(routes)).
		Int("rejectedrows", len(parsed.Issues)).
		Msg("Loaded timetable")

	if options.OutputDir != "" {
		if err := os.MkdirAll(options.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	networks := network.BuildAllSpaces(routes)

	droppedPairs := 0

	for _, spaceNetwork := range networks {
		for _, scheme := range network.WeightSchemes {
			graph := spaceNetwork.Aggregate(scheme)
			droppedPairs += len(spaceNetwork.Observations) - len(graph.Weights)

			filename := fmt.Sprintf("%s_%s.net", scheme.Name, spaceNetwork.Space.Name)
			path := filepath.Join(options.OutputDir, filename)

			if err := writeGraph(path, graph, scheme); err != nil {
				return err
			}

			log.Info().
				Str("space", spaceNetwork.Space.Name).
				Str("scheme", scheme.Name).
				Int("vertices", len(graph.Vertices)).
				Int("arcs", len(graph.Weights)).
				Str("path", path).
				Msg("Network saved")
		}
	}

	log.Info().
		Int("rejectedrows", len(parsed.Issues)).
		Int("droppedpairs", droppedPairs).
		Msg("Conversion complete")

	return nil
}

func writeGraph(path string, graph *network.WeightedDirectedGraph, scheme network.WeightScheme) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := pajek.Write(file, graph, scheme.FormatWeight); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
