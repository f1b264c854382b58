package network

import (
	"slices"
	"strings"

	"github.com/railgraph/railgraph/pkg/timetable"
	"github.com/railgraph/railgraph/pkg/util"
)

// Space is one rule for deciding when two stations are adjacent in the
// derived network. Each space is fully described by the stop types it
// retains and whether consecutive repeats of the same station collapse
// before edges are read off.
type Space struct {
	Name string

	// AllowedStopTypes is the set of stop types a route event must have to
	// survive filtering for this space.
	AllowedStopTypes []timetable.StopType

	// DeduplicateConsecutive collapses runs of events at the same physical
	// station (compared with NormalizeStationName) into their first event.
	DeduplicateConsecutive bool
}

var (
	// SpaceStations keeps every event, so edges follow the physical track:
	// one edge per consecutive station hop whether or not the train stops.
	SpaceStations = Space{
		Name: "SpaceStations",
		AllowedStopTypes: []timetable.StopType{
			timetable.StopTypeBegin,
			timetable.StopTypePass,
			timetable.StopTypeStop,
			timetable.StopTypeEnd,
			timetable.StopTypeServiceStop,
		},
	}

	// SpaceStops links consecutive passenger stops, skipping over stations
	// the train passes through without stopping.
	SpaceStops = Space{
		Name: "SpaceStops",
		AllowedStopTypes: []timetable.StopType{
			timetable.StopTypeBegin,
			timetable.StopTypeStop,
			timetable.StopTypeEnd,
		},
	}

	// SpaceChanges links consecutive distinct passenger stops. A reverse
	// edge only ever appears when another route independently produces it.
	SpaceChanges = Space{
		Name: "SpaceChanges",
		AllowedStopTypes: []timetable.StopType{
			timetable.StopTypeBegin,
			timetable.StopTypeStop,
			timetable.StopTypeEnd,
		},
		DeduplicateConsecutive: true,
	}

	Spaces = []Space{SpaceStations, SpaceStops, SpaceChanges}
)

// NormalizeStationName folds a station identifier for equality checks only.
// Vertex labels keep their original (trimmed) casing.
func NormalizeStationName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Filter reduces a route to the events that exist in this space, preserving
// relative order.
func (s Space) Filter(route timetable.Route) []timetable.StopEvent {
	events := slices.Clone(route.Events)

	util.InPlaceFilter(&events, func(event timetable.StopEvent) bool {
		return slices.Contains(s.AllowedStopTypes, event.StopType)
	})

	if s.DeduplicateConsecutive {
		deduplicated := events[:0]
		for _, event := range events {
			if len(deduplicated) > 0 &&
				NormalizeStationName(deduplicated[len(deduplicated)-1].Station) == NormalizeStationName(event.Station) {
				continue
			}
			deduplicated = append(deduplicated, event)
		}
		events = deduplicated
	}

	return events
}

// ExtractEdges walks the filtered events and emits one directed observation
// per consecutive pair. The travel time sample is the gap between the
// earlier event's departure and the later event's arrival, when both are
// present and the clock does not run backwards. Self loops never appear.
func (s Space) ExtractEdges(events []timetable.StopEvent) []EdgeObservation {
	var observations []EdgeObservation

	for i := 0; i+1 < len(events); i++ {
		source := strings.TrimSpace(events[i].Station)
		target := strings.TrimSpace(events[i+1].Station)

		if NormalizeStationName(source) == NormalizeStationName(target) {
			continue
		}

		observation := EdgeObservation{
			Source: source,
			Target: target,
		}

		departure := events[i].DepartureTime
		arrival := events[i+1].ArrivalTime

		if departure.IsSet() && arrival.IsSet() {
			minutes := departure.MinutesUntil(arrival)
			if minutes >= 0 {
				observation.TravelTimeMinutes = minutes
				observation.HasTravelTime = true
			}
		}

		observations = append(observations, observation)
	}

	return observations
}
