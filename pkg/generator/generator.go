// Package generator fabricates plausible station networks and train
// schedules, used to exercise the timetable conversion without real data.
package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/railgraph/railgraph/pkg/timetable"
)

// Station is one row of the generated station list.
type Station struct {
	ID        int     `csv:"Station ID"`
	Code      string  `csv:"Station Code"`
	Name      string  `csv:"Station Name"`
	Longitude float64 `csv:"Longitude (degrees)"`
	Latitude  float64 `csv:"Latitude (degrees)"`
}

// Train is the outline of one service: a code plus the departure from its
// first station and the arrival at its last.
type Train struct {
	Code           string
	FirstDeparture timetable.TimeOfDay
	LastArrival    timetable.TimeOfDay
}

type Generator struct {
	config Config
	rng    *rand.Rand
}

func New(config Config) *Generator {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		config: config,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Stations generates unique 3 letter station codes with uniformly
// distributed coordinates and a shuffled identifier assignment.
func (g *Generator) Stations() []Station {
	codes := map[string]bool{}
	identifiers := g.rng.Perm(g.config.Stations)

	stations := make([]Station, 0, g.config.Stations)

	for i := 0; i < g.config.Stations; i++ {
		var code string
		for {
			code = string([]byte{
				letters[g.rng.Intn(len(letters))],
				letters[g.rng.Intn(len(letters))],
				letters[g.rng.Intn(len(letters))],
			})
			if !codes[code] {
				codes[code] = true
				break
			}
		}

		stations = append(stations, Station{
			ID:        identifiers[i],
			Code:      code,
			Name:      code,
			Longitude: g.config.LongitudeMin + g.rng.Float64()*(g.config.LongitudeMax-g.config.LongitudeMin),
			Latitude:  g.config.LatitudeMin + g.rng.Float64()*(g.config.LatitudeMax-g.config.LatitudeMin),
		})
	}

	return stations
}

// Trains generates unique train codes ('R' or 'E' plus two digits) with a
// first departure inside the configured window and a total journey time of
// one to two hours.
func (g *Generator) Trains() []Train {
	windowFrom, _ := timetable.ParseTimeOfDay(g.config.DepartureWindowFrom)
	windowTo, _ := timetable.ParseTimeOfDay(g.config.DepartureWindowTo)
	windowMinutes := int(windowFrom.MinutesUntil(windowTo))

	codes := map[string]bool{}
	trains := make([]Train, 0, g.config.Trains)

	for len(trains) < g.config.Trains {
		prefix := "R"
		if g.rng.Intn(2) == 1 {
			prefix = "E"
		}
		code := fmt.Sprintf("%s%02d", prefix, g.rng.Intn(100))
		if codes[code] {
			continue
		}
		codes[code] = true

		firstDeparture := windowFrom.Add(time.Duration(g.rng.Intn(windowMinutes)) * time.Minute)
		travelMinutes := 60 + g.rng.Intn(60)

		trains = append(trains, Train{
			Code:           code,
			FirstDeparture: firstDeparture,
			LastArrival:    firstDeparture.Add(time.Duration(travelMinutes) * time.Minute),
		})
	}

	return trains
}

// Timetable generates the stop events for every train. Each route visits a
// random subset of at least two stations in random order; intermediate
// arrival times are uniformly distributed over the journey and each
// intermediate station is either a stop (with a short dwell) or a pass.
func (g *Generator) Timetable(stations []Station, trains []Train) []timetable.StopEvent {
	var events []timetable.StopEvent

	for _, train := range trains {
		routeLength := 2 + g.rng.Intn(len(stations)-1)
		route := g.rng.Perm(len(stations))[:routeLength]

		totalSeconds := int(train.FirstDeparture.MinutesUntil(train.LastArrival) * 60)

		offsets := make([]int, routeLength)
		for i := 1; i < routeLength-1; i++ {
			offsets[i] = g.rng.Intn(totalSeconds)
		}
		offsets[routeLength-1] = totalSeconds
		sort.Ints(offsets)

		events = append(events, timetable.StopEvent{
			TrainNumber:   train.Code,
			Station:       stations[route[0]].Code,
			DepartureTime: train.FirstDeparture,
			StopType:      timetable.StopTypeBegin,
		})

		for i := 1; i < routeLength-1; i++ {
			arrival := train.FirstDeparture.Add(time.Duration(offsets[i]) * time.Second)
			departure := arrival
			stopType := timetable.StopTypePass

			if g.rng.Float64() < g.config.StopProbability {
				stopType = timetable.StopTypeStop

				dwellRange := g.config.StopDurationMaxMinutes - g.config.StopDurationMinMinutes + 1
				dwell := time.Duration(g.config.StopDurationMinMinutes+g.rng.Intn(dwellRange)) * time.Minute

				// Keep times monotone along the route
				if offsets[i]+int(dwell.Seconds()) <= offsets[i+1] {
					departure = arrival.Add(dwell)
				}
			}

			events = append(events, timetable.StopEvent{
				TrainNumber:   train.Code,
				Station:       stations[route[i]].Code,
				ArrivalTime:   arrival,
				DepartureTime: departure,
				StopType:      stopType,
			})
		}

		events = append(events, timetable.StopEvent{
			TrainNumber: train.Code,
			Station:     stations[route[routeLength-1]].Code,
			ArrivalTime: train.LastArrival,
			StopType:    timetable.StopTypeEnd,
		})
	}

	return events
}
