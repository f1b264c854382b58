package generator

import (
	"reflect"
	"regexp"
	"testing"

	"github.com/railgraph/railgraph/pkg/timetable"
)

func seededConfig() Config {
	config := DefaultConfig()
	config.Seed = 42
	return config
}

func TestStations(t *testing.T) {
	stations := New(seededConfig()).Stations()

	if len(stations) != 10 {
		t.Fatalf("expected 10 stations, got %d", len(stations))
	}

	codePattern := regexp.MustCompile(`^[A-Z]{3}$`)
	codes := map[string]bool{}
	identifiers := map[int]bool{}

	for _, station := range stations {
		if !codePattern.MatchString(station.Code) {
			t.Errorf("station code %q is not 3 uppercase letters", station.Code)
		}
		if codes[station.Code] {
			t.Errorf("duplicate station code %q", station.Code)
		}
		codes[station.Code] = true

		if identifiers[station.ID] {
			t.Errorf("duplicate station id %d", station.ID)
		}
		identifiers[station.ID] = true

		if station.Latitude < 10 || station.Latitude > 50 {
			t.Errorf("latitude %f outside configured range", station.Latitude)
		}
		if station.Longitude < 10 || station.Longitude > 50 {
			t.Errorf("longitude %f outside configured range", station.Longitude)
		}
		if station.Name != station.Code {
			t.Errorf("station name %q should mirror the code %q", station.Name, station.Code)
		}
	}
}

func TestTrains(t *testing.T) {
	trains := New(seededConfig()).Trains()

	if len(trains) != 5 {
		t.Fatalf("expected 5 trains, got %d", len(trains))
	}

	codePattern := regexp.MustCompile(`^[RE]\d{2}$`)
	windowFrom, _ := timetable.ParseTimeOfDay("05:00:00")
	windowTo, _ := timetable.ParseTimeOfDay("12:00:00")

	codes := map[string]bool{}

	for _, train := range trains {
		if !codePattern.MatchString(train.Code) {
			t.Errorf("train code %q does not match [RE]dd", train.Code)
		}
		if codes[train.Code] {
			t.Errorf("duplicate train code %q", train.Code)
		}
		codes[train.Code] = true

		if train.FirstDeparture.Seconds() < windowFrom.Seconds() || train.FirstDeparture.Seconds() >= windowTo.Seconds() {
			t.Errorf("departure %s outside window", train.FirstDeparture)
		}

		duration := train.FirstDeparture.MinutesUntil(train.LastArrival)
		if duration < 60 || duration >= 120 {
			t.Errorf("journey of %f minutes outside 1-2 hours", duration)
		}
	}
}

// Using every available train code must terminate, not spin hunting for an
// unused one.
func TestTrainsExhaustingCodeSpaceTerminates(t *testing.T) {
	config := seededConfig()
	config.Trains = 200

	trains := New(config).Trains()

	if len(trains) != 200 {
		t.Fatalf("expected 200 trains, got %d", len(trains))
	}

	codes := map[string]bool{}
	for _, train := range trains {
		codes[train.Code] = true
	}
	if len(codes) != 200 {
		t.Errorf("expected 200 distinct codes, got %d", len(codes))
	}
}

func TestTimetableContract(t *testing.T) {
	generator := New(seededConfig())
	stations := generator.Stations()
	trains := generator.Trains()

	events := generator.Timetable(stations, trains)
	routes := timetable.ExtractRoutes(events)

	if len(routes) != len(trains) {
		t.Fatalf("expected %d routes, got %d", len(trains), len(routes))
	}

	for _, route := range routes {
		if len(route.Events) < 2 {
			t.Errorf("train %s visits %d stations, want at least 2", route.TrainNumber, len(route.Events))
		}

		first := route.Events[0]
		if first.StopType != timetable.StopTypeBegin {
			t.Errorf("train %s first event is %q, want begin", route.TrainNumber, first.StopType)
		}
		if first.ArrivalTime.IsSet() {
			t.Errorf("train %s begin event has an arrival time", route.TrainNumber)
		}
		if !first.DepartureTime.IsSet() {
			t.Errorf("train %s begin event has no departure time", route.TrainNumber)
		}

		last := route.Events[len(route.Events)-1]
		if last.StopType != timetable.StopTypeEnd {
			t.Errorf("train %s last event is %q, want end", route.TrainNumber, last.StopType)
		}
		if last.DepartureTime.IsSet() {
			t.Errorf("train %s end event has a departure time", route.TrainNumber)
		}

		// Times never run backwards along the route
		previousDeparture := first.DepartureTime
		for _, event := range route.Events[1:] {
			if event.ArrivalTime.Seconds() < previousDeparture.Seconds() {
				t.Errorf("train %s arrives %s before previous departure %s",
					route.TrainNumber, event.ArrivalTime, previousDeparture)
			}

			if event.DepartureTime.IsSet() {
				if event.DepartureTime.Seconds() < event.ArrivalTime.Seconds() {
					t.Errorf("train %s departs %s before arriving %s",
						route.TrainNumber, event.DepartureTime, event.ArrivalTime)
				}
				previousDeparture = event.DepartureTime
			}
		}

		for _, event := range route.Events[1 : len(route.Events)-1] {
			if event.StopType != timetable.StopTypeStop && event.StopType != timetable.StopTypePass {
				t.Errorf("train %s intermediate event is %q, want stop or pass", route.TrainNumber, event.StopType)
			}
		}
	}
}

func TestTimetableIsReproducibleBySeed(t *testing.T) {
	run := func() []timetable.StopEvent {
		generator := New(seededConfig())
		stations := generator.Stations()
		trains := generator.Trains()
		return generator.Timetable(stations, trains)
	}

	if !reflect.DeepEqual(run(), run()) {
		t.Error("two runs with the same seed diverged")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "too few stations",
			mutate:  func(c *Config) { c.Stations = 1 },
			wantErr: true,
		},
		{
			name:    "no trains",
			mutate:  func(c *Config) { c.Trains = 0 },
			wantErr: true,
		},
		{
			name:    "more trains than distinct codes",
			mutate:  func(c *Config) { c.Trains = 201 },
			wantErr: true,
		},
		{
			name:    "more stations than distinct codes",
			mutate:  func(c *Config) { c.Stations = 26*26*26 + 1 },
			wantErr: true,
		},
		{
			name:   "full train code space is allowed",
			mutate: func(c *Config) { c.Trains = 200 },
		},
		{
			name:    "probability out of range",
			mutate:  func(c *Config) { c.StopProbability = 1.5 },
			wantErr: true,
		},
		{
			name:    "inverted stop duration range",
			mutate:  func(c *Config) { c.StopDurationMinMinutes = 5; c.StopDurationMaxMinutes = 2 },
			wantErr: true,
		},
		{
			name:    "empty departure window",
			mutate:  func(c *Config) { c.DepartureWindowFrom = "12:00:00"; c.DepartureWindowTo = "12:00:00" },
			wantErr: true,
		},
		{
			name:    "garbage window time",
			mutate:  func(c *Config) { c.DepartureWindowFrom = "noon" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)

			err := config.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected a validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
