package generator

import (
	"fmt"
	"os"

	"github.com/railgraph/railgraph/pkg/timetable"
	"gopkg.in/yaml.v3"
)

// Code spaces are finite: three uppercase letters for stations, 'R' or 'E'
// plus two digits for trains. Asking for more would loop forever hunting
// for an unused code.
const (
	maxStations = 26 * 26 * 26
	maxTrains   = 2 * 100
)

// Config holds the knobs for synthetic timetable generation. All values
// have defaults so an empty config is usable.
type Config struct {
	Stations int `yaml:"stations"`
	Trains   int `yaml:"trains"`

	DepartureWindowFrom string `yaml:"departure_window_from"`
	DepartureWindowTo   string `yaml:"departure_window_to"`

	LatitudeMin  float64 `yaml:"latitude_min"`
	LatitudeMax  float64 `yaml:"latitude_max"`
	LongitudeMin float64 `yaml:"longitude_min"`
	LongitudeMax float64 `yaml:"longitude_max"`

	// StopProbability decides per intermediate station whether the train
	// stops there or passes through.
	StopProbability float64 `yaml:"stop_probability"`

	StopDurationMinMinutes int `yaml:"stop_duration_min_minutes"`
	StopDurationMaxMinutes int `yaml:"stop_duration_max_minutes"`

	// Seed makes a run reproducible. Zero seeds from the clock.
	Seed int64 `yaml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Stations:               10,
		Trains:                 5,
		DepartureWindowFrom:    "05:00:00",
		DepartureWindowTo:      "12:00:00",
		LatitudeMin:            10,
		LatitudeMax:            50,
		LongitudeMin:           10,
		LongitudeMax:           50,
		StopProbability:        0.7,
		StopDurationMinMinutes: 1,
		StopDurationMaxMinutes: 3,
	}
}

// LoadConfig reads a YAML parameter file over the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	configYaml, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}

	if err := yaml.Unmarshal(configYaml, &config); err != nil {
		return config, fmt.Errorf("failed to parse generator config: %w", err)
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	if c.Stations < 2 {
		return fmt.Errorf("need at least 2 stations, got %d", c.Stations)
	}
	if c.Stations > maxStations {
		return fmt.Errorf("only %d distinct station codes exist, got %d stations", maxStations, c.Stations)
	}
	if c.Trains < 1 {
		return fmt.Errorf("need at least 1 train, got %d", c.Trains)
	}
	if c.Trains > maxTrains {
		return fmt.Errorf("only %d distinct train codes exist, got %d trains", maxTrains, c.Trains)
	}
	if c.StopProbability < 0 || c.StopProbability > 1 {
		return fmt.Errorf("stop probability %f is not in [0, 1]", c.StopProbability)
	}
	if c.StopDurationMinMinutes < 1 || c.StopDurationMaxMinutes < c.StopDurationMinMinutes {
		return fmt.Errorf("invalid stop duration range %d-%d", c.StopDurationMinMinutes, c.StopDurationMaxMinutes)
	}

	from, err := timetable.ParseTimeOfDay(c.DepartureWindowFrom)
	if err != nil || !from.IsSet() {
		return fmt.Errorf("invalid departure window start %q", c.DepartureWindowFrom)
	}
	to, err := timetable.ParseTimeOfDay(c.DepartureWindowTo)
	if err != nil || !to.IsSet() {
		return fmt.Errorf("invalid departure window end %q", c.DepartureWindowTo)
	}
	if from.MinutesUntil(to) <= 0 {
		return fmt.Errorf("departure window %s-%s is empty", c.DepartureWindowFrom, c.DepartureWindowTo)
	}

	return nil
}
