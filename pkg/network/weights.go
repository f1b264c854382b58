package network

import (
	"fmt"
	"strconv"

	"github.com/montanaflynn/stats"
)

// WeightScheme reduces the observations accumulated for one directed pair
// into a single edge weight. Returning ok=false drops the pair from the
// output graph of that scheme.
type WeightScheme struct {
	Name         string
	Weigh        func(observations []EdgeObservation) (weight float64, ok bool)
	FormatWeight func(weight float64) string
}

var (
	// DSN weights an edge by the number of trains observed on it.
	DSN = WeightScheme{
		Name: "DSN",
		Weigh: func(observations []EdgeObservation) (float64, bool) {
			if len(observations) == 0 {
				return 0, false
			}

			return float64(len(observations)), true
		},
		FormatWeight: func(weight float64) string {
			return strconv.FormatFloat(weight, 'f', -1, 64)
		},
	}

	// DTN weights an edge by the reciprocal of the mean travel time in
	// minutes. Observations without a sample are ignored; a pair with no
	// samples at all, or a non-positive mean, is dropped.
	DTN = WeightScheme{
		Name: "DTN",
		Weigh: func(observations []EdgeObservation) (float64, bool) {
			samples := TravelTimeSamples(observations)
			if len(samples) == 0 {
				return 0, false
			}

			mean, err := stats.Mean(samples)
			if err != nil || mean <= 0 {
				return 0, false
			}

			return 1 / mean, true
		},
		FormatWeight: func(weight float64) string {
			return fmt.Sprintf("%.2f", weight)
		},
	}

	WeightSchemes = []WeightScheme{DSN, DTN}
)
