package network

// Edge is an ordered station pair.
type Edge struct {
	Source string
	Target string
}

// EdgeObservation is one directed hop attributable to one train's route.
// Observations between the same pair accumulate independently - a train
// revisiting a pair counts again.
type EdgeObservation struct {
	Source string
	Target string

	TravelTimeMinutes float64
	HasTravelTime     bool
}

// TravelTimeSamples collects the travel time samples carried by a set of
// observations for one pair.
func TravelTimeSamples(observations []EdgeObservation) []float64 {
	var samples []float64

	for _, observation := range observations {
		if observation.HasTravelTime {
			samples = append(samples, observation.TravelTimeMinutes)
		}
	}

	return samples
}
