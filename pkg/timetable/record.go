package timetable

import (
	"strings"
)

// StopType classifies what a train does at a station.
type StopType string

const (
	StopTypeBegin       StopType = "begin"
	StopTypePass        StopType = "pass"
	StopTypeStop        StopType = "stop"
	StopTypeEnd         StopType = "end"
	StopTypeServiceStop StopType = "service_stop"
)

// ParseStopType matches a raw column value against the known stop types.
// Matching is case-insensitive as timetable exports disagree on casing.
func ParseStopType(value string) (StopType, bool) {
	switch StopType(strings.ToLower(strings.TrimSpace(value))) {
	case StopTypeBegin:
		return StopTypeBegin, true
	case StopTypePass:
		return StopTypePass, true
	case StopTypeStop:
		return StopTypeStop, true
	case StopTypeEnd:
		return StopTypeEnd, true
	case StopTypeServiceStop:
		return StopTypeServiceStop, true
	}

	return "", false
}

// StopEvent is one row of a timetable - a single train calling at (or
// passing through) a single station. Arrival is unset on the first event of
// a route and departure is unset on the last.
type StopEvent struct {
	TrainNumber   string    `csv:"Train number"`
	Station       string    `csv:"Station"`
	ArrivalTime   TimeOfDay `csv:"Arrival time"`
	DepartureTime TimeOfDay `csv:"Departure time"`
	StopType      StopType  `csv:"Stop type"`
}
