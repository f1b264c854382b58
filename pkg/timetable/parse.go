package timetable

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

var requiredColumns = []string{"Train number", "Station", "Arrival time", "Departure time", "Stop type"}

// RowIssue records a timetable row that was rejected, with enough context to
// find it in the source file. Issues are recoverable - the rest of the run
// carries on without the row.
type RowIssue struct {
	Line        int
	TrainNumber string
	Reason      string
}

func (i RowIssue) String() string {
	return fmt.Sprintf("line %d (train %q): %s", i.Line, i.TrainNumber, i.Reason)
}

// Timetable is the full set of usable stop events from one input file plus
// the rows that had to be rejected.
type Timetable struct {
	Events []StopEvent
	Issues []RowIssue
}

// stopEventRecord is the raw shape of an input row. Values are converted and
// validated per row afterwards so that one bad row cannot abort the run.
type stopEventRecord struct {
	TrainNumber   string `csv:"Train number"`
	Station       string `csv:"Station"`
	ArrivalTime   string `csv:"Arrival time"`
	DepartureTime string `csv:"Departure time"`
	StopType      string `csv:"Stop type"`
}

// ParseTimetable reads a semicolon separated timetable. Structural problems
// (unreadable input, missing required columns) return an error; malformed
// rows are collected as issues instead.
func ParseTimetable(reader io.Reader) (*Timetable, error) {
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	headerReader := csv.NewReader(bytes.NewReader(body))
	headerReader.Comma = ';'
	headerReader.FieldsPerRecord = -1

	header, err := headerReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read timetable header: %w", err)
	}

	for _, column := range requiredColumns {
		if !slices.Contains(header, column) {
			return nil, fmt.Errorf("timetable is missing required column %q", column)
		}
	}

	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = ';'
		r.FieldsPerRecord = -1
		return r
	})

	var records []stopEventRecord
	if err := gocsv.UnmarshalBytes(body, &records); err != nil {
		return nil, fmt.Errorf("failed to parse timetable: %w", err)
	}

	timetable := &Timetable{}

	for index, record := range records {
		// Header is line 1
		line := index + 2

		event, reason := convertRecord(record)
		if reason != "" {
			issue := RowIssue{Line: line, TrainNumber: record.TrainNumber, Reason: reason}
			timetable.Issues = append(timetable.Issues, issue)

			log.Warn().
				Int("line", issue.Line).
				Str("train", issue.TrainNumber).
				Str("reason", issue.Reason).
				Msg("Rejected timetable row")

			continue
		}

		timetable.Events = append(timetable.Events, event)
	}

	return timetable, nil
}

func convertRecord(record stopEventRecord) (StopEvent, string) {
	event := StopEvent{
		TrainNumber: record.TrainNumber,
		Station:     record.Station,
	}

	if record.TrainNumber == "" {
		return StopEvent{}, "empty train number"
	}
	if strings.TrimSpace(record.Station) == "" {
		return StopEvent{}, "empty station"
	}

	stopType, valid := ParseStopType(record.StopType)
	if !valid {
		return StopEvent{}, fmt.Sprintf("unknown stop type %q", record.StopType)
	}
	event.StopType = stopType

	arrival, err := ParseTimeOfDay(record.ArrivalTime)
	if err != nil {
		return StopEvent{}, fmt.Sprintf("unparseable arrival time %q", record.ArrivalTime)
	}
	event.ArrivalTime = arrival

	departure, err := ParseTimeOfDay(record.DepartureTime)
	if err != nil {
		return StopEvent{}, fmt.Sprintf("unparseable departure time %q", record.DepartureTime)
	}
	event.DepartureTime = departure

	return event, ""
}
