package timetable

import (
	"fmt"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// TimeOfDay is a wall clock time within a single service day. The zero value
// means no time was given, which is valid for the arrival of a route's first
// event and the departure of its last.
type TimeOfDay struct {
	seconds int
	set     bool
}

// NewTimeOfDay builds a set TimeOfDay from clock components.
func NewTimeOfDay(hour int, minute int, second int) TimeOfDay {
	return TimeOfDay{
		seconds: (hour*3600 + minute*60 + second) % secondsPerDay,
		set:     true,
	}
}

// ParseTimeOfDay parses a HH:MM:SS column value. An empty value is not an
// error - it parses to the unset TimeOfDay.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return TimeOfDay{}, nil
	}

	parsed, err := time.Parse("15:04:05", value)
	if err != nil {
		return TimeOfDay{}, err
	}

	return NewTimeOfDay(parsed.Hour(), parsed.Minute(), parsed.Second()), nil
}

func (t TimeOfDay) IsSet() bool {
	return t.set
}

// Seconds returns the number of seconds since midnight.
func (t TimeOfDay) Seconds() int {
	return t.seconds
}

// MinutesUntil returns the minutes elapsed from t to later within the same
// service day. Negative when later precedes t on the clock.
func (t TimeOfDay) MinutesUntil(later TimeOfDay) float64 {
	return float64(later.seconds-t.seconds) / 60
}

// Add returns the clock time d after t, wrapping at midnight.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	if !t.set {
		return t
	}

	seconds := (t.seconds + int(d.Seconds())) % secondsPerDay
	if seconds < 0 {
		seconds += secondsPerDay
	}

	return TimeOfDay{seconds: seconds, set: true}
}

func (t TimeOfDay) String() string {
	if !t.set {
		return ""
	}

	return fmt.Sprintf("%02d:%02d:%02d", t.seconds/3600, (t.seconds/60)%60, t.seconds%60)
}

func (t TimeOfDay) MarshalCSV() (string, error) {
	return t.String(), nil
}

func (t *TimeOfDay) UnmarshalCSV(value string) error {
	parsed, err := ParseTimeOfDay(value)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}
