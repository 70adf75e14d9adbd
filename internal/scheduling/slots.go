package scheduling

import (
	"errors"
	"time"
)

var (
	ErrInvalidTimeRange = errors.New("time_from must be earlier than time_to")
	ErrInvalidDuration  = errors.New("visit duration must be a positive number of minutes")
)

// Slot is one discrete bookable unit on a single date.
type Slot struct {
	Date time.Time
	Time TimeOfDay
}

// Slots covers [from, to) on the given date with slots of durationMinutes
// each. The first slot starts exactly at from; the last slot starts
// strictly before to, so a partial trailing slot is still emitted.
func Slots(date time.Time, from, to TimeOfDay, durationMinutes int) ([]Slot, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if !from.Before(to) {
		return nil, ErrInvalidTimeRange
	}

	date = truncateToDate(date)
	var slots []Slot
	for t := from; t.Before(to); t = t.AddMinutes(durationMinutes) {
		slots = append(slots, Slot{Date: date, Time: t})
	}
	return slots, nil
}
