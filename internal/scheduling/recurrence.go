package scheduling

import (
	"errors"
	"time"
)

// Periodicity controls how many calendar dates one schedule declaration
// expands into. Values match the stored column values.
type Periodicity string

const (
	PeriodicityOnce          Periodicity = "Once"
	PeriodicityEveryDay      Periodicity = "Every day"
	PeriodicityEveryWeek     Periodicity = "Every week"
	PeriodicityExceptWeekend Periodicity = "Except weekend"
)

var (
	ErrInvalidPeriodicity = errors.New("invalid periodicity")

	// ErrWeekendStart is returned when an "Except weekend" expansion is
	// requested for a start date that is itself a Saturday or Sunday.
	ErrWeekendStart = errors.New("schedule cannot start on a weekend")
)

func (p Periodicity) Valid() bool {
	switch p {
	case PeriodicityOnce, PeriodicityEveryDay, PeriodicityEveryWeek, PeriodicityExceptWeekend:
		return true
	}
	return false
}

// Dates walks the calendar from start according to the periodicity and
// returns every covered date. The walk is bounded to the start date's
// calendar month: generation always stops at the month boundary, so a
// schedule declared near the end of a month expands into few dates.
func Dates(p Periodicity, start time.Time) ([]time.Time, error) {
	start = truncateToDate(start)

	switch p {
	case PeriodicityOnce:
		return []time.Time{start}, nil
	case PeriodicityEveryDay:
		return walk(start, 1, false), nil
	case PeriodicityEveryWeek:
		return walk(start, 7, false), nil
	case PeriodicityExceptWeekend:
		if isWeekend(start) {
			return nil, ErrWeekendStart
		}
		return walk(start, 1, true), nil
	default:
		return nil, ErrInvalidPeriodicity
	}
}

// walk steps from start by stepDays while the date stays in the start
// month. With skipWeekend, a date landing on Saturday or Sunday is pushed
// forward two days before being emitted, which can itself cross the month
// boundary and end the walk mid-step.
func walk(start time.Time, stepDays int, skipWeekend bool) []time.Time {
	month := start.Month()
	var dates []time.Time
	for date := start; date.Month() == month; date = date.AddDate(0, 0, stepDays) {
		if skipWeekend && isWeekend(date) {
			date = date.AddDate(0, 0, 2)
		}
		dates = append(dates, date)
	}
	return dates
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
