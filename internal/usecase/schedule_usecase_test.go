package usecase

import (
	"testing"
	"time"

	"hospital-booking-api/internal/scheduling"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) scheduling.TimeOfDay {
	t.Helper()
	tod, err := scheduling.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func TestBuildExpansionOnce(t *testing.T) {
	doctorID := uuid.New()
	date := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	schedules, visits, err := buildExpansion(
		doctorID, 30, date,
		mustTime(t, "09:00:00"), mustTime(t, "10:00:00"),
		scheduling.PeriodicityOnce,
	)
	require.NoError(t, err)

	require.Len(t, schedules, 1)
	assert.Equal(t, date, schedules[0].Date)
	assert.Equal(t, doctorID, schedules[0].DoctorID)

	require.Len(t, visits, 2)
	assert.Equal(t, mustTime(t, "09:00:00"), visits[0].Time)
	assert.Equal(t, mustTime(t, "09:30:00"), visits[1].Time)
	for _, v := range visits {
		assert.Equal(t, date, v.Date)
		assert.Equal(t, doctorID, v.DoctorID)
	}
}

func TestBuildExpansionEveryDayStopsAtMonthEnd(t *testing.T) {
	// March 29 is a Friday; the walk ends with the month.
	date := time.Date(2024, time.March, 29, 0, 0, 0, 0, time.UTC)

	schedules, visits, err := buildExpansion(
		uuid.New(), 60, date,
		mustTime(t, "08:00:00"), mustTime(t, "12:00:00"),
		scheduling.PeriodicityEveryDay,
	)
	require.NoError(t, err)

	require.Len(t, schedules, 3)
	assert.Equal(t, 29, schedules[0].Date.Day())
	assert.Equal(t, 30, schedules[1].Date.Day())
	assert.Equal(t, 31, schedules[2].Date.Day())

	// 4 one-hour slots per day.
	assert.Len(t, visits, 12)
}

func TestBuildExpansionTrailingPartialSlot(t *testing.T) {
	// 60 minutes of window with 45-minute visits still yields two slots;
	// the second one just runs past the declared end.
	_, visits, err := buildExpansion(
		uuid.New(), 45,
		time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		mustTime(t, "09:00:00"), mustTime(t, "10:00:00"),
		scheduling.PeriodicityOnce,
	)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, mustTime(t, "09:45:00"), visits[1].Time)
}

func TestBuildExpansionWeekendStart(t *testing.T) {
	// March 2, 2024 is a Saturday.
	date := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)

	_, _, err := buildExpansion(
		uuid.New(), 30, date,
		mustTime(t, "09:00:00"), mustTime(t, "10:00:00"),
		scheduling.PeriodicityExceptWeekend,
	)
	assert.ErrorIs(t, err, ErrWeekendStart)
}

func TestBuildExpansionInvalidTimeRange(t *testing.T) {
	date := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	_, _, err := buildExpansion(
		uuid.New(), 30, date,
		mustTime(t, "10:00:00"), mustTime(t, "09:00:00"),
		scheduling.PeriodicityOnce,
	)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestBuildExpansionMissingVisitDuration(t *testing.T) {
	date := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	_, _, err := buildExpansion(
		uuid.New(), 0, date,
		mustTime(t, "09:00:00"), mustTime(t, "10:00:00"),
		scheduling.PeriodicityOnce,
	)
	assert.ErrorIs(t, err, ErrVisitDurationNotSet)
}

func TestBuildExpansionInvalidPeriodicity(t *testing.T) {
	date := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	_, _, err := buildExpansion(
		uuid.New(), 30, date,
		mustTime(t, "09:00:00"), mustTime(t, "10:00:00"),
		scheduling.Periodicity("sometimes"),
	)
	assert.ErrorIs(t, err, ErrInvalidPeriodicity)
}
