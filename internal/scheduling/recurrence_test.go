package scheduling

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDatesOnce(t *testing.T) {
	start := date(2024, time.March, 1)

	dates, err := Dates(PeriodicityOnce, start)
	if err != nil {
		t.Fatalf("Dates returned error: %v", err)
	}
	if len(dates) != 1 {
		t.Fatalf("expected 1 date, got %d", len(dates))
	}
	if !dates[0].Equal(start) {
		t.Fatalf("expected %s, got %s", start, dates[0])
	}
}

func TestDatesEveryDayCoversRestOfMonth(t *testing.T) {
	// 2024-03-29 .. 2024-03-31
	dates, err := Dates(PeriodicityEveryDay, date(2024, time.March, 29))
	if err != nil {
		t.Fatalf("Dates returned error: %v", err)
	}
	if len(dates) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(dates))
	}
	for i, d := range dates {
		want := date(2024, time.March, 29+i)
		if !d.Equal(want) {
			t.Fatalf("dates[%d] = %s, want %s", i, d, want)
		}
	}
}

func TestDatesEveryDayLastDayOfMonth(t *testing.T) {
	dates, err := Dates(PeriodicityEveryDay, date(2024, time.March, 31))
	if err != nil {
		t.Fatalf("Dates returned error: %v", err)
	}
	if len(dates) != 1 {
		t.Fatalf("month boundary should truncate immediately, got %d dates", len(dates))
	}
}

func TestDatesEveryWeek(t *testing.T) {
	// Fridays of March 2024 starting at the 1st: 1, 8, 15, 22, 29
	dates, err := Dates(PeriodicityEveryWeek, date(2024, time.March, 1))
	if err != nil {
		t.Fatalf("Dates returned error: %v", err)
	}
	want := []int{1, 8, 15, 22, 29}
	if len(dates) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(dates))
	}
	for i, d := range dates {
		if d.Day() != want[i] {
			t.Fatalf("dates[%d].Day() = %d, want %d", i, d.Day(), want[i])
		}
		if d.Weekday() != time.Friday {
			t.Fatalf("dates[%d] is %s, want Friday", i, d.Weekday())
		}
	}
}

func TestDatesExceptWeekendStartsOnWeekend(t *testing.T) {
	for _, start := range []time.Time{
		date(2024, time.March, 2), // Saturday
		date(2024, time.March, 3), // Sunday
	} {
		dates, err := Dates(PeriodicityExceptWeekend, start)
		if err != ErrWeekendStart {
			t.Fatalf("start %s: expected ErrWeekendStart, got %v", start, err)
		}
		if dates != nil {
			t.Fatalf("start %s: expected no dates, got %d", start, len(dates))
		}
	}
}

func TestDatesExceptWeekendNeverEmitsWeekend(t *testing.T) {
	dates, err := Dates(PeriodicityExceptWeekend, date(2024, time.March, 4)) // Monday
	if err != nil {
		t.Fatalf("Dates returned error: %v", err)
	}
	if len(dates) == 0 {
		t.Fatal("expected dates, got none")
	}
	for _, d := range dates {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Fatalf("walk emitted a weekend date: %s", d)
		}
	}
}

func TestDatesExceptWeekendSkipsForwardTwoDays(t *testing.T) {
	// Friday 2024-03-08; Saturday the 9th shifts to Monday the 11th.
	dates, err := Dates(PeriodicityExceptWeekend, date(2024, time.March, 8))
	if err != nil {
		t.Fatalf("Dates returned error: %v", err)
	}
	if len(dates) < 2 {
		t.Fatalf("expected at least 2 dates, got %d", len(dates))
	}
	if dates[0].Day() != 8 {
		t.Fatalf("dates[0].Day() = %d, want 8", dates[0].Day())
	}
	if dates[1].Day() != 11 {
		t.Fatalf("dates[1].Day() = %d, want 11", dates[1].Day())
	}
}

func TestDatesInvalidPeriodicity(t *testing.T) {
	if _, err := Dates(Periodicity("Fortnightly"), date(2024, time.March, 1)); err != ErrInvalidPeriodicity {
		t.Fatalf("expected ErrInvalidPeriodicity, got %v", err)
	}
}

func TestPeriodicityValid(t *testing.T) {
	for _, p := range []Periodicity{PeriodicityOnce, PeriodicityEveryDay, PeriodicityEveryWeek, PeriodicityExceptWeekend} {
		if !p.Valid() {
			t.Fatalf("%q should be valid", p)
		}
	}
	if Periodicity("").Valid() {
		t.Fatal("empty periodicity should be invalid")
	}
}
