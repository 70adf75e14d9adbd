package scheduling

import (
	"testing"
	"time"
)

func TestSlotsExactFit(t *testing.T) {
	day := date(2024, time.March, 1)

	slots, err := Slots(day, NewTimeOfDay(9, 0, 0), NewTimeOfDay(10, 0, 0), 30)
	if err != nil {
		t.Fatalf("Slots returned error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if got := slots[0].Time.String(); got != "09:00:00" {
		t.Fatalf("slots[0] = %s, want 09:00:00", got)
	}
	if got := slots[1].Time.String(); got != "09:30:00" {
		t.Fatalf("slots[1] = %s, want 09:30:00", got)
	}
}

func TestSlotsPartialTrailingSlot(t *testing.T) {
	// 50 minutes of window with 20-minute visits: 09:00, 09:20, 09:40.
	slots, err := Slots(date(2024, time.March, 1), NewTimeOfDay(9, 0, 0), NewTimeOfDay(9, 50, 0), 20)
	if err != nil {
		t.Fatalf("Slots returned error: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}
}

func TestSlotsProperties(t *testing.T) {
	from := NewTimeOfDay(8, 30, 0)
	to := NewTimeOfDay(12, 0, 0)
	duration := 25

	slots, err := Slots(date(2024, time.March, 4), from, to, duration)
	if err != nil {
		t.Fatalf("Slots returned error: %v", err)
	}
	if slots[0].Time != from {
		t.Fatalf("first slot = %s, want %s", slots[0].Time, from)
	}
	if last := slots[len(slots)-1].Time; !last.Before(to) {
		t.Fatalf("last slot %s must be before %s", last, to)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].Time != slots[i-1].Time.AddMinutes(duration) {
			t.Fatalf("slots %d and %d are not %d minutes apart", i-1, i, duration)
		}
	}
	// ceil((12:00 - 08:30) / 25m) = ceil(210/25) = 9
	if len(slots) != 9 {
		t.Fatalf("expected 9 slots, got %d", len(slots))
	}
}

func TestSlotsInvalidInput(t *testing.T) {
	day := date(2024, time.March, 1)

	if _, err := Slots(day, NewTimeOfDay(9, 0, 0), NewTimeOfDay(10, 0, 0), 0); err != ErrInvalidDuration {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
	if _, err := Slots(day, NewTimeOfDay(9, 0, 0), NewTimeOfDay(10, 0, 0), -15); err != ErrInvalidDuration {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
	if _, err := Slots(day, NewTimeOfDay(10, 0, 0), NewTimeOfDay(10, 0, 0), 30); err != ErrInvalidTimeRange {
		t.Fatalf("expected ErrInvalidTimeRange for empty range, got %v", err)
	}
	if _, err := Slots(day, NewTimeOfDay(11, 0, 0), NewTimeOfDay(10, 0, 0), 30); err != ErrInvalidTimeRange {
		t.Fatalf("expected ErrInvalidTimeRange for inverted range, got %v", err)
	}
}

func TestTimeOfDayParseAndFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"09:00:00", "09:00:00"},
		{"09:00", "09:00:00"},
		{"23:59:59", "23:59:59"},
		{"00:05", "00:05:00"},
	}
	for _, c := range cases {
		got, err := ParseTimeOfDay(c.in)
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q) returned error: %v", c.in, err)
		}
		if got.String() != c.want {
			t.Fatalf("ParseTimeOfDay(%q) = %s, want %s", c.in, got, c.want)
		}
	}

	if _, err := ParseTimeOfDay("25:00"); err == nil {
		t.Fatal("expected error for out-of-range hour")
	}
	if _, err := ParseTimeOfDay("jam"); err == nil {
		t.Fatal("expected error for garbage input")
	}
}

func TestTimeOfDayOrderingAndArithmetic(t *testing.T) {
	a := NewTimeOfDay(9, 0, 0)
	b := NewTimeOfDay(9, 30, 0)

	if !a.Before(b) || b.Before(a) {
		t.Fatal("ordering broken")
	}
	if a.AddMinutes(30) != b {
		t.Fatalf("09:00 + 30m = %s, want %s", a.AddMinutes(30), b)
	}
	if a.Hour() != 9 || a.Minute() != 0 || a.Second() != 0 {
		t.Fatal("component accessors broken")
	}
}
