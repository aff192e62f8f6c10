package schedule

import (
	"testing"
	"time"
)

func noBusy(time.Time) ([]Interval, error) { return nil, nil }

func TestMonthAvailability_WeekdayFilterAndRange(t *testing.T) {
	// Marzo 2026: el 1 es domingo. Hoy 10 de marzo (martes).
	today := time.Date(2026, 3, 10, 11, 30, 0, 0, time.UTC)
	maxDate := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	mask := ParseWeekdayMask("LMXJV")

	counts, err := MonthAvailability(2026, time.March, today, maxDate, mask, 480, 1080, noBusy)
	if err != nil {
		t.Fatal(err)
	}

	// 10..20 de marzo, solo lunes a viernes: 10,11,12,13,16,17,18,19,20
	if len(counts) != 9 {
		t.Fatalf("expected 9 days, got %d: %v", len(counts), counts)
	}
	for day, n := range counts {
		if n != 20 {
			t.Errorf("day %s has %d slots, want 20", day, n)
		}
	}
	for _, absent := range []string{"2026-03-09", "2026-03-14", "2026-03-15", "2026-03-21"} {
		if _, ok := counts[absent]; ok {
			t.Errorf("day %s must be absent (past, weekend or beyond max)", absent)
		}
	}
}

func TestMonthAvailability_EmptyMaskCoversAllDays(t *testing.T) {
	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	maxDate := MaxBookableDate

	counts, err := MonthAvailability(2026, time.March, today, maxDate, 0, 480, 540, noBusy)
	if err != nil {
		t.Fatal(err)
	}

	if len(counts) != 31 {
		t.Fatalf("empty mask should cover all 31 days, got %d", len(counts))
	}
}

func TestMonthAvailability_FullyBookedDayAbsent(t *testing.T) {
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	busyFor := func(date time.Time) ([]Interval, error) {
		if date.Format(ISODate) == "2026-03-03" {
			return []Interval{{StartMin: 480, EndMin: 1080}}, nil
		}
		return nil, nil
	}

	counts, err := MonthAvailability(2026, time.March, today, MaxBookableDate, 0, 480, 1080, busyFor)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := counts["2026-03-03"]; ok {
		t.Fatal("a fully booked day must not appear with a zero count")
	}
	if counts["2026-03-04"] != 20 {
		t.Fatalf("2026-03-04 should have 20 slots, got %d", counts["2026-03-04"])
	}
}

func TestMonthAvailability_MonthBeyondMaxDateIsEmpty(t *testing.T) {
	today := time.Date(2030, 12, 1, 0, 0, 0, 0, time.UTC)

	counts, err := MonthAvailability(2031, time.January, today, MaxBookableDate, 0, 480, 1080, noBusy)
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != 0 {
		t.Fatalf("no day after 2030-12-31 is bookable, got %v", counts)
	}
}
