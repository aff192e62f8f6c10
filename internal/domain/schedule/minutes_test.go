package schedule

import (
	"testing"
	"time"

	"github.com/verisclinic/clinic-scheduler/internal/httperr"
)

func TestMinutesOfDay_AcceptedFormats(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"08:00", 480},
		{"8:00", 480},
		{"08:00:00", 480},
		{"8:00:30", 480}, // segundos ignorados
		{"17:30", 1050},
		{"0:05", 5},
		{"23:59", 1439},
		{" 09:15 ", 555},
	}

	for _, tc := range cases {
		got, err := MinutesOfDay(tc.in)
		if err != nil {
			t.Errorf("MinutesOfDay(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("MinutesOfDay(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMinutesOfDay_Invalid(t *testing.T) {
	for _, in := range []string{"", "8", "ocho:30", "08:xx", "24:00", "12:60", "-1:00", ":"} {
		if _, err := MinutesOfDay(in); !httperr.IsBusiness(err, "invalid_time_format") {
			t.Errorf("MinutesOfDay(%q): expected invalid_time_format, got %v", in, err)
		}
	}
}

func TestMinutesAt(t *testing.T) {
	at := time.Date(2026, 3, 10, 14, 45, 59, 0, time.UTC)
	if got := MinutesAt(at); got != 885 {
		t.Fatalf("MinutesAt = %d, want 885", got)
	}
}

func TestFormatMinutes_RoundTrip(t *testing.T) {
	for _, min := range []int{0, 5, 480, 1050, 1439} {
		back, err := MinutesOfDay(FormatMinutes(min))
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", min, err)
		}
		if back != min {
			t.Fatalf("round trip of %d yielded %d", min, back)
		}
	}
}
