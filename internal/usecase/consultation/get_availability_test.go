package consultation

import (
	"context"
	"testing"
	"time"

	"github.com/verisclinic/clinic-scheduler/internal/domain/schedule"
	"github.com/verisclinic/clinic-scheduler/internal/httperr"
)

var availNow = time.Date(2026, 3, 10, 9, 45, 0, 0, time.UTC) // martes 09:45

func availInput(date time.Time) schedule.AvailabilityInput {
	return schedule.AvailabilityInput{DoctorID: 7, Date: date}
}

func TestAvailability_FullDay(t *testing.T) {
	m := newMockRepo()
	seedDoctorAndPatient(m)

	tomorrow := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	slots, err := NewGetAvailability(m).Execute(context.Background(), availInput(tomorrow), availNow)
	if err != nil {
		t.Fatal(err)
	}

	if len(slots) != 20 {
		t.Fatalf("expected 20 slots for 08:00-18:00, got %d", len(slots))
	}
	if slots[0].Start != "08:00" || slots[0].End != "08:30" {
		t.Errorf("first slot %s-%s, want 08:00-08:30", slots[0].Start, slots[0].End)
	}
	if slots[19].Start != "17:30" || slots[19].End != "18:00" {
		t.Errorf("last slot %s-%s, want 17:30-18:00", slots[19].Start, slots[19].End)
	}
}

func TestAvailability_BookedSlotExcluded(t *testing.T) {
	m := newMockRepo()
	seedDoctorAndPatient(m)
	m.doctorBusy["2026-03-11"] = []schedule.Interval{{StartMin: 540, EndMin: 570}}

	tomorrow := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	slots, err := NewGetAvailability(m).Execute(context.Background(), availInput(tomorrow), availNow)
	if err != nil {
		t.Fatal(err)
	}

	if len(slots) != 19 {
		t.Fatalf("expected 19 slots, got %d", len(slots))
	}
	starts := make(map[string]bool, len(slots))
	for _, s := range slots {
		starts[s.Start] = true
	}
	if starts["09:00"] {
		t.Error("09:00 must be excluded")
	}
	if !starts["08:30"] || !starts["09:30"] {
		t.Error("adjacent slots 08:30 and 09:30 must remain open")
	}
}

func TestAvailability_TodayCutoff(t *testing.T) {
	m := newMockRepo()
	seedDoctorAndPatient(m)

	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	slots, err := NewGetAvailability(m).Execute(context.Background(), availInput(today), availNow)
	if err != nil {
		t.Fatal(err)
	}

	// A las 09:45 el primer turno vigente es 10:00: quedan 16 de 20.
	if len(slots) != 16 {
		t.Fatalf("expected 16 slots after cutoff, got %d", len(slots))
	}
	if slots[0].Start != "10:00" {
		t.Errorf("first remaining slot %s, want 10:00", slots[0].Start)
	}
}

func TestAvailability_DayNotServed(t *testing.T) {
	m := newMockRepo()
	seedDoctorAndPatient(m)

	sunday := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	slots, err := NewGetAvailability(m).Execute(context.Background(), availInput(sunday), availNow)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots on an unserved day, got %d", len(slots))
	}
}

func TestAvailability_InactiveDoctor(t *testing.T) {
	m := newMockRepo()
	seedDoctorAndPatient(m)
	m.doctors[7].Active = false

	tomorrow := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	slots, err := NewGetAvailability(m).Execute(context.Background(), availInput(tomorrow), availNow)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots for an inactive doctor, got %d", len(slots))
	}
}

func TestAvailability_MisconfiguredWindow(t *testing.T) {
	m := newMockRepo()
	seedDoctorAndPatient(m)
	m.doctors[7].Specialty.WindowEnd = "tarde"

	tomorrow := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	slots, err := NewGetAvailability(m).Execute(context.Background(), availInput(tomorrow), availNow)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots with an unreadable window, got %d", len(slots))
	}
}

func TestAvailability_UnknownDoctor(t *testing.T) {
	m := newMockRepo()

	tomorrow := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	_, err := NewGetAvailability(m).Execute(context.Background(), availInput(tomorrow), availNow)
	if !httperr.IsBusiness(err, "doctor_not_found") {
		t.Fatalf("expected doctor_not_found, got %v", err)
	}
}
