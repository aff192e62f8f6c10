package consultation

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/verisclinic/clinic-scheduler/internal/domain/schedule"
	"github.com/verisclinic/clinic-scheduler/internal/httperr"
)

var rsvNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) // martes

func reserveInput() ReserveInput {
	return ReserveInput{
		DoctorID:  7,
		PatientID: 21,
		Date:      time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		StartMin:  540,
		Now:       rsvNow,
	}
}

func newReserveUC(m *mockRepo) *ReserveConsultation {
	return NewReserveConsultation(m, nil, nil)
}

func TestReserve_Success(t *testing.T) {
	m := newMockRepo()
	seedDoctorAndPatient(m)

	cons, err := newReserveUC(m).Execute(context.Background(), reserveInput())
	if err != nil {
		t.Fatal(err)
	}

	if cons.EndMin != 570 {
		t.Errorf("end_min %d, want 570", cons.EndMin)
	}
	if cons.Status != string(schedule.StatusScheduled) {
		t.Errorf("status %q, want scheduled", cons.Status)
	}
	if len(m.created) != 1 {
		t.Fatalf("expected one persisted consultation, got %d", len(m.created))
	}
}

func TestReserve_DoctorTaken(t *testing.T) {
	m := newMockRepo()
	seedDoctorAndPatient(m)
	m.doctorBusy["2026-03-11"] = []schedule.Interval{{StartMin: 540, EndMin: 570}}

	_, err := newReserveUC(m).Execute(context.Background(), reserveInput())
	if !httperr.IsBusiness(err, "slot_unavailable") {
		t.Fatalf("expected slot_unavailable, got %v", err)
	}
	if len(m.created) != 0 {
		t.Fatal("nothing must be persisted on failure")
	}
}

func TestReserve_PatientDoubleBooking(t *testing.T) {
	m := newMockRepo()
	seedDoctorAndPatient(m)
	// Mismo horario con otro médico: el lado del doctor pasa, el del paciente no.
	m.patientBusy["2026-03-11"] = []schedule.Interval{{StartMin: 540, EndMin: 570}}

	_, err := newReserveUC(m).Execute(context.Background(), reserveInput())
	if !httperr.IsBusiness(err, "patient_double_booking") {
		t.Fatalf("expected patient_double_booking, got %v", err)
	}
}

func TestReserve_DayNotServed(t *testing.T) {
	m := newMockRepo()
	seedDoctorAndPatient(m)

	in := reserveInput()
	in.Date = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC) // domingo

	_, err := newReserveUC(m).Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "day_not_served") {
		t.Fatalf("expected day_not_served, got %v", err)
	}
}

func TestReserve_DateOutOfRange(t *testing.T) {
	m := newMockRepo()
	seedDoctorAndPatient(m)

	in := reserveInput()
	in.Date = rsvNow.AddDate(0, 0, -1)
	if _, err := newReserveUC(m).Execute(context.Background(), in); !httperr.IsBusiness(err, "date_out_of_range") {
		t.Fatalf("expected date_out_of_range for yesterday, got %v", err)
	}

	in = reserveInput()
	in.Date = schedule.MaxBookableDate.AddDate(0, 0, 1)
	if _, err := newReserveUC(m).Execute(context.Background(), in); !httperr.IsBusiness(err, "date_out_of_range") {
		t.Fatalf("expected date_out_of_range beyond max, got %v", err)
	}
}

func TestReserve_TodayPastSlot(t *testing.T) {
	m := newMockRepo()
	seedDoctorAndPatient(m)

	in := reserveInput()
	in.Date = rsvNow          // hoy
	in.StartMin = 510         // 08:30, ya pasó a las 09:00
	_, err := newReserveUC(m).Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "slot_unavailable") {
		t.Fatalf("expected slot_unavailable for a past slot today, got %v", err)
	}
}

func TestReserve_MisconfiguredWindow(t *testing.T) {
	m := newMockRepo()
	seedDoctorAndPatient(m)
	m.doctors[7].Specialty.WindowStart = "ocho"

	_, err := newReserveUC(m).Execute(context.Background(), reserveInput())
	if !httperr.IsBusiness(err, "invalid_time_format") {
		t.Fatalf("expected invalid_time_format, got %v", err)
	}
}

func TestReserve_StorageConflictMapsToSlotConflict(t *testing.T) {
	m := newMockRepo()
	seedDoctorAndPatient(m)
	// El insert perdedor contra la restricción de exclusión de postgres.
	m.reserveErr = &pgconn.PgError{Code: "23P01"}

	_, err := newReserveUC(m).Execute(context.Background(), reserveInput())
	if !httperr.IsBusiness(err, "slot_conflict") {
		t.Fatalf("expected slot_conflict, got %v", err)
	}
}

func TestReserve_UnknownDoctorOrPatient(t *testing.T) {
	m := newMockRepo()
	seedDoctorAndPatient(m)

	in := reserveInput()
	in.DoctorID = 99
	if _, err := newReserveUC(m).Execute(context.Background(), in); !httperr.IsBusiness(err, "doctor_not_found") {
		t.Fatalf("expected doctor_not_found, got %v", err)
	}

	in = reserveInput()
	in.PatientID = 99
	if _, err := newReserveUC(m).Execute(context.Background(), in); !httperr.IsBusiness(err, "patient_not_found") {
		t.Fatalf("expected patient_not_found, got %v", err)
	}
}
