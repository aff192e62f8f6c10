package consultation

import (
	"context"
	"testing"
	"time"

	"github.com/verisclinic/clinic-scheduler/internal/domain/schedule"
	"github.com/verisclinic/clinic-scheduler/internal/httperr"
)

func scheduleOne(t *testing.T, m *mockRepo) uint {
	t.Helper()
	cons, err := newReserveUC(m).Execute(context.Background(), reserveInput())
	if err != nil {
		t.Fatal(err)
	}
	return cons.ID
}

func TestComplete_Success(t *testing.T) {
	m := newMockRepo()
	seedDoctorAndPatient(m)
	id := scheduleOne(t, m)

	now := rsvNow.Add(26 * time.Hour)
	cons, err := NewCompleteConsultation(m, nil).Execute(context.Background(), 7, id, "Hipertensión leve", now)
	if err != nil {
		t.Fatal(err)
	}

	if cons.Status != string(schedule.StatusCompleted) {
		t.Errorf("status %q, want completed", cons.Status)
	}
	if cons.Diagnosis != "Hipertensión leve" {
		t.Errorf("diagnosis %q not recorded", cons.Diagnosis)
	}
	if cons.CompletedAt == nil || !cons.CompletedAt.Equal(now) {
		t.Error("completed_at not set")
	}

	stored, err := m.GetConsultationForDoctor(context.Background(), id, 7)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Status != string(schedule.StatusCompleted) {
		t.Error("update was not persisted")
	}
}

func TestComplete_Twice(t *testing.T) {
	m := newMockRepo()
	seedDoctorAndPatient(m)
	id := scheduleOne(t, m)

	uc := NewCompleteConsultation(m, nil)
	if _, err := uc.Execute(context.Background(), 7, id, "Control", rsvNow); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Execute(context.Background(), 7, id, "Control", rsvNow); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state on the second completion, got %v", err)
	}
}

func TestComplete_WrongDoctor(t *testing.T) {
	m := newMockRepo()
	seedDoctorAndPatient(m)
	id := scheduleOne(t, m)

	_, err := NewCompleteConsultation(m, nil).Execute(context.Background(), 8, id, "Control", rsvNow)
	if !httperr.IsBusiness(err, "consultation_not_found") {
		t.Fatalf("expected consultation_not_found, got %v", err)
	}
}
