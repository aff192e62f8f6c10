package schedule

import (
	"time"

	"github.com/verisclinic/clinic-scheduler/internal/models"
)

type AvailabilityInput struct {
	DoctorID uint
	Date     time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ===============================
// Acciones de dominio
// ===============================

// Complete marca una consulta como atendida y registra el diagnóstico.
func Complete(cons *models.Consultation, diagnosis string, now time.Time) error {
	if err := CanComplete(Status(cons.Status)); err != nil {
		return err
	}

	cons.Status = string(StatusCompleted)
	cons.Diagnosis = diagnosis
	cons.CompletedAt = &now
	return nil
}
