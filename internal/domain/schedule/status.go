package schedule

import "github.com/verisclinic/clinic-scheduler/internal/httperr"

// ===============================
// Estado de la consulta
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
)

// CanComplete define si una consulta puede registrarse como atendida.
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
