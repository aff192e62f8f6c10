package schedule

import (
	"context"
	"time"

	"github.com/verisclinic/clinic-scheduler/internal/models"
)

// RevalidateFunc corre dentro de la transacción de reserva, con los
// intervalos ocupados releídos bajo lock. Si devuelve error, no se
// inserta nada.
type RevalidateFunc func(doctorBusy, patientBusy []Interval) error

type Repository interface {
	// -------- Doctor / Patient --------
	GetDoctor(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	GetPatient(
		ctx context.Context,
		id uint,
	) (*models.Patient, error)

	GetPatientByUser(
		ctx context.Context,
		userID uint,
	) (*models.Patient, error)

	// -------- Intervalos ocupados --------
	ListDoctorIntervals(
		ctx context.Context,
		doctorID uint,
		date time.Time,
	) ([]Interval, error)

	ListPatientIntervals(
		ctx context.Context,
		patientID uint,
		date time.Time,
	) ([]Interval, error)

	// -------- Reserva (transaccional) --------
	ReserveConsultation(
		ctx context.Context,
		booking Booking,
		revalidate RevalidateFunc,
	) (*models.Consultation, error)

	// -------- Consulta (cambio de estado) --------
	GetConsultationForDoctor(
		ctx context.Context,
		consultationID uint,
		doctorID uint,
	) (*models.Consultation, error)

	UpdateConsultation(
		ctx context.Context,
		cons *models.Consultation,
	) error

	// -------- Agenda --------
	ListConsultationsForDay(
		ctx context.Context,
		doctorID uint,
		date time.Time,
	) ([]models.Consultation, error)

	ListConsultationsForMonth(
		ctx context.Context,
		doctorID uint,
		year int,
		month time.Month,
	) ([]models.Consultation, error)
}
