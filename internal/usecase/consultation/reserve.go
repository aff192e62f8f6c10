package consultation

import (
	"context"
	"time"

	"github.com/verisclinic/clinic-scheduler/internal/audit"
	"github.com/verisclinic/clinic-scheduler/internal/cache"
	"github.com/verisclinic/clinic-scheduler/internal/domain/schedule"
	"github.com/verisclinic/clinic-scheduler/internal/httperr"
	"github.com/verisclinic/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ReserveInput struct {
	DoctorID  uint
	PatientID uint

	Date     time.Time
	StartMin int

	// Reloj del entorno, resuelto por el handler en la zona de la clínica.
	Now time.Time

	RequestedBy uint
	RequestID   string
}

// ======================================================
// USE CASE
// ======================================================

type ReserveConsultation struct {
	repo  schedule.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewReserveConsultation(
	repo schedule.Repository,
	availCache *cache.AvailabilityCache,
	auditDispatcher *audit.Dispatcher,
) *ReserveConsultation {
	return &ReserveConsultation{
		repo:  repo,
		cache: availCache,
		audit: auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ReserveConsultation) Execute(
	ctx context.Context,
	in ReserveInput,
) (*models.Consultation, error) {

	// --------------------------------------------------
	// 1. Médico + especialidad
	// --------------------------------------------------
	doctor, err := uc.repo.GetDoctor(ctx, in.DoctorID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}
	if !doctor.Active {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	// --------------------------------------------------
	// 2. Paciente
	// --------------------------------------------------
	if _, err := uc.repo.GetPatient(ctx, in.PatientID); err != nil {
		return nil, httperr.ErrBusiness("patient_not_found")
	}

	// --------------------------------------------------
	// 3. Ventana y días de la especialidad
	// --------------------------------------------------
	spec := doctor.Specialty

	windowStart, err := schedule.MinutesOfDay(spec.WindowStart)
	if err != nil {
		return nil, err
	}
	windowEnd, err := schedule.MinutesOfDay(spec.WindowEnd)
	if err != nil {
		return nil, err
	}

	mask := schedule.ParseWeekdayMask(spec.Days)

	// --------------------------------------------------
	// 4. Hoy no se reserva hacia atrás
	// --------------------------------------------------
	if schedule.DateOnly(in.Date).Equal(schedule.DateOnly(in.Now)) &&
		in.StartMin < schedule.MinutesAt(in.Now) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	// --------------------------------------------------
	// 5. Reserva transaccional: relectura bajo lock + revalidación + insert
	// --------------------------------------------------
	req := schedule.BookingRequest{
		DoctorID:  in.DoctorID,
		PatientID: in.PatientID,
		Date:      in.Date,
		StartMin:  in.StartMin,
	}

	booking := schedule.Booking{
		DoctorID:  in.DoctorID,
		PatientID: in.PatientID,
		Date:      schedule.DateOnly(in.Date),
		StartMin:  in.StartMin,
		EndMin:    in.StartMin + schedule.SlotMinutes,
	}

	created, err := uc.repo.ReserveConsultation(
		ctx,
		booking,
		func(doctorBusy, patientBusy []schedule.Interval) error {
			_, err := schedule.ValidateBooking(
				req,
				in.Now,
				schedule.MaxBookableDate,
				mask,
				windowStart,
				windowEnd,
				doctorBusy,
				patientBusy,
			)
			return err
		},
	)
	if err != nil {
		if httperr.IsExclusionConflict(err) {
			// Perdimos la carrera contra otro insert ya confirmado.
			return nil, httperr.ErrBusiness("slot_conflict")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 6. Caché y auditoría
	// --------------------------------------------------
	uc.cache.InvalidateMonth(ctx, in.DoctorID, created.Date.Year(), created.Date.Month())

	uc.audit.Dispatch(audit.Event{
		RequestID: in.RequestID,
		UserID:    &in.RequestedBy,
		Action:    "consultation_scheduled",
		Entity:    "consultation",
		EntityID:  &created.ID,
	})

	return created, nil
}
