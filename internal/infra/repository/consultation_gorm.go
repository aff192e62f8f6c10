package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/verisclinic/clinic-scheduler/internal/domain/schedule"
	"github.com/verisclinic/clinic-scheduler/internal/models"
)

type ConsultationGormRepository struct {
	db *gorm.DB
}

func NewConsultationGormRepository(db *gorm.DB) *ConsultationGormRepository {
	return &ConsultationGormRepository{db: db}
}

// --------------------------------------------------
// Doctor / Patient
// --------------------------------------------------

func (r *ConsultationGormRepository) GetDoctor(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doctor models.Doctor
	if err := r.db.WithContext(ctx).
		Preload("Specialty").
		First(&doctor, id).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *ConsultationGormRepository) GetPatient(
	ctx context.Context,
	id uint,
) (*models.Patient, error) {

	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *ConsultationGormRepository) GetPatientByUser(
	ctx context.Context,
	userID uint,
) (*models.Patient, error) {

	var patient models.Patient
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

// --------------------------------------------------
// Intervalos ocupados
// --------------------------------------------------

func intervalsFor(
	tx *gorm.DB,
	column string,
	id uint,
	date time.Time,
	lock bool,
) ([]schedule.Interval, error) {

	q := tx.
		Model(&models.Consultation{}).
		Where(
			column+" = ? AND status = ? AND date = ?",
			id, string(schedule.StatusScheduled), schedule.DateOnly(date),
		).
		Order("start_min ASC")

	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var rows []models.Consultation
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]schedule.Interval, 0, len(rows))
	for _, c := range rows {
		out = append(out, schedule.Interval{StartMin: c.StartMin, EndMin: c.EndMin})
	}
	return out, nil
}

func (r *ConsultationGormRepository) ListDoctorIntervals(
	ctx context.Context,
	doctorID uint,
	date time.Time,
) ([]schedule.Interval, error) {
	return intervalsFor(r.db.WithContext(ctx), "doctor_id", doctorID, date, false)
}

func (r *ConsultationGormRepository) ListPatientIntervals(
	ctx context.Context,
	patientID uint,
	date time.Time,
) ([]schedule.Interval, error) {
	return intervalsFor(r.db.WithContext(ctx), "patient_id", patientID, date, false)
}

// --------------------------------------------------
// Reserva
// --------------------------------------------------

// ReserveConsultation relee los intervalos del médico y del paciente bajo
// SELECT ... FOR UPDATE, revalida y recién ahí inserta, todo en una
// transacción. La restricción de exclusión de postgres queda como última
// defensa si dos transacciones no se vieron entre sí.
func (r *ConsultationGormRepository) ReserveConsultation(
	ctx context.Context,
	booking schedule.Booking,
	revalidate schedule.RevalidateFunc,
) (*models.Consultation, error) {

	var created models.Consultation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		doctorBusy, err := intervalsFor(tx, "doctor_id", booking.DoctorID, booking.Date, true)
		if err != nil {
			return err
		}

		patientBusy, err := intervalsFor(tx, "patient_id", booking.PatientID, booking.Date, true)
		if err != nil {
			return err
		}

		if err := revalidate(doctorBusy, patientBusy); err != nil {
			return err
		}

		cons := models.Consultation{
			DoctorID:  booking.DoctorID,
			PatientID: booking.PatientID,
			Date:      schedule.DateOnly(booking.Date),
			StartMin:  booking.StartMin,
			EndMin:    booking.EndMin,
			Status:    string(schedule.InitialStatus()),
		}

		if err := tx.Create(&cons).Error; err != nil {
			return err
		}

		created = cons
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &created, nil
}

// --------------------------------------------------
// Consulta (cambio de estado)
// --------------------------------------------------

func (r *ConsultationGormRepository) GetConsultationForDoctor(
	ctx context.Context,
	consultationID uint,
	doctorID uint,
) (*models.Consultation, error) {

	var cons models.Consultation
	if err := r.db.WithContext(ctx).
		Where("id = ? AND doctor_id = ?", consultationID, doctorID).
		First(&cons).Error; err != nil {
		return nil, err
	}

	return &cons, nil
}

func (r *ConsultationGormRepository) UpdateConsultation(
	ctx context.Context,
	cons *models.Consultation,
) error {
	return r.db.WithContext(ctx).Save(cons).Error
}

// --------------------------------------------------
// Agenda
// --------------------------------------------------

func (r *ConsultationGormRepository) ListConsultationsForDay(
	ctx context.Context,
	doctorID uint,
	date time.Time,
) ([]models.Consultation, error) {

	var rows []models.Consultation
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("doctor_id = ? AND date = ?", doctorID, schedule.DateOnly(date)).
		Order("start_min ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *ConsultationGormRepository) ListConsultationsForMonth(
	ctx context.Context,
	doctorID uint,
	year int,
	month time.Month,
) ([]models.Consultation, error) {

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	var rows []models.Consultation
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Where(
			"doctor_id = ? AND date >= ? AND date < ?",
			doctorID, first, next,
		).
		Order("date ASC, start_min ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// Compile-time check
var _ schedule.Repository = (*ConsultationGormRepository)(nil)
