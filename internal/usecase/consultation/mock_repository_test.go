package consultation

import (
	"context"
	"fmt"
	"time"

	"github.com/verisclinic/clinic-scheduler/internal/domain/schedule"
	"github.com/verisclinic/clinic-scheduler/internal/models"
)

// -- Mock Repository --

type mockRepo struct {
	doctors  map[uint]*models.Doctor
	patients map[uint]*models.Patient

	// intervalos ocupados por fecha ISO
	doctorBusy  map[string][]schedule.Interval
	patientBusy map[string][]schedule.Interval

	reserveErr error
	created    []models.Consultation
	nextID     uint
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		doctors:     make(map[uint]*models.Doctor),
		patients:    make(map[uint]*models.Patient),
		doctorBusy:  make(map[string][]schedule.Interval),
		patientBusy: make(map[string][]schedule.Interval),
		nextID:      1,
	}
}

func (m *mockRepo) GetDoctor(_ context.Context, id uint) (*models.Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return d, nil
}

func (m *mockRepo) GetPatient(_ context.Context, id uint) (*models.Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (m *mockRepo) GetPatientByUser(_ context.Context, userID uint) (*models.Patient, error) {
	for _, p := range m.patients {
		if p.UserID != nil && *p.UserID == userID {
			return p, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockRepo) ListDoctorIntervals(_ context.Context, _ uint, date time.Time) ([]schedule.Interval, error) {
	return m.doctorBusy[date.Format(schedule.ISODate)], nil
}

func (m *mockRepo) ListPatientIntervals(_ context.Context, _ uint, date time.Time) ([]schedule.Interval, error) {
	return m.patientBusy[date.Format(schedule.ISODate)], nil
}

func (m *mockRepo) ReserveConsultation(
	_ context.Context,
	booking schedule.Booking,
	revalidate schedule.RevalidateFunc,
) (*models.Consultation, error) {

	if m.reserveErr != nil {
		return nil, m.reserveErr
	}

	key := booking.Date.Format(schedule.ISODate)
	if err := revalidate(m.doctorBusy[key], m.patientBusy[key]); err != nil {
		return nil, err
	}

	cons := models.Consultation{
		ID:        m.nextID,
		DoctorID:  booking.DoctorID,
		PatientID: booking.PatientID,
		Date:      booking.Date,
		StartMin:  booking.StartMin,
		EndMin:    booking.EndMin,
		Status:    string(schedule.InitialStatus()),
	}
	m.nextID++
	m.created = append(m.created, cons)

	return &cons, nil
}

func (m *mockRepo) GetConsultationForDoctor(_ context.Context, consultationID, doctorID uint) (*models.Consultation, error) {
	for i := range m.created {
		if m.created[i].ID == consultationID && m.created[i].DoctorID == doctorID {
			return &m.created[i], nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockRepo) UpdateConsultation(_ context.Context, cons *models.Consultation) error {
	for i := range m.created {
		if m.created[i].ID == cons.ID {
			m.created[i] = *cons
			return nil
		}
	}
	return fmt.Errorf("not found")
}

func (m *mockRepo) ListConsultationsForDay(_ context.Context, doctorID uint, date time.Time) ([]models.Consultation, error) {
	var out []models.Consultation
	for _, c := range m.created {
		if c.DoctorID == doctorID && c.Date.Equal(schedule.DateOnly(date)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockRepo) ListConsultationsForMonth(_ context.Context, doctorID uint, year int, month time.Month) ([]models.Consultation, error) {
	var out []models.Consultation
	for _, c := range m.created {
		if c.DoctorID == doctorID && c.Date.Year() == year && c.Date.Month() == month {
			out = append(out, c)
		}
	}
	return out, nil
}

var _ schedule.Repository = (*mockRepo)(nil)

// -- Fixtures --

func seedDoctorAndPatient(m *mockRepo) {
	m.doctors[7] = &models.Doctor{
		ID:     7,
		Name:   "Dra. Salazar",
		Active: true,
		Specialty: models.Specialty{
			ID:          3,
			Description: "Cardiología",
			Days:        "LMXJV",
			WindowStart: "08:00",
			WindowEnd:   "18:00",
			Active:      true,
		},
	}
	m.patients[21] = &models.Patient{ID: 21, Name: "Carlos Mena"}
}
