package consultation

import (
	"context"
	"time"

	"github.com/verisclinic/clinic-scheduler/internal/domain/schedule"
	"github.com/verisclinic/clinic-scheduler/internal/dto"
	"github.com/verisclinic/clinic-scheduler/internal/models"
)

type ListByMonth struct {
	repo schedule.Repository
}

func NewListByMonth(repo schedule.Repository) *ListByMonth {
	return &ListByMonth{repo: repo}
}

func (uc *ListByMonth) Execute(
	ctx context.Context,
	doctorID uint,
	year int,
	month time.Month,
) ([]dto.ConsultationListDTO, error) {

	rows, err := uc.repo.ListConsultationsForMonth(ctx, doctorID, year, month)
	if err != nil {
		return nil, err
	}

	return toListDTOs(rows), nil
}

func toListDTOs(rows []models.Consultation) []dto.ConsultationListDTO {
	out := make([]dto.ConsultationListDTO, 0, len(rows))
	for _, c := range rows {
		out = append(out, dto.ConsultationListDTO{
			ID:          c.ID,
			Date:        c.Date,
			Start:       schedule.FormatMinutes(c.StartMin),
			End:         schedule.FormatMinutes(c.EndMin),
			Status:      c.Status,
			PatientName: c.Patient.Name,
			Diagnosis:   c.Diagnosis,
		})
	}
	return out
}
