package consultation

import (
	"context"
	"time"

	"github.com/verisclinic/clinic-scheduler/internal/domain/schedule"
	"github.com/verisclinic/clinic-scheduler/internal/dto"
)

type ListByDate struct {
	repo schedule.Repository
}

func NewListByDate(repo schedule.Repository) *ListByDate {
	return &ListByDate{repo: repo}
}

func (uc *ListByDate) Execute(
	ctx context.Context,
	doctorID uint,
	date time.Time,
) ([]dto.ConsultationListDTO, error) {

	rows, err := uc.repo.ListConsultationsForDay(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	return toListDTOs(rows), nil
}
