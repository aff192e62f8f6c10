package consultation

import (
	"context"
	"time"

	"github.com/verisclinic/clinic-scheduler/internal/audit"
	"github.com/verisclinic/clinic-scheduler/internal/domain/schedule"
	"github.com/verisclinic/clinic-scheduler/internal/httperr"
	"github.com/verisclinic/clinic-scheduler/internal/models"
)

type CompleteConsultation struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewCompleteConsultation(
	repo schedule.Repository,
	auditDispatcher *audit.Dispatcher,
) *CompleteConsultation {
	return &CompleteConsultation{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *CompleteConsultation) Execute(
	ctx context.Context,
	doctorID uint,
	consultationID uint,
	diagnosis string,
	now time.Time,
) (*models.Consultation, error) {

	cons, err := uc.repo.GetConsultationForDoctor(ctx, consultationID, doctorID)
	if err != nil {
		return nil, httperr.ErrBusiness("consultation_not_found")
	}

	if err := schedule.Complete(cons, diagnosis, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateConsultation(ctx, cons); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &doctorID,
		Action:   "consultation_completed",
		Entity:   "consultation",
		EntityID: &cons.ID,
	})

	return cons, nil
}
