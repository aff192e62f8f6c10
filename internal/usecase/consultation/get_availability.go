package consultation

import (
	"context"
	"time"

	"github.com/verisclinic/clinic-scheduler/internal/domain/schedule"
	"github.com/verisclinic/clinic-scheduler/internal/httperr"
)

type GetAvailability struct {
	repo schedule.Repository
}

func NewGetAvailability(repo schedule.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute devuelve los turnos libres del médico para la fecha. Si la
// fecha es hoy, descarta los turnos cuya hora de inicio ya pasó según
// now (política del borde, no del calculador).
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in schedule.AvailabilityInput,
	now time.Time,
) ([]schedule.TimeSlot, error) {

	doctor, err := uc.repo.GetDoctor(ctx, in.DoctorID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	spec := doctor.Specialty
	if !doctor.Active || !spec.Active {
		return []schedule.TimeSlot{}, nil
	}

	mask := schedule.ParseWeekdayMask(spec.Days)
	if !mask.Allows(in.Date.Weekday()) {
		return []schedule.TimeSlot{}, nil
	}

	// Ventana ilegible se trata como "sin datos", nunca como caída.
	windowStart, err := schedule.MinutesOfDay(spec.WindowStart)
	if err != nil {
		return []schedule.TimeSlot{}, nil
	}
	windowEnd, err := schedule.MinutesOfDay(spec.WindowEnd)
	if err != nil {
		return []schedule.TimeSlot{}, nil
	}

	busy, err := uc.repo.ListDoctorIntervals(ctx, in.DoctorID, in.Date)
	if err != nil {
		return nil, err
	}

	open := schedule.AvailableSlots(windowStart, windowEnd, busy)

	isToday := schedule.DateOnly(in.Date).Equal(schedule.DateOnly(now))
	nowMin := schedule.MinutesAt(now)

	slots := make([]schedule.TimeSlot, 0, len(open))
	for _, start := range open {
		if isToday && start < nowMin {
			continue
		}
		slots = append(slots, schedule.TimeSlot{
			Start: schedule.FormatMinutes(start),
			End:   schedule.FormatMinutes(start + schedule.SlotMinutes),
		})
	}

	return slots, nil
}
