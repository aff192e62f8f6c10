package consultation

import (
	"context"
	"time"

	"github.com/verisclinic/clinic-scheduler/internal/cache"
	"github.com/verisclinic/clinic-scheduler/internal/domain/schedule"
	"github.com/verisclinic/clinic-scheduler/internal/httperr"
)

type MonthAvailability struct {
	repo  schedule.Repository
	cache *cache.AvailabilityCache
}

func NewMonthAvailability(
	repo schedule.Repository,
	availCache *cache.AvailabilityCache,
) *MonthAvailability {
	return &MonthAvailability{
		repo:  repo,
		cache: availCache,
	}
}

// Execute arma el calendario del mes: fecha ISO -> turnos libres, solo
// para días alcanzables. El resultado se cachea por médico y mes.
func (uc *MonthAvailability) Execute(
	ctx context.Context,
	doctorID uint,
	year int,
	month time.Month,
	now time.Time,
) (map[string]int, error) {

	if counts, ok := uc.cache.GetMonth(ctx, doctorID, year, month); ok {
		return counts, nil
	}

	doctor, err := uc.repo.GetDoctor(ctx, doctorID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	spec := doctor.Specialty
	if !doctor.Active || !spec.Active {
		return map[string]int{}, nil
	}

	windowStart, err := schedule.MinutesOfDay(spec.WindowStart)
	if err != nil {
		return map[string]int{}, nil
	}
	windowEnd, err := schedule.MinutesOfDay(spec.WindowEnd)
	if err != nil {
		return map[string]int{}, nil
	}

	mask := schedule.ParseWeekdayMask(spec.Days)

	counts, err := schedule.MonthAvailability(
		year,
		month,
		now,
		schedule.MaxBookableDate,
		mask,
		windowStart,
		windowEnd,
		func(date time.Time) ([]schedule.Interval, error) {
			return uc.repo.ListDoctorIntervals(ctx, doctorID, date)
		},
	)
	if err != nil {
		return nil, err
	}

	uc.cache.SetMonth(ctx, doctorID, year, month, counts)

	return counts, nil
}
