package handlers

import (
	"time"

	"github.com/verisclinic/clinic-scheduler/internal/config"
	"github.com/verisclinic/clinic-scheduler/internal/timezone"
)

// --------------------------------------------------
// Reloj y fechas en la zona horaria de la clínica
// --------------------------------------------------

func clinicLocation(cfg *config.Config) *time.Location {
	return timezone.Location(cfg.Timezone)
}

func nowInClinic(cfg *config.Config) time.Time {
	return timezone.NowIn(cfg.Timezone)
}

func parseClinicDate(cfg *config.Config, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		clinicLocation(cfg),
	)
}
