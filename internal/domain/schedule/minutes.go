package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/verisclinic/clinic-scheduler/internal/httperr"
)

// MinutesOfDay normaliza una hora "H:MM", "HH:MM", "H:MM:SS" o "HH:MM:SS"
// a minutos desde medianoche. Los segundos se ignoran. Es la única puerta
// de entrada del dominio entero: toda hora que llega de configuración o
// de un request pasa por aquí una sola vez.
func MinutesOfDay(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return 0, httperr.ErrBusiness("invalid_time_format")
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_time_format")
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_time_format")
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, httperr.ErrBusiness("invalid_time_format")
	}

	return h*60 + m, nil
}

// MinutesAt es la variante para valores ya estructurados.
func MinutesAt(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// FormatMinutes es la inversa de MinutesOfDay ("HH:MM"), usada para
// normalizar antes de persistir.
func FormatMinutes(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
