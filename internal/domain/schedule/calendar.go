package schedule

import "time"

// MaxBookableDate es el tope duro del sistema: no se agendan consultas
// posteriores a esta fecha.
var MaxBookableDate = time.Date(2030, time.December, 31, 0, 0, 0, 0, time.UTC)

// DateOnly trunca a medianoche conservando la zona.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ISODate es el formato de clave del calendario mensual.
const ISODate = "2006-01-02"

// BusyLookup entrega los intervalos ocupados de un médico para una fecha.
type BusyLookup func(date time.Time) ([]Interval, error)

// MonthAvailability calcula, por cada día del mes dentro de
// [today, maxDate] cuyo día de semana pasa la máscara, cuántos turnos
// libres quedan. Días fuera de rango, filtrados por máscara o con cero
// turnos simplemente no aparecen en el mapa.
func MonthAvailability(
	year int,
	month time.Month,
	today time.Time,
	maxDate time.Time,
	mask WeekdayMask,
	windowStart int,
	windowEnd int,
	busyFor BusyLookup,
) (map[string]int, error) {

	counts := make(map[string]int)

	floor := DateOnly(today)
	ceil := DateOnly(maxDate)

	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		if day.Before(floor) || day.After(ceil) {
			continue
		}
		if !mask.Allows(day.Weekday()) {
			continue
		}

		busy, err := busyFor(day)
		if err != nil {
			return nil, err
		}

		if n := len(AvailableSlots(windowStart, windowEnd, busy)); n > 0 {
			counts[day.Format(ISODate)] = n
		}
	}

	return counts, nil
}
