package schedule

import (
	"slices"
	"time"

	"github.com/verisclinic/clinic-scheduler/internal/httperr"
)

// Booking es el valor que el llamador persiste tras una validación
// exitosa. EndMin siempre es StartMin + SlotMinutes.
type Booking struct {
	DoctorID  uint
	PatientID uint
	Date      time.Time
	StartMin  int
	EndMin    int
}

// BookingRequest es el turno pedido, ya resuelto a identificadores
// validados por el llamador.
type BookingRequest struct {
	DoctorID  uint
	PatientID uint
	Date      time.Time
	StartMin  int
}

// ValidateBooking ejecuta los chequeos secuenciales de una reserva; gana
// el primer fallo y no hay efectos parciales. No hace I/O: los intervalos
// ocupados llegan ya leídos, y el llamador es responsable de leerlos
// frescos justo antes de llamar y de persistir el Booking resultante
// dentro de una transacción.
//
// Fallos, en orden:
//
//	date_out_of_range       fecha fuera de [today, maxDate]
//	day_not_served          día de semana fuera de la máscara (si no está vacía)
//	slot_unavailable        fuera de ventana o tomado por otra consulta del médico
//	patient_double_booking  el paciente ya tiene consulta que se solapa ese día
func ValidateBooking(
	req BookingRequest,
	today time.Time,
	maxDate time.Time,
	mask WeekdayMask,
	windowStart int,
	windowEnd int,
	doctorBusy []Interval,
	patientBusy []Interval,
) (Booking, error) {

	day := DateOnly(req.Date)

	if day.Before(DateOnly(today)) || day.After(DateOnly(maxDate)) {
		return Booking{}, httperr.ErrBusiness("date_out_of_range")
	}

	if !mask.Allows(day.Weekday()) {
		return Booking{}, httperr.ErrBusiness("day_not_served")
	}

	// Fuera de ventana y conflicto con otra consulta del médico se reducen
	// al mismo chequeo: ¿sigue abierto este turno?
	open := AvailableSlots(windowStart, windowEnd, doctorBusy)
	if !slices.Contains(open, req.StartMin) {
		return Booking{}, httperr.ErrBusiness("slot_unavailable")
	}

	requested := Interval{StartMin: req.StartMin, EndMin: req.StartMin + SlotMinutes}
	for _, b := range patientBusy {
		if requested.Overlaps(b) {
			return Booking{}, httperr.ErrBusiness("patient_double_booking")
		}
	}

	return Booking{
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		Date:      day,
		StartMin:  req.StartMin,
		EndMin:    req.StartMin + SlotMinutes,
	}, nil
}
