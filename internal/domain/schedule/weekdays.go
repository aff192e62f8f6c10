package schedule

import (
	"strings"
	"time"
)

// Códigos de día tal como se guardan en especialidades: L=lunes ... D=domingo.
const dayCodes = "LMXJVSD"

// WeekdayMask es el subconjunto de días de atención, un bit por día en el
// orden de dayCodes.
type WeekdayMask uint8

func ParseWeekdayMask(s string) WeekdayMask {
	var m WeekdayMask
	for _, r := range strings.ToUpper(strings.TrimSpace(s)) {
		if i := strings.IndexRune(dayCodes, r); i >= 0 {
			m |= 1 << i
		}
	}
	return m
}

func (m WeekdayMask) Empty() bool {
	return m == 0
}

func (m WeekdayMask) Contains(d time.Weekday) bool {
	// time.Weekday arranca en domingo; dayCodes arranca en lunes.
	idx := (int(d) + 6) % 7
	return m&(1<<idx) != 0
}

// Allows aplica la política de máscara vacía: sin días configurados
// significa "sin restricción", no "ningún día".
func (m WeekdayMask) Allows(d time.Weekday) bool {
	return m.Empty() || m.Contains(d)
}

func (m WeekdayMask) String() string {
	var sb strings.Builder
	for i, r := range dayCodes {
		if m&(1<<i) != 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
