package schedule

import "iter"

// SlotMinutes es la duración fija de toda consulta.
const SlotMinutes = 30

// Interval es un rango semiabierto [StartMin, EndMin) en minutos desde
// medianoche.
type Interval struct {
	StartMin int `json:"start_min"`
	EndMin   int `json:"end_min"`
}

// Overlaps usa solape estricto: intervalos que solo se tocan en un
// extremo NO se solapan, así dos turnos consecutivos son reservables de
// forma independiente.
func (a Interval) Overlaps(b Interval) bool {
	return a.StartMin < b.EndMin && a.EndMin > b.StartMin
}

// Tile recorre [startMin, endMin) en pasos de 30 minutos. Un turno final
// incompleto se descarta, nunca se recorta. Ventana vacía o invertida
// produce secuencia vacía; no es un error, es una configuración sin
// turnos.
func Tile(startMin, endMin int) iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		for cur := startMin; cur+SlotMinutes <= endMin; cur += SlotMinutes {
			if !yield(Interval{StartMin: cur, EndMin: cur + SlotMinutes}) {
				return
			}
		}
	}
}

// AvailableSlots devuelve los inicios de turno de la ventana que no se
// solapan con ningún intervalo ocupado, en orden ascendente. El corte de
// "hoy ya pasó esta hora" es política del llamador: "ahora" es un insumo
// del entorno, no un invariante de agenda.
func AvailableSlots(windowStart, windowEnd int, busy []Interval) []int {
	var open []int

	for slot := range Tile(windowStart, windowEnd) {
		conflict := false
		for _, b := range busy {
			if slot.Overlaps(b) {
				conflict = true
				break
			}
		}
		if !conflict {
			open = append(open, slot.StartMin)
		}
	}

	return open
}
