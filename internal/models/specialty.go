package models

import "time"

// Specialty define la ventana semanal de atención de una especialidad.
//
// Days guarda los códigos de día en orden canónico (L M X J V S D).
// WindowStart/WindowEnd se persisten siempre como "HH:MM"; la
// normalización ocurre al guardar, nunca al leer.
type Specialty struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Description string `gorm:"size:100;not null" json:"description"`

	Days        string `gorm:"size:7" json:"days"`
	WindowStart string `gorm:"size:5" json:"window_start"`
	WindowEnd   string `gorm:"size:5" json:"window_end"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
