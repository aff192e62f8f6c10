package models

import "time"

// Consultation es una reserva confirmada de 30 minutos.
//
// StartMin/EndMin son minutos desde medianoche (EndMin = StartMin + 30);
// todo el cálculo de agenda opera sobre ese dominio entero. La
// restricción de exclusión en postgres (ver internal/db) impide que dos
// consultas agendadas del mismo médico se solapen en la misma fecha.
type Consultation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DoctorID uint   `json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor"`

	PatientID uint    `json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	Date     time.Time `gorm:"type:date" json:"date"`
	StartMin int       `json:"start_min"`
	EndMin   int       `json:"end_min"`

	Status    string `gorm:"size:20;default:'scheduled'" json:"status"`
	Diagnosis string `gorm:"type:text" json:"diagnosis"`

	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
