package models

import "time"

type Prescription struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Folio imprimible de la receta.
	Folio string `gorm:"size:36;uniqueIndex;not null" json:"folio"`

	ConsultationID uint         `json:"consultation_id"`
	Consultation   Consultation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"consultation"`

	Notes string `gorm:"size:255" json:"notes"`

	Items []PrescriptionItem `json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PrescriptionItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PrescriptionID uint `json:"prescription_id"`

	MedicationID uint       `json:"medication_id"`
	Medication   Medication `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"medication"`

	Dosage       string `gorm:"size:100" json:"dosage"`
	Frequency    string `gorm:"size:100" json:"frequency"`
	DurationDays int    `json:"duration_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
