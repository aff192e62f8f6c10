package models

import "time"

type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Número de historia clínica, generado al crear el paciente.
	RecordNumber string `gorm:"size:36;uniqueIndex;not null" json:"record_number"`

	UserID *uint `json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`

	Name      string     `gorm:"size:100;not null" json:"name"`
	Cedula    string     `gorm:"size:10;uniqueIndex;not null" json:"cedula"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date"`
	Phone     string     `gorm:"size:20" json:"phone"`
	Email     string     `gorm:"size:100" json:"email"`
	Address   string     `gorm:"size:255" json:"address"`

	HeightCM *float64 `json:"height_cm"`
	WeightKG *float64 `json:"weight_kg"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
