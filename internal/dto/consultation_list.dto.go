package dto

import "time"

type ConsultationListDTO struct {
	ID          uint      `json:"id"`
	Date        time.Time `json:"date"`
	Start       string    `json:"start"`
	End         string    `json:"end"`
	Status      string    `json:"status"`
	PatientName string    `json:"patient_name"`
	Diagnosis   string    `json:"diagnosis,omitempty"`
}
