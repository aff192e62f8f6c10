package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/verisclinic/clinic-scheduler/internal/audit"
	"github.com/verisclinic/clinic-scheduler/internal/domain/schedule"
	"github.com/verisclinic/clinic-scheduler/internal/httperr"
	"github.com/verisclinic/clinic-scheduler/internal/middleware"
	"github.com/verisclinic/clinic-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type PrescriptionHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewPrescriptionHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *PrescriptionHandler {
	return &PrescriptionHandler{db: db, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type PrescriptionItemRequest struct {
	MedicationID uint   `json:"medication_id" binding:"required"`
	Dosage       string `json:"dosage" binding:"required"`
	Frequency    string `json:"frequency" binding:"required"`
	DurationDays int    `json:"duration_days" binding:"required,min=1"`
}

type CreatePrescriptionRequest struct {
	ConsultationID uint                      `json:"consultation_id" binding:"required"`
	Notes          string                    `json:"notes"`
	Items          []PrescriptionItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ======================================================
// CREATE
// ======================================================

// Create emite la receta de una consulta ya atendida. Solo el médico
// que atendió puede recetarla, y una consulta lleva a lo sumo una receta.
func (h *PrescriptionHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var doctor models.Doctor
	if err := h.db.Where("user_id = ?", userID).First(&doctor).Error; err != nil {
		httperr.Forbidden(c, "doctor_profile_not_found", "El usuario no tiene perfil de médico.")
		return
	}

	var req CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	var cons models.Consultation
	if err := h.db.
		Where("id = ? AND doctor_id = ?", req.ConsultationID, doctor.ID).
		First(&cons).Error; err != nil {
		httperr.NotFound(c, "consultation_not_found", "Consulta no encontrada.")
		return
	}

	if cons.Status != string(schedule.StatusCompleted) {
		httperr.BadRequest(c, "consultation_not_completed", "La consulta aún no fue atendida.")
		return
	}

	var count int64
	h.db.Model(&models.Prescription{}).Where("consultation_id = ?", cons.ID).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "prescription_already_exists", "La consulta ya tiene receta.")
		return
	}

	for _, item := range req.Items {
		var medication models.Medication
		if err := h.db.
			Where("id = ? AND active = ?", item.MedicationID, true).
			First(&medication).Error; err != nil {
			httperr.BadRequest(c, "medication_not_found", "Medicamento no encontrado o inactivo.")
			return
		}
	}

	prescription := models.Prescription{
		Folio:          uuid.NewString(),
		ConsultationID: cons.ID,
		Notes:          req.Notes,
	}
	for _, item := range req.Items {
		prescription.Items = append(prescription.Items, models.PrescriptionItem{
			MedicationID: item.MedicationID,
			Dosage:       item.Dosage,
			Frequency:    item.Frequency,
			DurationDays: item.DurationDays,
		})
	}

	if err := h.db.Create(&prescription).Error; err != nil {
		httperr.Internal(c, "failed_to_create_prescription", "Error al emitir la receta.")
		return
	}

	h.audit.Dispatch(audit.Event{
		RequestID: uuid.NewString(),
		UserID:    &userID,
		Action:    "prescription_issued",
		Entity:    "prescription",
		EntityID:  &prescription.ID,
		Metadata: map[string]any{
			"consultation_id": cons.ID,
			"items":           len(prescription.Items),
		},
	})

	c.JSON(201, prescription)
}

// ======================================================
// GET
// ======================================================

func (h *PrescriptionHandler) GetByConsultation(c *gin.Context) {
	consultationID, err := strconv.Atoi(c.Param("id"))
	if err != nil || consultationID <= 0 {
		httperr.BadRequest(c, "invalid_consultation_id", "Consulta inválida.")
		return
	}

	var prescription models.Prescription
	if err := h.db.
		Preload("Items.Medication").
		Where("consultation_id = ?", consultationID).
		First(&prescription).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "prescription_not_found", "La consulta no tiene receta.")
			return
		}
		httperr.Internal(c, "failed_to_get_prescription", "Error al consultar la receta.")
		return
	}

	c.JSON(200, prescription)
}
