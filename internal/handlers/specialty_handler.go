package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/verisclinic/clinic-scheduler/internal/domain/schedule"
	"github.com/verisclinic/clinic-scheduler/internal/httperr"
	"github.com/verisclinic/clinic-scheduler/internal/models"
)

// Horario físico de la clínica: ninguna especialidad puede atender
// fuera de 08:00-18:00.
const (
	clinicOpenMin  = 8 * 60
	clinicCloseMin = 18 * 60
)

type SpecialtyHandler struct {
	db *gorm.DB
}

func NewSpecialtyHandler(db *gorm.DB) *SpecialtyHandler {
	return &SpecialtyHandler{db: db}
}

// --------- Requests ---------

type CreateSpecialtyRequest struct {
	Description string `json:"description" binding:"required"`
	Days        string `json:"days"`
	WindowStart string `json:"window_start" binding:"required"`
	WindowEnd   string `json:"window_end" binding:"required"`
}

type UpdateSpecialtyRequest struct {
	Description *string `json:"description,omitempty"`
	Days        *string `json:"days,omitempty"`
	WindowStart *string `json:"window_start,omitempty"`
	WindowEnd   *string `json:"window_end,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// --------- Helpers ---------

// normalizeWindow valida y canoniza la ventana de atención: horas en
// cualquier formato aceptado, dentro del horario de la clínica y con
// inicio estrictamente anterior al fin. Devuelve "HH:MM"/"HH:MM".
func normalizeWindow(startStr, endStr string) (string, string, error) {
	start, err := schedule.MinutesOfDay(startStr)
	if err != nil {
		return "", "", err
	}
	end, err := schedule.MinutesOfDay(endStr)
	if err != nil {
		return "", "", err
	}

	if start >= end {
		return "", "", httperr.ErrBusiness("invalid_window_order")
	}
	if start < clinicOpenMin || end > clinicCloseMin {
		return "", "", httperr.ErrBusiness("outside_clinic_hours")
	}

	return schedule.FormatMinutes(start), schedule.FormatMinutes(end), nil
}

func writeSpecialtyError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "invalid_time_format":
		httperr.BadRequest(c, "invalid_time_format", "Hora inválida, use HH:MM.")
	case "invalid_window_order":
		httperr.BadRequest(c, "invalid_window_order", "La hora de inicio debe ser anterior a la de fin.")
	case "outside_clinic_hours":
		httperr.BadRequest(c, "outside_clinic_hours", "La ventana debe estar entre 08:00 y 18:00.")
	default:
		httperr.Internal(c, "internal_error", "Error interno.")
	}
}

// --------- Handlers ---------

func (h *SpecialtyHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Specialty{})

	if active := c.Query("active"); active == "true" {
		q = q.Where("active = ?", true)
	} else if active == "false" {
		q = q.Where("active = ?", false)
	}

	var specialties []models.Specialty
	if err := q.
		Order("description ASC").
		Find(&specialties).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_specialties"})
		return
	}

	c.JSON(http.StatusOK, specialties)
}

func (h *SpecialtyHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var specialty models.Specialty
	if err := h.db.First(&specialty, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "specialty_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_specialty"})
		return
	}

	c.JSON(http.StatusOK, specialty)
}

func (h *SpecialtyHandler) Create(c *gin.Context) {
	var req CreateSpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	start, end, err := normalizeWindow(req.WindowStart, req.WindowEnd)
	if err != nil {
		writeSpecialtyError(c, err)
		return
	}

	specialty := models.Specialty{
		Description: req.Description,
		Days:        schedule.ParseWeekdayMask(req.Days).String(),
		WindowStart: start,
		WindowEnd:   end,
		Active:      true,
	}

	if err := h.db.Create(&specialty).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_specialty"})
		return
	}

	c.JSON(http.StatusCreated, specialty)
}

func (h *SpecialtyHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var specialty models.Specialty
	if err := h.db.First(&specialty, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "specialty_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_specialty"})
		return
	}

	var req UpdateSpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Description != nil {
		specialty.Description = *req.Description
	}
	if req.Days != nil {
		specialty.Days = schedule.ParseWeekdayMask(*req.Days).String()
	}

	startStr := specialty.WindowStart
	endStr := specialty.WindowEnd
	if req.WindowStart != nil {
		startStr = *req.WindowStart
	}
	if req.WindowEnd != nil {
		endStr = *req.WindowEnd
	}
	if req.WindowStart != nil || req.WindowEnd != nil {
		start, end, err := normalizeWindow(startStr, endStr)
		if err != nil {
			writeSpecialtyError(c, err)
			return
		}
		specialty.WindowStart = start
		specialty.WindowEnd = end
	}

	if req.Active != nil {
		specialty.Active = *req.Active
	}

	if err := h.db.Save(&specialty).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_specialty"})
		return
	}

	c.JSON(http.StatusOK, specialty)
}
