package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/verisclinic/clinic-scheduler/internal/models"
)

type MedicationHandler struct {
	db *gorm.DB
}

func NewMedicationHandler(db *gorm.DB) *MedicationHandler {
	return &MedicationHandler{db: db}
}

// --------- Requests ---------

type CreateMedicationRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Presentation string `json:"presentation"`
}

type UpdateMedicationRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Presentation *string `json:"presentation,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *MedicationHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Medication{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	if active := c.Query("active"); active == "true" {
		q = q.Where("active = ?", true)
	} else if active == "false" {
		q = q.Where("active = ?", false)
	}

	var medications []models.Medication
	if err := q.
		Order("name ASC").
		Find(&medications).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_medications"})
		return
	}

	c.JSON(http.StatusOK, medications)
}

func (h *MedicationHandler) Create(c *gin.Context) {
	var req CreateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	medication := models.Medication{
		Name:         req.Name,
		Description:  req.Description,
		Presentation: req.Presentation,
		Active:       true,
	}

	if err := h.db.Create(&medication).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_medication"})
		return
	}

	c.JSON(http.StatusCreated, medication)
}

func (h *MedicationHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var medication models.Medication
	if err := h.db.First(&medication, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "medication_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_medication"})
		return
	}

	var req UpdateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		medication.Name = *req.Name
	}
	if req.Description != nil {
		medication.Description = *req.Description
	}
	if req.Presentation != nil {
		medication.Presentation = *req.Presentation
	}
	if req.Active != nil {
		medication.Active = *req.Active
	}

	if err := h.db.Save(&medication).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_medication"})
		return
	}

	c.JSON(http.StatusOK, medication)
}
