package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/verisclinic/clinic-scheduler/internal/models"
	"github.com/verisclinic/clinic-scheduler/internal/validators"
)

type DoctorHandler struct {
	db *gorm.DB
}

func NewDoctorHandler(db *gorm.DB) *DoctorHandler {
	return &DoctorHandler{db: db}
}

// --------- Requests ---------

type CreateDoctorRequest struct {
	Name        string `json:"name" binding:"required"`
	Cedula      string `json:"cedula" binding:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	SpecialtyID uint   `json:"specialty_id" binding:"required"`
	UserID      *uint  `json:"user_id"`
}

type UpdateDoctorRequest struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	SpecialtyID *uint   `json:"specialty_id,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *DoctorHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	specialtyStr := strings.TrimSpace(c.Query("specialty_id"))
	activeStr := strings.TrimSpace(c.Query("active"))

	q := h.db.Model(&models.Doctor{}).Preload("Specialty")

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR cedula LIKE ?", like, like)
	}

	if specialtyStr != "" {
		q = q.Where("specialty_id = ?", specialtyStr)
	}

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var doctors []models.Doctor
	if err := q.
		Order("name ASC").
		Find(&doctors).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_doctors"})
		return
	}

	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var doctor models.Doctor
	if err := h.db.Preload("Specialty").First(&doctor, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "doctor_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_doctor"})
		return
	}

	c.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsCedulaValid(req.Cedula) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_cedula"})
		return
	}

	var specialty models.Specialty
	if err := h.db.First(&specialty, req.SpecialtyID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "specialty_not_found"})
		return
	}

	var count int64
	h.db.Model(&models.Doctor{}).Where("cedula = ?", req.Cedula).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cedula_already_exists"})
		return
	}

	doctor := models.Doctor{
		UserID:      req.UserID,
		Name:        req.Name,
		Cedula:      req.Cedula,
		Phone:       req.Phone,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		SpecialtyID: specialty.ID,
		Active:      true,
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_doctor"})
		return
	}

	doctor.Specialty = specialty
	c.JSON(http.StatusCreated, doctor)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var doctor models.Doctor
	if err := h.db.First(&doctor, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "doctor_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_doctor"})
		return
	}

	var req UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Phone != nil {
		doctor.Phone = *req.Phone
	}
	if req.Email != nil {
		doctor.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.SpecialtyID != nil {
		var specialty models.Specialty
		if err := h.db.First(&specialty, *req.SpecialtyID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "specialty_not_found"})
			return
		}
		doctor.SpecialtyID = specialty.ID
	}
	if req.Active != nil {
		doctor.Active = *req.Active
	}

	if err := h.db.Save(&doctor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_doctor"})
		return
	}

	c.JSON(http.StatusOK, doctor)
}
