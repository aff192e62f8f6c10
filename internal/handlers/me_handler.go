package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/verisclinic/clinic-scheduler/internal/middleware"
	"github.com/verisclinic/clinic-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	var user models.User
	if err := h.db.Preload("Role").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	resp := gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  user.Role.Name,
		},
	}

	// El perfil clínico acompaña al usuario según su rol.
	switch user.Role.Name {
	case models.RolePatient:
		var patient models.Patient
		if err := h.db.Where("user_id = ?", user.ID).First(&patient).Error; err == nil {
			resp["patient"] = patient
		}
	case models.RoleDoctor:
		var doctor models.Doctor
		if err := h.db.Preload("Specialty").Where("user_id = ?", user.ID).First(&doctor).Error; err == nil {
			resp["doctor"] = doctor
		}
	}

	c.JSON(http.StatusOK, resp)
}
