package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/verisclinic/clinic-scheduler/internal/config"
	"github.com/verisclinic/clinic-scheduler/internal/domain/schedule"
	"github.com/verisclinic/clinic-scheduler/internal/httperr"
	"github.com/verisclinic/clinic-scheduler/internal/httpresp"
	"github.com/verisclinic/clinic-scheduler/internal/middleware"
	"github.com/verisclinic/clinic-scheduler/internal/models"
	"github.com/verisclinic/clinic-scheduler/internal/usecase/consultation"
)

// ======================================================
// HANDLER
// ======================================================

type ConsultationHandler struct {
	db     *gorm.DB
	config *config.Config

	reserve      *consultation.ReserveConsultation
	availability *consultation.GetAvailability
	calendar     *consultation.MonthAvailability
	complete     *consultation.CompleteConsultation
	listByDate   *consultation.ListByDate
	listByMonth  *consultation.ListByMonth
}

func NewConsultationHandler(
	db *gorm.DB,
	cfg *config.Config,
	reserve *consultation.ReserveConsultation,
	availability *consultation.GetAvailability,
	calendar *consultation.MonthAvailability,
	complete *consultation.CompleteConsultation,
	listByDate *consultation.ListByDate,
	listByMonth *consultation.ListByMonth,
) *ConsultationHandler {
	return &ConsultationHandler{
		db:           db,
		config:       cfg,
		reserve:      reserve,
		availability: availability,
		calendar:     calendar,
		complete:     complete,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateConsultationRequest struct {
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`

	// Solo médicos y administradores agendan para terceros; para un
	// paciente autenticado se ignora y se usa su propio perfil.
	PatientID uint `json:"patient_id"`
}

type CompleteConsultationRequest struct {
	Diagnosis string `json:"diagnosis" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

// writeScheduleError traduce el código de negocio del dominio de agenda
// al status HTTP del contrato: conflictos de ocupación son 409, el resto
// de rechazos de validación son 400.
func writeScheduleError(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case "doctor_not_found":
		httperr.NotFound(c, code, "Médico no encontrado.")
	case "patient_not_found":
		httperr.NotFound(c, code, "Paciente no encontrado.")
	case "consultation_not_found":
		httperr.NotFound(c, code, "Consulta no encontrada.")
	case "date_out_of_range":
		httperr.BadRequest(c, code, "Fecha fuera del rango agendable.")
	case "day_not_served":
		httperr.BadRequest(c, code, "La especialidad no atiende ese día.")
	case "invalid_time_format":
		httperr.BadRequest(c, code, "Hora inválida, use HH:MM.")
	case "invalid_state":
		httperr.BadRequest(c, code, "La consulta no admite esa transición.")
	case "slot_unavailable":
		httperr.Conflict(c, code, "El turno no está disponible.")
	case "patient_double_booking":
		httperr.Conflict(c, code, "El paciente ya tiene una consulta a esa hora.")
	case "slot_conflict":
		httperr.Conflict(c, code, "El turno acaba de ser tomado.")
	default:
		httperr.Internal(c, "internal_error", "Error interno.")
	}
}

func (h *ConsultationHandler) doctorForUser(c *gin.Context) (*models.Doctor, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var doctor models.Doctor
	if err := h.db.Where("user_id = ?", userID).First(&doctor).Error; err != nil {
		httperr.Forbidden(c, "doctor_profile_not_found", "El usuario no tiene perfil de médico.")
		return nil, false
	}
	return &doctor, true
}

func (h *ConsultationHandler) resolvePatientID(c *gin.Context, req *CreateConsultationRequest) (uint, bool) {
	role := c.GetString(middleware.ContextUserRole)

	if role == models.RolePatient {
		userID := c.MustGet(middleware.ContextUserID).(uint)

		var patient models.Patient
		if err := h.db.Where("user_id = ?", userID).First(&patient).Error; err != nil {
			httperr.Forbidden(c, "patient_profile_not_found", "El usuario no tiene perfil de paciente.")
			return 0, false
		}
		return patient.ID, true
	}

	if req.PatientID == 0 {
		httperr.BadRequest(c, "missing_patient_id", "Paciente obligatorio.")
		return 0, false
	}
	return req.PatientID, true
}

func parseYearMonth(c *gin.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Año inválido.")
		return 0, 0, false
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mes inválido.")
		return 0, 0, false
	}

	return year, time.Month(month), true
}

// ======================================================
// CREATE
// ======================================================

func (h *ConsultationHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	patientID, ok := h.resolvePatientID(c, &req)
	if !ok {
		return
	}

	date, err := parseClinicDate(h.config, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida, use YYYY-MM-DD.")
		return
	}

	startMin, err := schedule.MinutesOfDay(req.Time)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	created, err := h.reserve.Execute(c.Request.Context(), consultation.ReserveInput{
		DoctorID:    req.DoctorID,
		PatientID:   patientID,
		Date:        date,
		StartMin:    startMin,
		Now:         nowInClinic(h.config),
		RequestedBy: userID,
		RequestID:   uuid.NewString(),
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	c.JSON(201, created)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *ConsultationHandler) Availability(c *gin.Context) {
	doctorID, err := strconv.Atoi(c.Query("doctor_id"))
	if err != nil || doctorID <= 0 {
		httperr.BadRequest(c, "invalid_doctor_id", "Médico inválido.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Fecha obligatoria.")
		return
	}

	date, err := parseClinicDate(h.config, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida, use YYYY-MM-DD.")
		return
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		schedule.AvailabilityInput{DoctorID: uint(doctorID), Date: date},
		nowInClinic(h.config),
	)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// CALENDAR (disponibilidad mensual)
// ======================================================

func (h *ConsultationHandler) Calendar(c *gin.Context) {
	doctorID, err := strconv.Atoi(c.Query("doctor_id"))
	if err != nil || doctorID <= 0 {
		httperr.BadRequest(c, "invalid_doctor_id", "Médico inválido.")
		return
	}

	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	counts, err := h.calendar.Execute(
		c.Request.Context(),
		uint(doctorID),
		year,
		month,
		nowInClinic(h.config),
	)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"year":  year,
		"month": int(month),
		"days":  counts,
	})
}

// ======================================================
// AGENDA DEL MÉDICO
// ======================================================

func (h *ConsultationHandler) ListByDate(c *gin.Context) {
	doctor, ok := h.doctorForUser(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Fecha obligatoria.")
		return
	}

	date, err := parseClinicDate(h.config, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida, use YYYY-MM-DD.")
		return
	}

	rows, err := h.listByDate.Execute(c.Request.Context(), doctor.ID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_consultations", "Error al listar consultas.")
		return
	}

	httpresp.List(c, rows)
}

func (h *ConsultationHandler) ListByMonth(c *gin.Context) {
	doctor, ok := h.doctorForUser(c)
	if !ok {
		return
	}

	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	rows, err := h.listByMonth.Execute(c.Request.Context(), doctor.ID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_consultations", "Error al listar consultas.")
		return
	}

	c.JSON(200, gin.H{
		"year":          year,
		"month":         int(month),
		"consultations": rows,
	})
}

// ======================================================
// COMPLETE
// ======================================================

func (h *ConsultationHandler) Complete(c *gin.Context) {
	doctor, ok := h.doctorForUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_consultation_id", "Consulta inválida.")
		return
	}

	var req CompleteConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Diagnóstico obligatorio.")
		return
	}

	cons, err := h.complete.Execute(
		c.Request.Context(),
		doctor.ID,
		uint(id),
		req.Diagnosis,
		nowInClinic(h.config),
	)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	c.JSON(200, cons)
}
