package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/verisclinic/clinic-scheduler/internal/audit"
	"github.com/verisclinic/clinic-scheduler/internal/cache"
	"github.com/verisclinic/clinic-scheduler/internal/config"
	"github.com/verisclinic/clinic-scheduler/internal/handlers"
	infraRepo "github.com/verisclinic/clinic-scheduler/internal/infra/repository"
	"github.com/verisclinic/clinic-scheduler/internal/middleware"
	"github.com/verisclinic/clinic-scheduler/internal/models"
	ucConsultation "github.com/verisclinic/clinic-scheduler/internal/usecase/consultation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	consultationRepo := infraRepo.NewConsultationGormRepository(db)

	availabilityCache := cache.NewAvailabilityCache(cache.NewClient(cfg))

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — CONSULTATIONS
	// ======================================================
	reserveUC := ucConsultation.NewReserveConsultation(
		consultationRepo,
		availabilityCache,
		auditDispatcher,
	)

	availabilityUC := ucConsultation.NewGetAvailability(consultationRepo)

	calendarUC := ucConsultation.NewMonthAvailability(
		consultationRepo,
		availabilityCache,
	)

	completeUC := ucConsultation.NewCompleteConsultation(
		consultationRepo,
		auditDispatcher,
	)

	listByDateUC := ucConsultation.NewListByDate(consultationRepo)
	listByMonthUC := ucConsultation.NewListByMonth(consultationRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	patientHandler := handlers.NewPatientHandler(db)
	doctorHandler := handlers.NewDoctorHandler(db)
	specialtyHandler := handlers.NewSpecialtyHandler(db)
	medicationHandler := handlers.NewMedicationHandler(db)

	consultationHandler := handlers.NewConsultationHandler(
		db,
		cfg,
		reserveUC,
		availabilityUC,
		calendarUC,
		completeUC,
		listByDateUC,
		listByMonthUC,
	)

	prescriptionHandler := handlers.NewPrescriptionHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// AGENDA (cualquier rol autenticado)
			// ------------------------------
			secured.GET("/schedule/availability", consultationHandler.Availability)
			secured.GET("/schedule/calendar", consultationHandler.Calendar)

			secured.POST("/consultations", consultationHandler.Create)

			// ------------------------------
			// CATÁLOGOS DE LECTURA
			// ------------------------------
			secured.GET("/doctors", doctorHandler.List)
			secured.GET("/doctors/:id", doctorHandler.Get)
			secured.GET("/specialties", specialtyHandler.List)
			secured.GET("/specialties/:id", specialtyHandler.Get)

			// ------------------------------
			// MÉDICO
			// ------------------------------
			medico := secured.Group("/")
			medico.Use(middleware.RequireRole(models.RoleDoctor))
			{
				medico.GET("/me/consultations", consultationHandler.ListByDate)
				medico.GET("/me/consultations/month", consultationHandler.ListByMonth)
				medico.PATCH("/me/consultations/:id/complete", consultationHandler.Complete)

				medico.POST("/prescriptions", prescriptionHandler.Create)
			}

			// ------------------------------
			// STAFF (médico o admin)
			// ------------------------------
			staff := secured.Group("/")
			staff.Use(middleware.RequireRole(models.RoleDoctor, models.RoleAdmin))
			{
				staff.GET("/patients", patientHandler.List)
				staff.GET("/patients/:id", patientHandler.Get)
				staff.POST("/patients", patientHandler.Create)
				staff.PATCH("/patients/:id", patientHandler.Update)

				staff.GET("/consultations/:id/prescription", prescriptionHandler.GetByConsultation)

				staff.GET("/medications", medicationHandler.List)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/doctors", doctorHandler.Create)
				admin.PATCH("/doctors/:id", doctorHandler.Update)

				admin.POST("/specialties", specialtyHandler.Create)
				admin.PATCH("/specialties/:id", specialtyHandler.Update)

				admin.POST("/medications", medicationHandler.Create)
				admin.PATCH("/medications/:id", medicationHandler.Update)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
