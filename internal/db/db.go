package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/verisclinic/clinic-scheduler/internal/config"
	"github.com/verisclinic/clinic-scheduler/internal/logger"
	"github.com/verisclinic/clinic-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.L().Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.L().Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Specialty{},
		&models.Doctor{},
		&models.Patient{},
		&models.Consultation{},
		&models.Medication{},
		&models.Prescription{},
		&models.PrescriptionItem{},
		&models.AuditLog{},
	); err != nil {
		logger.L().Fatal("failed to migrate", zap.Error(err))
	}

	seedRoles(db)
	ensureOverlapConstraint(db)

	return db
}

func seedRoles(db *gorm.DB) {
	for _, name := range []string{models.RoleAdmin, models.RoleDoctor, models.RolePatient} {
		var count int64
		db.Model(&models.Role{}).Where("name = ?", name).Count(&count)
		if count == 0 {
			db.Create(&models.Role{Name: name})
		}
	}
}

// ensureOverlapConstraint instala la restricción de exclusión que hace
// imposible, a nivel de postgres, que dos consultas agendadas del mismo
// médico se solapen en la misma fecha. Es la última defensa detrás del
// lock transaccional: el insert perdedor de una carrera falla con
// SQLSTATE 23P01.
func ensureOverlapConstraint(db *gorm.DB) {
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)

	db.Exec(`
        ALTER TABLE consultations
        DROP CONSTRAINT IF EXISTS consultations_no_overlap
    `)

	if err := db.Exec(`
        ALTER TABLE consultations
        ADD CONSTRAINT consultations_no_overlap
        EXCLUDE USING gist (
            doctor_id WITH =,
            date WITH =,
            int4range(start_min, end_min) WITH &&
        )
        WHERE (status = 'scheduled')
    `).Error; err != nil {
		logger.L().Fatal("failed to install overlap constraint", zap.Error(err))
	}
}
