package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-manager/internal/config"
	"github.com/clinicdesk/clinic-manager/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Doctor{},
		&models.Service{},
		&models.Appointment{},
		&models.Visit{},
		&models.InventoryItem{},
		&models.AuditLog{},
	)
}

// Seed inserts reference data on an empty database. Doctors and
// services are read-only through the API, so a fresh install gets a
// usable catalog.
func Seed(db *gorm.DB) {
	var doctors int64
	db.Model(&models.Doctor{}).Count(&doctors)
	if doctors == 0 {
		db.Create(&[]models.Doctor{
			{Name: "Dr. Amina Rahman", Specialty: "General Medicine"},
			{Name: "Dr. Tanvir Hasan", Specialty: "Cardiology"},
			{Name: "Dr. Farzana Akter", Specialty: "Pediatrics"},
		})
	}

	var services int64
	db.Model(&models.Service{}).Count(&services)
	if services == 0 {
		db.Create(&[]models.Service{
			{Name: "General", Category: "Consultation", Price: 500},
			{Name: "Follow-up", Category: "Consultation", Price: 300},
			{Name: "ECG", Category: "Diagnostics", Price: 1200},
			{Name: "Blood Panel", Category: "Diagnostics", Price: 900},
		})
	}
}
