package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AHMADJAN-New/nazim-web-sub011/config"
	"github.com/AHMADJAN-New/nazim-web-sub011/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.School{},
		&models.User{},
		&models.AdmissionField{},
		&models.AdmissionPeriod{},
		&models.OnlineAdmission{},
		&models.AdmissionDocument{},
		&models.AdmissionFieldValue{},
		&models.Student{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	// Legacy cleanup: early builds stored options as a comma string in
	// admission_fields.options_text before the JSON column landed.
	if DB.Migrator().HasColumn(&models.AdmissionField{}, "options_text") {
		if err := DB.Migrator().DropColumn(&models.AdmissionField{}, "options_text"); err != nil {
			log.Printf("[migrate] warn: drop admission_fields.options_text failed: %v", err)
		} else {
			log.Printf("[migrate] dropped legacy column admission_fields.options_text")
		}
	}
}
