package db

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/estetica-scheduler/internal/config"
	"github.com/BruksfildServices01/estetica-scheduler/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.ServiceItem{},
		&models.Client{},
		&models.Appointment{},
		&models.HistoryEntry{},
		&models.WorkingHours{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	if err := SeedAdmin(db, cfg.AdminUser, cfg.AdminPass); err != nil {
		log.Fatal("failed to seed admin user", zap.Error(err))
	}

	return db
}

// SeedAdmin creates the admin account on first start. An existing account
// keeps its password.
func SeedAdmin(db *gorm.DB, username, password string) error {
	var user models.User
	err := db.Where("username = ?", username).First(&user).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         "admin",
	}).Error
}
