package database

import (
	"fmt"

	"petcare-facility-api/config"
	"petcare-facility-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

func NewPostgresConnection(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}

// AutoMigrate creates or updates the schema for every entity and seeds the
// fixed role rows users reference.
func AutoMigrate(db *gorm.DB) error {
	if err := migrate(db); err != nil {
		return err
	}
	return seedRoles(db)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.RoomType{},
		&entity.Room{},
		&entity.ServiceType{},
		&entity.Service{},
		&entity.ServiceVariant{},
		&entity.Booking{},
		&entity.BookingServiceItem{},
		&entity.Camera{},
		&entity.RoomHistory{},
		&entity.Medicine{},
		&entity.Treatment{},
		&entity.PetHealthBook{},
		&entity.AuditLog{},
	)
}

func seedRoles(db *gorm.DB) error {
	roles := []entity.Role{
		{ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin},
		{ID: entity.RoleIDStaff, RoleName: entity.RoleStaff},
		{ID: entity.RoleIDUser, RoleName: entity.RoleUser},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error
}
