package repository

import (
	"petcare-facility-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CameraRepository interface {
	Create(db *gorm.DB, camera *entity.Camera) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Camera, error)
	FindAll(db *gorm.DB) ([]entity.Camera, error)
	// FindByCode matches the camera code among non-deleted rows.
	FindByCode(db *gorm.DB, code string) (*entity.Camera, error)
	// FindAvailable lists online, non-deleted cameras not assigned to an
	// open occupancy.
	FindAvailable(db *gorm.DB) ([]entity.Camera, error)
	Update(db *gorm.DB, camera *entity.Camera) error
	SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	HardDelete(db *gorm.DB, id uuid.UUID) (int64, error)
}
