package repository

import (
	"petcare-facility-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error)
	FindAll(db *gorm.DB) ([]entity.Service, error)
	FindByName(db *gorm.DB, name string) (*entity.Service, error)
	Update(db *gorm.DB, service *entity.Service) error
	SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	HardDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	// HasVariants reports whether any variant row references the service,
	// deleted or not. Used as the hard-delete guard.
	HasVariants(db *gorm.DB, serviceID uuid.UUID) (bool, error)
}
