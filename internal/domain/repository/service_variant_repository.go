package repository

import (
	"petcare-facility-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceVariantRepository interface {
	Create(db *gorm.DB, variant *entity.ServiceVariant) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.ServiceVariant, error)
	FindAll(db *gorm.DB) ([]entity.ServiceVariant, error)
	FindByServiceID(db *gorm.DB, serviceID uuid.UUID) ([]entity.ServiceVariant, error)
	Update(db *gorm.DB, variant *entity.ServiceVariant) error
	SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	HardDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	// SoftDeleteByServiceID cascades a service soft delete to its variants.
	SoftDeleteByServiceID(db *gorm.DB, serviceID uuid.UUID) (int64, error)
}
