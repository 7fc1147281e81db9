package repository

import (
	"petcare-facility-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceTypeRepository interface {
	Create(db *gorm.DB, serviceType *entity.ServiceType) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.ServiceType, error)
	FindAll(db *gorm.DB) ([]entity.ServiceType, error)
	FindByName(db *gorm.DB, name string) (*entity.ServiceType, error)
	Update(db *gorm.DB, serviceType *entity.ServiceType) error
	SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	HardDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	// CountActiveServices counts non-deleted services referencing the type.
	CountActiveServices(db *gorm.DB, serviceTypeID uuid.UUID) (int64, error)
}
