package repository

import (
	"petcare-facility-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TreatmentRepository interface {
	Create(db *gorm.DB, treatment *entity.Treatment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Treatment, error)
	FindAll(db *gorm.DB) ([]entity.Treatment, error)
	Update(db *gorm.DB, treatment *entity.Treatment) error
	SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	HardDelete(db *gorm.DB, id uuid.UUID) (int64, error)
}
