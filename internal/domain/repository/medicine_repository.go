package repository

import (
	"petcare-facility-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicineRepository interface {
	Create(db *gorm.DB, medicine *entity.Medicine) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Medicine, error)
	FindAll(db *gorm.DB) ([]entity.Medicine, error)
	Update(db *gorm.DB, medicine *entity.Medicine) error
	SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	HardDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	// IsReferencedByHealthBook reports whether any health book lists the
	// medicine. Guards the hard delete.
	IsReferencedByHealthBook(db *gorm.DB, medicineID uuid.UUID) (bool, error)
}
