package repository

import (
	"petcare-facility-api/internal/domain/entity"
	domainRepo "petcare-facility-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type treatmentRepository struct{}

func NewTreatmentRepository() domainRepo.TreatmentRepository {
	return &treatmentRepository{}
}

func (r *treatmentRepository) Create(db *gorm.DB, treatment *entity.Treatment) error {
	return db.Create(treatment).Error
}

func (r *treatmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Treatment, error) {
	return findByID[entity.Treatment](db, id)
}

func (r *treatmentRepository) FindAll(db *gorm.DB) ([]entity.Treatment, error) {
	return findActive[entity.Treatment](db, "name ASC")
}

func (r *treatmentRepository) Update(db *gorm.DB, treatment *entity.Treatment) error {
	return db.Save(treatment).Error
}

func (r *treatmentRepository) SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return softDeleteByID[entity.Treatment](db, id)
}

func (r *treatmentRepository) HardDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return hardDeleteByID[entity.Treatment](db, id)
}
