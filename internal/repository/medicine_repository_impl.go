package repository

import (
	"petcare-facility-api/internal/domain/entity"
	domainRepo "petcare-facility-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicineRepository struct{}

func NewMedicineRepository() domainRepo.MedicineRepository {
	return &medicineRepository{}
}

func (r *medicineRepository) Create(db *gorm.DB, medicine *entity.Medicine) error {
	return db.Create(medicine).Error
}

func (r *medicineRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Medicine, error) {
	return findByID[entity.Medicine](db, id)
}

func (r *medicineRepository) FindAll(db *gorm.DB) ([]entity.Medicine, error) {
	return findActive[entity.Medicine](db, "name ASC")
}

func (r *medicineRepository) Update(db *gorm.DB, medicine *entity.Medicine) error {
	return db.Save(medicine).Error
}

func (r *medicineRepository) SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return softDeleteByID[entity.Medicine](db, id)
}

func (r *medicineRepository) HardDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return hardDeleteByID[entity.Medicine](db, id)
}

// IsReferencedByHealthBook scans the jsonb medicine list as text. The id is a
// UUID string, so a substring match cannot produce false positives.
func (r *medicineRepository) IsReferencedByHealthBook(db *gorm.DB, medicineID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.PetHealthBook{}).
		Where("CAST(medicine_ids AS TEXT) LIKE ?", "%"+medicineID.String()+"%").
		Count(&count).Error
	return count > 0, err
}
