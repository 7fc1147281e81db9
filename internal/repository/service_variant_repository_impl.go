package repository

import (
	"petcare-facility-api/internal/domain/entity"
	domainRepo "petcare-facility-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceVariantRepository struct{}

func NewServiceVariantRepository() domainRepo.ServiceVariantRepository {
	return &serviceVariantRepository{}
}

func (r *serviceVariantRepository) Create(db *gorm.DB, variant *entity.ServiceVariant) error {
	return db.Create(variant).Error
}

func (r *serviceVariantRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ServiceVariant, error) {
	return findByID[entity.ServiceVariant](db, id)
}

func (r *serviceVariantRepository) FindAll(db *gorm.DB) ([]entity.ServiceVariant, error) {
	var variants []entity.ServiceVariant
	err := db.Preload("Service").
		Where("is_deleted = ?", false).
		Order("created_at ASC").
		Find(&variants).Error
	if err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *serviceVariantRepository) FindByServiceID(db *gorm.DB, serviceID uuid.UUID) ([]entity.ServiceVariant, error) {
	var variants []entity.ServiceVariant
	err := db.Where("service_id = ? AND is_deleted = ?", serviceID, false).
		Order("created_at ASC").
		Find(&variants).Error
	if err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *serviceVariantRepository) Update(db *gorm.DB, variant *entity.ServiceVariant) error {
	return db.Omit("Service").Save(variant).Error
}

func (r *serviceVariantRepository) SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return softDeleteByID[entity.ServiceVariant](db, id)
}

func (r *serviceVariantRepository) HardDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return hardDeleteByID[entity.ServiceVariant](db, id)
}

func (r *serviceVariantRepository) SoftDeleteByServiceID(db *gorm.DB, serviceID uuid.UUID) (int64, error) {
	res := db.Model(&entity.ServiceVariant{}).
		Where("service_id = ? AND is_deleted = ?", serviceID, false).
		Update("is_deleted", true)
	return res.RowsAffected, res.Error
}
