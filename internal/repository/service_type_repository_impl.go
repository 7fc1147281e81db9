package repository

import (
	"errors"

	"petcare-facility-api/internal/domain/entity"
	domainRepo "petcare-facility-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceTypeRepository struct{}

func NewServiceTypeRepository() domainRepo.ServiceTypeRepository {
	return &serviceTypeRepository{}
}

func (r *serviceTypeRepository) Create(db *gorm.DB, serviceType *entity.ServiceType) error {
	return db.Create(serviceType).Error
}

func (r *serviceTypeRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ServiceType, error) {
	return findByID[entity.ServiceType](db, id)
}

func (r *serviceTypeRepository) FindAll(db *gorm.DB) ([]entity.ServiceType, error) {
	return findActive[entity.ServiceType](db, "name ASC")
}

func (r *serviceTypeRepository) FindByName(db *gorm.DB, name string) (*entity.ServiceType, error) {
	var serviceType entity.ServiceType
	err := db.Where("LOWER(name) = LOWER(?) AND is_deleted = ?", name, false).First(&serviceType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &serviceType, nil
}

func (r *serviceTypeRepository) Update(db *gorm.DB, serviceType *entity.ServiceType) error {
	return db.Omit("Services").Save(serviceType).Error
}

func (r *serviceTypeRepository) SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return softDeleteByID[entity.ServiceType](db, id)
}

func (r *serviceTypeRepository) HardDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return hardDeleteByID[entity.ServiceType](db, id)
}

func (r *serviceTypeRepository) CountActiveServices(db *gorm.DB, serviceTypeID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Service{}).
		Where("service_type_id = ? AND is_deleted = ?", serviceTypeID, false).
		Count(&count).Error
	return count, err
}
