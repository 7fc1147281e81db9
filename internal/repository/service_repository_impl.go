package repository

import (
	"errors"

	"petcare-facility-api/internal/domain/entity"
	domainRepo "petcare-facility-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceRepository struct{}

func NewServiceRepository() domainRepo.ServiceRepository {
	return &serviceRepository{}
}

func (r *serviceRepository) Create(db *gorm.DB, service *entity.Service) error {
	return db.Create(service).Error
}

func (r *serviceRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error) {
	return findByID[entity.Service](db, id)
}

func (r *serviceRepository) FindAll(db *gorm.DB) ([]entity.Service, error) {
	var services []entity.Service
	err := db.Preload("ServiceType").
		Where("is_deleted = ?", false).
		Order("name ASC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) FindByName(db *gorm.DB, name string) (*entity.Service, error) {
	var service entity.Service
	err := db.Where("LOWER(name) = LOWER(?) AND is_deleted = ?", name, false).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) Update(db *gorm.DB, service *entity.Service) error {
	return db.Omit("ServiceType", "Variants").Save(service).Error
}

func (r *serviceRepository) SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return softDeleteByID[entity.Service](db, id)
}

func (r *serviceRepository) HardDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return hardDeleteByID[entity.Service](db, id)
}

func (r *serviceRepository) HasVariants(db *gorm.DB, serviceID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.ServiceVariant{}).Where("service_id = ?", serviceID).Count(&count).Error
	return count > 0, err
}
