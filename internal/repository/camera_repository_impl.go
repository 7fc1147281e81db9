package repository

import (
	"errors"

	"petcare-facility-api/internal/domain/entity"
	domainRepo "petcare-facility-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type cameraRepository struct{}

func NewCameraRepository() domainRepo.CameraRepository {
	return &cameraRepository{}
}

func (r *cameraRepository) Create(db *gorm.DB, camera *entity.Camera) error {
	return db.Create(camera).Error
}

func (r *cameraRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Camera, error) {
	return findByID[entity.Camera](db, id)
}

func (r *cameraRepository) FindAll(db *gorm.DB) ([]entity.Camera, error) {
	return findActive[entity.Camera](db, "code ASC")
}

func (r *cameraRepository) FindByCode(db *gorm.DB, code string) (*entity.Camera, error) {
	var camera entity.Camera
	err := db.Where("code = ? AND is_deleted = ?", code, false).First(&camera).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &camera, nil
}

func (r *cameraRepository) FindAvailable(db *gorm.DB) ([]entity.Camera, error) {
	var cameras []entity.Camera
	err := db.Where("is_deleted = ? AND status = ?", false, entity.CameraStatusOnline).
		Where("id NOT IN (?)",
			db.Model(&entity.RoomHistory{}).
				Select("camera_id").
				Where("camera_id IS NOT NULL AND status = ?", entity.RoomHistoryStatusOpen),
		).
		Order("code ASC").
		Find(&cameras).Error
	if err != nil {
		return nil, err
	}
	return cameras, nil
}

func (r *cameraRepository) Update(db *gorm.DB, camera *entity.Camera) error {
	return db.Save(camera).Error
}

func (r *cameraRepository) SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return softDeleteByID[entity.Camera](db, id)
}

func (r *cameraRepository) HardDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return hardDeleteByID[entity.Camera](db, id)
}
