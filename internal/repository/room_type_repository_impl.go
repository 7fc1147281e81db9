package repository

import (
	"errors"

	"petcare-facility-api/internal/domain/entity"
	domainRepo "petcare-facility-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type roomTypeRepository struct{}

func NewRoomTypeRepository() domainRepo.RoomTypeRepository {
	return &roomTypeRepository{}
}

func (r *roomTypeRepository) Create(db *gorm.DB, roomType *entity.RoomType) error {
	return db.Create(roomType).Error
}

func (r *roomTypeRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.RoomType, error) {
	return findByID[entity.RoomType](db, id)
}

func (r *roomTypeRepository) FindAll(db *gorm.DB) ([]entity.RoomType, error) {
	return findActive[entity.RoomType](db, "name ASC")
}

func (r *roomTypeRepository) FindByName(db *gorm.DB, name string) (*entity.RoomType, error) {
	var roomType entity.RoomType
	err := db.Where("LOWER(name) = LOWER(?) AND is_deleted = ?", name, false).First(&roomType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &roomType, nil
}

func (r *roomTypeRepository) Update(db *gorm.DB, roomType *entity.RoomType) error {
	return db.Omit("Rooms").Save(roomType).Error
}

func (r *roomTypeRepository) SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return softDeleteByID[entity.RoomType](db, id)
}

func (r *roomTypeRepository) HardDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return hardDeleteByID[entity.RoomType](db, id)
}

func (r *roomTypeRepository) CountRooms(db *gorm.DB, roomTypeID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Room{}).Where("room_type_id = ?", roomTypeID).Count(&count).Error
	return count, err
}
