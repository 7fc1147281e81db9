package repository

import (
	"petcare-facility-api/internal/domain/entity"
	domainRepo "petcare-facility-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type roomRepository struct{}

func NewRoomRepository() domainRepo.RoomRepository {
	return &roomRepository{}
}

func (r *roomRepository) Create(db *gorm.DB, room *entity.Room) error {
	return db.Create(room).Error
}

func (r *roomRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Room, error) {
	return findByID[entity.Room](db, id)
}

func (r *roomRepository) FindAll(db *gorm.DB) ([]entity.Room, error) {
	var rooms []entity.Room
	err := db.Preload("RoomType").
		Where("is_deleted = ?", false).
		Order("created_at ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) FindAvailable(db *gorm.DB) ([]entity.Room, error) {
	var rooms []entity.Room
	err := db.Preload("RoomType").
		Where("is_deleted = ? AND status = ?", false, entity.RoomStatusFree).
		Order("created_at ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) Update(db *gorm.DB, room *entity.Room) error {
	return db.Omit("RoomType").Save(room).Error
}

func (r *roomRepository) SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return softDeleteByID[entity.Room](db, id)
}

func (r *roomRepository) HardDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return hardDeleteByID[entity.Room](db, id)
}

func (r *roomRepository) SoftDeleteByRoomTypeID(db *gorm.DB, roomTypeID uuid.UUID) (int64, error) {
	res := db.Model(&entity.Room{}).
		Where("room_type_id = ? AND is_deleted = ?", roomTypeID, false).
		Update("is_deleted", true)
	return res.RowsAffected, res.Error
}

func (r *roomRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.RoomStatus) (int64, error) {
	res := db.Model(&entity.Room{}).
		Where("id = ? AND status = ? AND is_deleted = ?", id, from, false).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *roomRepository) CountByStatus(db *gorm.DB) (map[entity.RoomStatus]int64, error) {
	type row struct {
		Status entity.RoomStatus
		Total  int64
	}
	var rows []row
	err := db.Model(&entity.Room{}).
		Select("status, COUNT(*) AS total").
		Where("is_deleted = ?", false).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.RoomStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}
