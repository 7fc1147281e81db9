package repository

import (
	"errors"
	"time"

	"petcare-facility-api/internal/domain/entity"
	domainRepo "petcare-facility-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type roomHistoryRepository struct{}

func NewRoomHistoryRepository() domainRepo.RoomHistoryRepository {
	return &roomHistoryRepository{}
}

func (r *roomHistoryRepository) Create(db *gorm.DB, history *entity.RoomHistory) error {
	return db.Create(history).Error
}

func (r *roomHistoryRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.RoomHistory, error) {
	var history entity.RoomHistory
	err := db.Preload("Room").Preload("Camera").Where("id = ?", id).First(&history).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &history, nil
}

func (r *roomHistoryRepository) FindByRoomID(db *gorm.DB, roomID uuid.UUID) ([]entity.RoomHistory, error) {
	var histories []entity.RoomHistory
	err := db.Preload("Camera").
		Where("room_id = ?", roomID).
		Order("check_in_at DESC").
		Find(&histories).Error
	if err != nil {
		return nil, err
	}
	return histories, nil
}

func (r *roomHistoryRepository) FindOpen(db *gorm.DB) ([]entity.RoomHistory, error) {
	var histories []entity.RoomHistory
	err := db.Preload("Room").Preload("Camera").
		Where("status = ?", entity.RoomHistoryStatusOpen).
		Order("check_in_at ASC").
		Find(&histories).Error
	if err != nil {
		return nil, err
	}
	return histories, nil
}

func (r *roomHistoryRepository) FindOpenByRoomID(db *gorm.DB, roomID uuid.UUID) (*entity.RoomHistory, error) {
	var history entity.RoomHistory
	err := db.Where("room_id = ? AND status = ?", roomID, entity.RoomHistoryStatusOpen).
		First(&history).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &history, nil
}

// Close stamps check-out atomically; only an open record transitions.
func (r *roomHistoryRepository) Close(db *gorm.DB, id uuid.UUID, at time.Time) (int64, error) {
	res := db.Model(&entity.RoomHistory{}).
		Where("id = ? AND status = ?", id, entity.RoomHistoryStatusOpen).
		Updates(map[string]interface{}{
			"status":       entity.RoomHistoryStatusClosed,
			"check_out_at": at,
		})
	return res.RowsAffected, res.Error
}

func (r *roomHistoryRepository) CountOpenByCameraID(db *gorm.DB, cameraID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.RoomHistory{}).
		Where("camera_id = ? AND status = ?", cameraID, entity.RoomHistoryStatusOpen).
		Count(&count).Error
	return count, err
}

func (r *roomHistoryRepository) RevenueByRoomType(db *gorm.DB) ([]entity.RoomTypeRevenue, error) {
	var rows []entity.RoomTypeRevenue
	err := db.Model(&entity.RoomHistory{}).
		Select("room_types.id AS room_type_id, room_types.name AS name, COUNT(*) AS occupancies, SUM(room_types.price) AS revenue").
		Joins("JOIN rooms ON rooms.id = room_histories.room_id").
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Where("room_histories.status = ?", entity.RoomHistoryStatusClosed).
		Group("room_types.id, room_types.name").
		Order("revenue DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
