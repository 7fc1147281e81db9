package repository

import (
	"petcare-facility-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomRepository interface {
	Create(db *gorm.DB, room *entity.Room) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Room, error)
	FindAll(db *gorm.DB) ([]entity.Room, error)
	// FindAvailable lists non-deleted rooms with status Free.
	FindAvailable(db *gorm.DB) ([]entity.Room, error)
	Update(db *gorm.DB, room *entity.Room) error
	SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	HardDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	// SoftDeleteByRoomTypeID cascades a room type soft delete to its rooms.
	SoftDeleteByRoomTypeID(db *gorm.DB, roomTypeID uuid.UUID) (int64, error)
	// UpdateStatus flips the status atomically only when the current status
	// matches. Affected rows 0 means the room was not in the expected state.
	UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.RoomStatus) (int64, error)
	// CountByStatus groups non-deleted rooms by status for reporting.
	CountByStatus(db *gorm.DB) (map[entity.RoomStatus]int64, error)
}
