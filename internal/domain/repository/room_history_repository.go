package repository

import (
	"time"

	"petcare-facility-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomHistoryRepository interface {
	Create(db *gorm.DB, history *entity.RoomHistory) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.RoomHistory, error)
	FindByRoomID(db *gorm.DB, roomID uuid.UUID) ([]entity.RoomHistory, error)
	FindOpen(db *gorm.DB) ([]entity.RoomHistory, error)
	FindOpenByRoomID(db *gorm.DB, roomID uuid.UUID) (*entity.RoomHistory, error)
	// Close stamps the check-out time on an open record only. Affected rows
	// 0 means the record was absent or already closed.
	Close(db *gorm.DB, id uuid.UUID, at time.Time) (int64, error)
	// CountOpenByCameraID counts open occupancies holding the camera.
	CountOpenByCameraID(db *gorm.DB, cameraID uuid.UUID) (int64, error)
	// RevenueByRoomType aggregates closed occupancies per room type, one
	// charge of the type's price per stay.
	RevenueByRoomType(db *gorm.DB) ([]entity.RoomTypeRevenue, error)
}
