package repository

import (
	"petcare-facility-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomTypeRepository interface {
	Create(db *gorm.DB, roomType *entity.RoomType) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.RoomType, error)
	FindAll(db *gorm.DB) ([]entity.RoomType, error)
	// FindByName matches the name case-insensitively among non-deleted rows.
	FindByName(db *gorm.DB, name string) (*entity.RoomType, error)
	Update(db *gorm.DB, roomType *entity.RoomType) error
	// SoftDelete flips is_deleted on a live row. Affected rows: 1 = soft
	// deleted now, 0 = row absent or already soft-deleted.
	SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	// HardDelete removes a row that is already soft-deleted.
	HardDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	// CountRooms counts every room row referencing the type, deleted or not.
	CountRooms(db *gorm.DB, roomTypeID uuid.UUID) (int64, error)
}
