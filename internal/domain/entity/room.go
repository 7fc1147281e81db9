package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoomStatus represents the occupancy status of a room
type RoomStatus string

const (
	RoomStatusFree        RoomStatus = "Free"
	RoomStatusInUse       RoomStatus = "In Use"
	RoomStatusMaintenance RoomStatus = "Maintenance"
)

// Room represents a boarding room in the facility
type Room struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	RoomTypeID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"room_type_id"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Status      RoomStatus `gorm:"type:varchar(20);not null;default:'Free';index" json:"status"`
	RoomImage   string     `gorm:"type:varchar(500)" json:"room_image,omitempty"`
	HasCamera   bool       `gorm:"not null;default:false" json:"has_camera"`
	IsDeleted   bool       `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}

// IsFree checks if the room can take a new check-in
func (r *Room) IsFree() bool {
	return r.Status == RoomStatusFree && !r.IsDeleted
}
