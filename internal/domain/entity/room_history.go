package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomHistoryStatus represents the lifecycle of an occupancy record
type RoomHistoryStatus string

const (
	RoomHistoryStatusOpen   RoomHistoryStatus = "open"
	RoomHistoryStatusClosed RoomHistoryStatus = "closed"
)

// RoomHistory records one occupancy of a room: check-in, optional camera
// assignment while the guest is boarded, and check-out.
type RoomHistory struct {
	ID                   uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	RoomID               uuid.UUID         `gorm:"type:uuid;not null;index" json:"room_id"`
	BookingServiceItemID uuid.UUID         `gorm:"type:uuid;not null;index" json:"booking_service_item_id"`
	CameraID             *uuid.UUID        `gorm:"type:uuid;index" json:"camera_id,omitempty"`
	CheckInAt            time.Time         `gorm:"not null" json:"check_in_at"`
	CheckOutAt           *time.Time        `json:"check_out_at,omitempty"`
	Status               RoomHistoryStatus `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	CreatedAt            time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Room   Room    `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Camera *Camera `gorm:"foreignKey:CameraID" json:"camera,omitempty"`
}

// RoomTypeRevenue is an aggregate row: completed stays and the revenue they
// earned for one room type.
type RoomTypeRevenue struct {
	RoomTypeID  uuid.UUID       `json:"room_type_id"`
	Name        string          `json:"name"`
	Occupancies int64           `json:"occupancies"`
	Revenue     decimal.Decimal `json:"revenue"`
}

func (RoomHistory) TableName() string {
	return "room_histories"
}

// IsOpen checks whether the occupancy has not been checked out yet
func (h *RoomHistory) IsOpen() bool {
	return h.Status == RoomHistoryStatusOpen
}
