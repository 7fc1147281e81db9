package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CheckInRequest struct {
	RoomID               uuid.UUID  `json:"room_id" validate:"required"`
	BookingServiceItemID uuid.UUID  `json:"booking_service_item_id" validate:"required"`
	CameraID             *uuid.UUID `json:"camera_id" validate:"omitempty"`
}

// Response DTOs

type RoomHistoryResponse struct {
	ID                   uuid.UUID       `json:"id"`
	RoomID               uuid.UUID       `json:"room_id"`
	Room                 *RoomResponse   `json:"room,omitempty"`
	BookingServiceItemID uuid.UUID       `json:"booking_service_item_id"`
	CameraID             *uuid.UUID      `json:"camera_id,omitempty"`
	Camera               *CameraResponse `json:"camera,omitempty"`
	CheckInAt            time.Time       `json:"check_in_at"`
	CheckOutAt           *time.Time      `json:"check_out_at,omitempty"`
	Status               string          `json:"status"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

type RoomHistoryListResponse struct {
	Histories []RoomHistoryResponse `json:"histories"`
	Total     int                   `json:"total"`
}
