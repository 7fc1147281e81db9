package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateRoomRequest struct {
	ID          *uuid.UUID `json:"id" validate:"omitempty"`
	RoomTypeID  uuid.UUID  `json:"room_type_id" validate:"required"`
	Description string     `json:"description"`
	HasCamera   bool       `json:"has_camera"`
}

type UpdateRoomRequest struct {
	RoomTypeID  *uuid.UUID `json:"room_type_id" validate:"omitempty"`
	Description *string    `json:"description" validate:"omitempty"`
	Status      string     `json:"status" validate:"omitempty,oneof=Free 'In Use' Maintenance"`
	HasCamera   *bool      `json:"has_camera" validate:"omitempty"`
}

// Response DTOs

type RoomResponse struct {
	ID          uuid.UUID         `json:"id"`
	RoomTypeID  uuid.UUID         `json:"room_type_id"`
	RoomType    *RoomTypeResponse `json:"room_type,omitempty"`
	Description string            `json:"description,omitempty"`
	Status      string            `json:"status"`
	RoomImage   string            `json:"room_image,omitempty"`
	HasCamera   bool              `json:"has_camera"`
	IsDeleted   bool              `json:"is_deleted"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}
