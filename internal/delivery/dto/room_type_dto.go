package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateRoomTypeRequest struct {
	// ID is optional; the server generates one when absent.
	ID          *uuid.UUID      `json:"id" validate:"omitempty"`
	Name        string          `json:"name" validate:"required,min=2"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Description string          `json:"description"`
}

type UpdateRoomTypeRequest struct {
	Name        string           `json:"name" validate:"omitempty,min=2"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty"`
	Description *string          `json:"description" validate:"omitempty"`
}

// Response DTOs

type RoomTypeResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	IsDeleted   bool            `json:"is_deleted"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type RoomTypeListResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	Total     int                `json:"total"`
}
