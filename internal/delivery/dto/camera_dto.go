package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateCameraRequest struct {
	ID      *uuid.UUID `json:"id" validate:"omitempty"`
	Type    string     `json:"type" validate:"required"`
	Code    string     `json:"code" validate:"required,min=2"`
	RTSPUrl string     `json:"rtsp_url" validate:"required"`
	Address string     `json:"address"`
}

type UpdateCameraRequest struct {
	Type    string  `json:"type" validate:"omitempty"`
	Status  string  `json:"status" validate:"omitempty,oneof=online offline"`
	RTSPUrl string  `json:"rtsp_url" validate:"omitempty"`
	Address *string `json:"address" validate:"omitempty"`
}

// Response DTOs

type CameraResponse struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Code      string    `json:"code"`
	Status    string    `json:"status"`
	RTSPUrl   string    `json:"rtsp_url"`
	Address   string    `json:"address,omitempty"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CameraListResponse struct {
	Cameras []CameraResponse `json:"cameras"`
	Total   int              `json:"total"`
}
