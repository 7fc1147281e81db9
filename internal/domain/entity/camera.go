package entity

import (
	"time"

	"github.com/google/uuid"
)

// CameraStatus represents the connectivity status of a camera
type CameraStatus string

const (
	CameraStatusOnline  CameraStatus = "online"
	CameraStatusOffline CameraStatus = "offline"
)

// Camera represents a surveillance camera assignable to room occupancies.
// Code is unique; the usecase checks it before insert.
type Camera struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Type      string       `gorm:"type:varchar(100);not null" json:"type"`
	Code      string       `gorm:"type:varchar(100);not null;index" json:"code"`
	Status    CameraStatus `gorm:"type:varchar(20);not null;default:'offline';index" json:"status"`
	RTSPUrl   string       `gorm:"type:varchar(500);not null" json:"rtsp_url"`
	Address   string       `gorm:"type:varchar(500)" json:"address,omitempty"`
	IsDeleted bool         `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Camera) TableName() string {
	return "cameras"
}
