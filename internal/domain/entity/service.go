package entity

import (
	"time"

	"github.com/google/uuid"
)

// Service represents a bookable facility service (grooming, daycare, ...).
// Name is unique case-insensitively within the catalog.
type Service struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ServiceTypeID uuid.UUID `gorm:"type:uuid;not null;index" json:"service_type_id"`
	Name          string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Description   string    `gorm:"type:text" json:"description,omitempty"`
	ServiceImage  string    `gorm:"type:varchar(500)" json:"service_image,omitempty"`
	IsDeleted     bool      `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	ServiceType ServiceType      `gorm:"foreignKey:ServiceTypeID" json:"service_type,omitempty"`
	Variants    []ServiceVariant `gorm:"foreignKey:ServiceID" json:"variants,omitempty"`
}

func (Service) TableName() string {
	return "services"
}
