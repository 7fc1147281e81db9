package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceType is the top level of the service catalog hierarchy
// (ServiceType -> Service -> ServiceVariant).
type ServiceType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	IsDeleted   bool      `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Services []Service `gorm:"foreignKey:ServiceTypeID" json:"services,omitempty"`
}

func (ServiceType) TableName() string {
	return "service_types"
}
