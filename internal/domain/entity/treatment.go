package entity

import (
	"time"

	"github.com/google/uuid"
)

// Treatment represents a healthcare treatment offered by the facility
type Treatment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	IsDeleted   bool      `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Treatment) TableName() string {
	return "treatments"
}
