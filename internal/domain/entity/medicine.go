package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medicine represents a medicine administered during treatments
type Medicine struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Dosage      string    `gorm:"type:varchar(255)" json:"dosage,omitempty"`
	IsDeleted   bool      `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Medicine) TableName() string {
	return "medicines"
}
