package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceVariant is a priced option of a Service (e.g. grooming per weight band)
type ServiceVariant struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ServiceID uuid.UUID       `gorm:"type:uuid;not null;index" json:"service_id"`
	Content   string          `gorm:"type:varchar(500);not null" json:"content"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	IsDeleted bool            `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Service Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (ServiceVariant) TableName() string {
	return "service_variants"
}
