package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomType groups rooms sharing a price class.
// Name is unique case-insensitively; the usecase checks it before insert.
type RoomType struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	IsDeleted   bool            `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Rooms []Room `gorm:"foreignKey:RoomTypeID" json:"rooms,omitempty"`
}

func (RoomType) TableName() string {
	return "room_types"
}
