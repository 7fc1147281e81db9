package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a customer booking transaction
type Booking struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"customer_id"`
	BookingCode string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"booking_code"`
	Status      BookingStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Items []BookingServiceItem `gorm:"foreignKey:BookingID" json:"items,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsCancelled checks if booking is cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// BookingServiceItem links a booking, a pet and a service variant.
// It only serves as a dependency-check target; there is no CRUD surface for it.
type BookingServiceItem struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BookingID        uuid.UUID `gorm:"type:uuid;not null;index" json:"booking_id"`
	PetID            uuid.UUID `gorm:"type:uuid;not null;index" json:"pet_id"`
	ServiceVariantID uuid.UUID `gorm:"type:uuid;not null;index" json:"service_variant_id"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Booking        Booking        `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	ServiceVariant ServiceVariant `gorm:"foreignKey:ServiceVariantID" json:"service_variant,omitempty"`
}

func (BookingServiceItem) TableName() string {
	return "booking_service_items"
}
