package repository

import (
	"petcare-facility-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingServiceItemRepository exposes existence queries only. Booking items
// are written by the booking pipeline, never through this API surface.
type BookingServiceItemRepository interface {
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.BookingServiceItem, error)
	// HasAnyForVariant reports whether any booking item references the
	// variant. Guards the variant hard delete.
	HasAnyForVariant(db *gorm.DB, variantID uuid.UUID) (bool, error)
	// HasActiveForVariant reports whether the variant appears in a booking
	// that is not cancelled.
	HasActiveForVariant(db *gorm.DB, variantID uuid.UUID) (bool, error)
}
