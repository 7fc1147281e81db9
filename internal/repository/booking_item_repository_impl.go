package repository

import (
	"petcare-facility-api/internal/domain/entity"
	domainRepo "petcare-facility-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingServiceItemRepository struct{}

func NewBookingServiceItemRepository() domainRepo.BookingServiceItemRepository {
	return &bookingServiceItemRepository{}
}

func (r *bookingServiceItemRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.BookingServiceItem, error) {
	return findByID[entity.BookingServiceItem](db, id)
}

func (r *bookingServiceItemRepository) HasAnyForVariant(db *gorm.DB, variantID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.BookingServiceItem{}).
		Where("service_variant_id = ?", variantID).
		Count(&count).Error
	return count > 0, err
}

func (r *bookingServiceItemRepository) HasActiveForVariant(db *gorm.DB, variantID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.BookingServiceItem{}).
		Joins("JOIN bookings ON bookings.id = booking_service_items.booking_id").
		Where("booking_service_items.service_variant_id = ? AND bookings.status != ?",
			variantID, entity.BookingStatusCancelled).
		Count(&count).Error
	return count > 0, err
}
