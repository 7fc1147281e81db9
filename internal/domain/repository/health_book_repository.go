package repository

import (
	"petcare-facility-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PetHealthBookRepository interface {
	Create(db *gorm.DB, book *entity.PetHealthBook) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.PetHealthBook, error)
	FindAll(db *gorm.DB) ([]entity.PetHealthBook, error)
	FindByBookingServiceItemID(db *gorm.DB, itemID uuid.UUID) ([]entity.PetHealthBook, error)
	Update(db *gorm.DB, book *entity.PetHealthBook) error
	SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	HardDelete(db *gorm.DB, id uuid.UUID) (int64, error)
}
