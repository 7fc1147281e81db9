package repository

import (
	"petcare-facility-api/internal/domain/entity"
	domainRepo "petcare-facility-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type petHealthBookRepository struct{}

func NewPetHealthBookRepository() domainRepo.PetHealthBookRepository {
	return &petHealthBookRepository{}
}

func (r *petHealthBookRepository) Create(db *gorm.DB, book *entity.PetHealthBook) error {
	return db.Create(book).Error
}

func (r *petHealthBookRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.PetHealthBook, error) {
	return findByID[entity.PetHealthBook](db, id)
}

func (r *petHealthBookRepository) FindAll(db *gorm.DB) ([]entity.PetHealthBook, error) {
	return findActive[entity.PetHealthBook](db, "visit_date DESC")
}

func (r *petHealthBookRepository) FindByBookingServiceItemID(db *gorm.DB, itemID uuid.UUID) ([]entity.PetHealthBook, error) {
	var books []entity.PetHealthBook
	err := db.Where("booking_service_item_id = ? AND is_deleted = ?", itemID, false).
		Order("visit_date DESC").
		Find(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}

func (r *petHealthBookRepository) Update(db *gorm.DB, book *entity.PetHealthBook) error {
	return db.Omit("BookingServiceItem").Save(book).Error
}

func (r *petHealthBookRepository) SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return softDeleteByID[entity.PetHealthBook](db, id)
}

func (r *petHealthBookRepository) HardDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return hardDeleteByID[entity.PetHealthBook](db, id)
}
