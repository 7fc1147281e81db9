package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Generic helpers shared by all entity repositories. Every soft-delete entity
// follows the same two-phase contract, so the conditional statements live
// here once instead of per repository.

func findByID[T any](db *gorm.DB, id uuid.UUID) (*T, error) {
	var row T
	err := db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func findActive[T any](db *gorm.DB, order string) ([]T, error) {
	var rows []T
	err := db.Where("is_deleted = ?", false).Order(order).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// softDeleteByID flips is_deleted on a live row only. The WHERE clause makes
// the flip atomic: two concurrent deletes cannot both observe affected=1.
func softDeleteByID[T any](db *gorm.DB, id uuid.UUID) (int64, error) {
	res := db.Model(new(T)).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	return res.RowsAffected, res.Error
}

// hardDeleteByID removes a row only when it is already soft-deleted.
func hardDeleteByID[T any](db *gorm.DB, id uuid.UUID) (int64, error) {
	res := db.Where("id = ? AND is_deleted = ?", id, true).Delete(new(T))
	return res.RowsAffected, res.Error
}
