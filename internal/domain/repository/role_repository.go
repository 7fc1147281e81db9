package repository

import (
	"petcare-facility-api/internal/domain/entity"

	"gorm.io/gorm"
)

type RoleRepository interface {
	FindByName(db *gorm.DB, name string) (*entity.Role, error)
}
