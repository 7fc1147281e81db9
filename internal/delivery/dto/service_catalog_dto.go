package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceType

type CreateServiceTypeRequest struct {
	ID          *uuid.UUID `json:"id" validate:"omitempty"`
	Name        string     `json:"name" validate:"required,min=2"`
	Description string     `json:"description"`
}

type UpdateServiceTypeRequest struct {
	Name        string  `json:"name" validate:"omitempty,min=2"`
	Description *string `json:"description" validate:"omitempty"`
}

type ServiceTypeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsDeleted   bool      `json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ServiceTypeListResponse struct {
	ServiceTypes []ServiceTypeResponse `json:"service_types"`
	Total        int                   `json:"total"`
}

// Service

type CreateServiceRequest struct {
	ID            *uuid.UUID `json:"id" validate:"omitempty"`
	ServiceTypeID uuid.UUID  `json:"service_type_id" validate:"required"`
	Name          string     `json:"name" validate:"required,min=2"`
	Description   string     `json:"description"`
}

type UpdateServiceRequest struct {
	ServiceTypeID *uuid.UUID `json:"service_type_id" validate:"omitempty"`
	Name          string     `json:"name" validate:"omitempty,min=2"`
	Description   *string    `json:"description" validate:"omitempty"`
}

type ServiceResponse struct {
	ID            uuid.UUID            `json:"id"`
	ServiceTypeID uuid.UUID            `json:"service_type_id"`
	ServiceType   *ServiceTypeResponse `json:"service_type,omitempty"`
	Name          string               `json:"name"`
	Description   string               `json:"description,omitempty"`
	ServiceImage  string               `json:"service_image,omitempty"`
	IsDeleted     bool                 `json:"is_deleted"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

// ServiceVariant

type CreateServiceVariantRequest struct {
	ID        *uuid.UUID      `json:"id" validate:"omitempty"`
	ServiceID uuid.UUID       `json:"service_id" validate:"required"`
	Content   string          `json:"content" validate:"required,min=2"`
	Price     decimal.Decimal `json:"price" validate:"required"`
}

type UpdateServiceVariantRequest struct {
	Content string           `json:"content" validate:"omitempty,min=2"`
	Price   *decimal.Decimal `json:"price" validate:"omitempty"`
}

type ServiceVariantResponse struct {
	ID        uuid.UUID       `json:"id"`
	ServiceID uuid.UUID       `json:"service_id"`
	Content   string          `json:"content"`
	Price     decimal.Decimal `json:"price"`
	IsDeleted bool            `json:"is_deleted"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type ServiceVariantListResponse struct {
	Variants []ServiceVariantResponse `json:"variants"`
	Total    int                      `json:"total"`
}
