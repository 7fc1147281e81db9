package dto

import (
	"time"

	"github.com/google/uuid"
)

// Medicine

type CreateMedicineRequest struct {
	ID          *uuid.UUID `json:"id" validate:"omitempty"`
	Name        string     `json:"name" validate:"required,min=2"`
	Description string     `json:"description"`
	Dosage      string     `json:"dosage"`
}

type UpdateMedicineRequest struct {
	Name        string  `json:"name" validate:"omitempty,min=2"`
	Description *string `json:"description" validate:"omitempty"`
	Dosage      *string `json:"dosage" validate:"omitempty"`
}

type MedicineResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Dosage      string    `json:"dosage,omitempty"`
	IsDeleted   bool      `json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MedicineListResponse struct {
	Medicines []MedicineResponse `json:"medicines"`
	Total     int                `json:"total"`
}

// Treatment

type CreateTreatmentRequest struct {
	ID          *uuid.UUID `json:"id" validate:"omitempty"`
	Name        string     `json:"name" validate:"required,min=2"`
	Description string     `json:"description"`
}

type UpdateTreatmentRequest struct {
	Name        string  `json:"name" validate:"omitempty,min=2"`
	Description *string `json:"description" validate:"omitempty"`
}

type TreatmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsDeleted   bool      `json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TreatmentListResponse struct {
	Treatments []TreatmentResponse `json:"treatments"`
	Total      int                 `json:"total"`
}

// PetHealthBook

type CreatePetHealthBookRequest struct {
	ID                   *uuid.UUID  `json:"id" validate:"omitempty"`
	BookingServiceItemID uuid.UUID   `json:"booking_service_item_id" validate:"required"`
	MedicineIDs          []uuid.UUID `json:"medicine_ids" validate:"required,min=1"`
	VisitDate            time.Time   `json:"visit_date" validate:"required"`
	NextVisitDate        *time.Time  `json:"next_visit_date" validate:"omitempty"`
	PerformBy            string      `json:"perform_by" validate:"required,min=2"`
}

type UpdatePetHealthBookRequest struct {
	MedicineIDs   []uuid.UUID `json:"medicine_ids" validate:"omitempty,min=1"`
	VisitDate     *time.Time  `json:"visit_date" validate:"omitempty"`
	NextVisitDate *time.Time  `json:"next_visit_date" validate:"omitempty"`
	PerformBy     string      `json:"perform_by" validate:"omitempty,min=2"`
}

type PetHealthBookResponse struct {
	ID                   uuid.UUID   `json:"id"`
	BookingServiceItemID uuid.UUID   `json:"booking_service_item_id"`
	MedicineIDs          []uuid.UUID `json:"medicine_ids"`
	VisitDate            time.Time   `json:"visit_date"`
	NextVisitDate        *time.Time  `json:"next_visit_date,omitempty"`
	PerformBy            string      `json:"perform_by"`
	IsDeleted            bool        `json:"is_deleted"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

type PetHealthBookListResponse struct {
	HealthBooks []PetHealthBookResponse `json:"health_books"`
	Total       int                     `json:"total"`
}
