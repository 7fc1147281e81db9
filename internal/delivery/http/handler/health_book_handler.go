package handler

import (
	"encoding/json"
	"net/http"

	"petcare-facility-api/internal/delivery/dto"
	"petcare-facility-api/internal/usecase"
	"petcare-facility-api/pkg/response"
	"petcare-facility-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PetHealthBookHandler struct {
	healthBookUsecase usecase.PetHealthBookUsecase
	validator         *validator.CustomValidator
}

func NewPetHealthBookHandler(healthBookUsecase usecase.PetHealthBookUsecase, validator *validator.CustomValidator) *PetHealthBookHandler {
	return &PetHealthBookHandler{
		healthBookUsecase: healthBookUsecase,
		validator:         validator,
	}
}

func (h *PetHealthBookHandler) CreateHealthBook(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePetHealthBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	book, err := h.healthBookUsecase.CreateHealthBook(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrHealthBookIDExists:
			response.Conflict(w, "Health book entry ID already exists")
		case usecase.ErrBookingItemNotFound:
			response.NotFound(w, "Booking service item not found")
		case usecase.ErrMedicineNotValid:
			response.Error(w, http.StatusBadRequest, "Medicine does not exist or is deleted", nil)
		default:
			response.InternalServerError(w, "Failed to create health book entry")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Health book entry created successfully", book)
}

func (h *PetHealthBookHandler) GetHealthBook(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid health book entry ID", nil)
		return
	}

	book, err := h.healthBookUsecase.GetHealthBook(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrHealthBookNotFound:
			response.NotFound(w, "Health book entry not found")
		default:
			response.InternalServerError(w, "Failed to get health book entry")
		}
		return
	}

	response.Success(w, http.StatusOK, "Health book entry retrieved successfully", book)
}

func (h *PetHealthBookHandler) GetAllHealthBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.healthBookUsecase.GetAllHealthBooks(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get health book entries")
		return
	}

	if books.Total == 0 {
		response.NotFound(w, "No health book entries found")
		return
	}

	response.Success(w, http.StatusOK, "Health book entries retrieved successfully", books)
}

func (h *PetHealthBookHandler) GetHealthBooksByBookingItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(mux.Vars(r)["itemId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking service item ID", nil)
		return
	}

	books, err := h.healthBookUsecase.GetHealthBooksByBookingItem(r.Context(), itemID)
	if err != nil {
		response.InternalServerError(w, "Failed to get health book entries")
		return
	}

	if books.Total == 0 {
		response.NotFound(w, "No health book entries found")
		return
	}

	response.Success(w, http.StatusOK, "Health book entries retrieved successfully", books)
}

func (h *PetHealthBookHandler) UpdateHealthBook(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid health book entry ID", nil)
		return
	}

	var req dto.UpdatePetHealthBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	book, err := h.healthBookUsecase.UpdateHealthBook(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrHealthBookNotFound:
			response.NotFound(w, "Health book entry not found")
		case usecase.ErrMedicineNotValid:
			response.Error(w, http.StatusBadRequest, "Medicine does not exist or is deleted", nil)
		default:
			response.InternalServerError(w, "Failed to update health book entry")
		}
		return
	}

	response.Success(w, http.StatusOK, "Health book entry updated successfully", book)
}

func (h *PetHealthBookHandler) DeleteHealthBook(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid health book entry ID", nil)
		return
	}

	phase, err := h.healthBookUsecase.DeleteHealthBook(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrHealthBookNotFound:
			response.NotFound(w, "Health book entry not found")
		default:
			response.InternalServerError(w, "Failed to delete health book entry")
		}
		return
	}

	message := "Health book entry soft deleted"
	if phase == usecase.DeletePhaseHard {
		message = "Health book entry deleted permanently"
	}
	response.Success(w, http.StatusOK, message, dto.DeleteResultResponse{Phase: string(phase)})
}
