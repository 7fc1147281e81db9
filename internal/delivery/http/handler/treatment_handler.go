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

type TreatmentHandler struct {
	treatmentUsecase usecase.TreatmentUsecase
	validator        *validator.CustomValidator
}

func NewTreatmentHandler(treatmentUsecase usecase.TreatmentUsecase, validator *validator.CustomValidator) *TreatmentHandler {
	return &TreatmentHandler{
		treatmentUsecase: treatmentUsecase,
		validator:        validator,
	}
}

func (h *TreatmentHandler) CreateTreatment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	treatment, err := h.treatmentUsecase.CreateTreatment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentIDExists:
			response.Conflict(w, "Treatment ID already exists")
		default:
			response.InternalServerError(w, "Failed to create treatment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Treatment created successfully", treatment)
}

func (h *TreatmentHandler) GetTreatment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid treatment ID", nil)
		return
	}

	treatment, err := h.treatmentUsecase.GetTreatment(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentNotFound:
			response.NotFound(w, "Treatment not found")
		default:
			response.InternalServerError(w, "Failed to get treatment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment retrieved successfully", treatment)
}

func (h *TreatmentHandler) GetAllTreatments(w http.ResponseWriter, r *http.Request) {
	treatments, err := h.treatmentUsecase.GetAllTreatments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get treatments")
		return
	}

	if treatments.Total == 0 {
		response.NotFound(w, "No treatments found")
		return
	}

	response.Success(w, http.StatusOK, "Treatments retrieved successfully", treatments)
}

func (h *TreatmentHandler) UpdateTreatment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid treatment ID", nil)
		return
	}

	var req dto.UpdateTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	treatment, err := h.treatmentUsecase.UpdateTreatment(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentNotFound:
			response.NotFound(w, "Treatment not found")
		default:
			response.InternalServerError(w, "Failed to update treatment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment updated successfully", treatment)
}

func (h *TreatmentHandler) DeleteTreatment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid treatment ID", nil)
		return
	}

	phase, err := h.treatmentUsecase.DeleteTreatment(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentNotFound:
			response.NotFound(w, "Treatment not found")
		default:
			response.InternalServerError(w, "Failed to delete treatment")
		}
		return
	}

	message := "Treatment soft deleted"
	if phase == usecase.DeletePhaseHard {
		message = "Treatment deleted permanently"
	}
	response.Success(w, http.StatusOK, message, dto.DeleteResultResponse{Phase: string(phase)})
}
