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

type ServiceVariantHandler struct {
	variantUsecase usecase.ServiceVariantUsecase
	validator      *validator.CustomValidator
}

func NewServiceVariantHandler(variantUsecase usecase.ServiceVariantUsecase, validator *validator.CustomValidator) *ServiceVariantHandler {
	return &ServiceVariantHandler{
		variantUsecase: variantUsecase,
		validator:      validator,
	}
}

func (h *ServiceVariantHandler) CreateVariant(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceVariantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	variant, err := h.variantUsecase.CreateVariant(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrVariantIDExists:
			response.Conflict(w, "Service variant ID already exists")
		case usecase.ErrServiceNotValid:
			response.Error(w, http.StatusBadRequest, "Service does not exist or is deleted", nil)
		default:
			response.InternalServerError(w, "Failed to create service variant")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Service variant created successfully", variant)
}

func (h *ServiceVariantHandler) GetVariant(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service variant ID", nil)
		return
	}

	variant, err := h.variantUsecase.GetVariant(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrVariantNotFound:
			response.NotFound(w, "Service variant not found")
		default:
			response.InternalServerError(w, "Failed to get service variant")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service variant retrieved successfully", variant)
}

func (h *ServiceVariantHandler) GetAllVariants(w http.ResponseWriter, r *http.Request) {
	variants, err := h.variantUsecase.GetAllVariants(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get service variants")
		return
	}

	if variants.Total == 0 {
		response.NotFound(w, "No service variants found")
		return
	}

	response.Success(w, http.StatusOK, "Service variants retrieved successfully", variants)
}

func (h *ServiceVariantHandler) GetVariantsByService(w http.ResponseWriter, r *http.Request) {
	serviceID, err := uuid.Parse(mux.Vars(r)["serviceId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	variants, err := h.variantUsecase.GetVariantsByService(r.Context(), serviceID)
	if err != nil {
		response.InternalServerError(w, "Failed to get service variants")
		return
	}

	if variants.Total == 0 {
		response.NotFound(w, "No service variants found")
		return
	}

	response.Success(w, http.StatusOK, "Service variants retrieved successfully", variants)
}

func (h *ServiceVariantHandler) UpdateVariant(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service variant ID", nil)
		return
	}

	var req dto.UpdateServiceVariantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	variant, err := h.variantUsecase.UpdateVariant(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrVariantNotFound:
			response.NotFound(w, "Service variant not found")
		default:
			response.InternalServerError(w, "Failed to update service variant")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service variant updated successfully", variant)
}

func (h *ServiceVariantHandler) DeleteVariant(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service variant ID", nil)
		return
	}

	phase, err := h.variantUsecase.DeleteVariant(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrVariantNotFound:
			response.NotFound(w, "Service variant not found")
		case usecase.ErrVariantHasBooking:
			response.Conflict(w, "Service variant is referenced by booking items")
		default:
			response.InternalServerError(w, "Failed to delete service variant")
		}
		return
	}

	message := "Service variant soft deleted"
	if phase == usecase.DeletePhaseHard {
		message = "Service variant deleted permanently"
	}
	response.Success(w, http.StatusOK, message, dto.DeleteResultResponse{Phase: string(phase)})
}
