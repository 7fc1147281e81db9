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

type ServiceTypeHandler struct {
	serviceTypeUsecase usecase.ServiceTypeUsecase
	validator          *validator.CustomValidator
}

func NewServiceTypeHandler(serviceTypeUsecase usecase.ServiceTypeUsecase, validator *validator.CustomValidator) *ServiceTypeHandler {
	return &ServiceTypeHandler{
		serviceTypeUsecase: serviceTypeUsecase,
		validator:          validator,
	}
}

func (h *ServiceTypeHandler) CreateServiceType(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	serviceType, err := h.serviceTypeUsecase.CreateServiceType(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceTypeIDExists:
			response.Conflict(w, "Service type ID already exists")
		default:
			response.InternalServerError(w, "Failed to create service type")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Service type created successfully", serviceType)
}

func (h *ServiceTypeHandler) GetServiceType(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service type ID", nil)
		return
	}

	serviceType, err := h.serviceTypeUsecase.GetServiceType(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrServiceTypeNotFound:
			response.NotFound(w, "Service type not found")
		default:
			response.InternalServerError(w, "Failed to get service type")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service type retrieved successfully", serviceType)
}

func (h *ServiceTypeHandler) GetAllServiceTypes(w http.ResponseWriter, r *http.Request) {
	serviceTypes, err := h.serviceTypeUsecase.GetAllServiceTypes(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get service types")
		return
	}

	if serviceTypes.Total == 0 {
		response.NotFound(w, "No service types found")
		return
	}

	response.Success(w, http.StatusOK, "Service types retrieved successfully", serviceTypes)
}

func (h *ServiceTypeHandler) UpdateServiceType(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service type ID", nil)
		return
	}

	var req dto.UpdateServiceTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	serviceType, err := h.serviceTypeUsecase.UpdateServiceType(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceTypeNotFound:
			response.NotFound(w, "Service type not found")
		default:
			response.InternalServerError(w, "Failed to update service type")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service type updated successfully", serviceType)
}

func (h *ServiceTypeHandler) DeleteServiceType(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service type ID", nil)
		return
	}

	phase, err := h.serviceTypeUsecase.DeleteServiceType(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrServiceTypeNotFound:
			response.NotFound(w, "Service type not found")
		case usecase.ErrServiceTypeHasServices:
			response.Conflict(w, "Service type still has services")
		default:
			response.InternalServerError(w, "Failed to delete service type")
		}
		return
	}

	message := "Service type soft deleted"
	if phase == usecase.DeletePhaseHard {
		message = "Service type deleted permanently"
	}
	response.Success(w, http.StatusOK, message, dto.DeleteResultResponse{Phase: string(phase)})
}
