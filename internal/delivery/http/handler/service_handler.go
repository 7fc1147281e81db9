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

type ServiceHandler struct {
	serviceUsecase usecase.ServiceUsecase
	validator      *validator.CustomValidator
}

func NewServiceHandler(serviceUsecase usecase.ServiceUsecase, validator *validator.CustomValidator) *ServiceHandler {
	return &ServiceHandler{
		serviceUsecase: serviceUsecase,
		validator:      validator,
	}
}

func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	service, err := h.serviceUsecase.CreateService(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceIDExists:
			response.Conflict(w, "Service ID already exists")
		case usecase.ErrServiceNameExists:
			response.Conflict(w, "Service name already exists")
		case usecase.ErrServiceTypeNotValid:
			response.Error(w, http.StatusBadRequest, "Service type does not exist or is deleted", nil)
		default:
			response.InternalServerError(w, "Failed to create service")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Service created successfully", service)
}

func (h *ServiceHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	service, err := h.serviceUsecase.GetService(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to get service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service retrieved successfully", service)
}

func (h *ServiceHandler) GetAllServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.serviceUsecase.GetAllServices(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get services")
		return
	}

	if services.Total == 0 {
		response.NotFound(w, "No services found")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	var req dto.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	service, err := h.serviceUsecase.UpdateService(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		case usecase.ErrServiceNameExists:
			response.Conflict(w, "Service name already exists")
		case usecase.ErrServiceTypeNotValid:
			response.Error(w, http.StatusBadRequest, "Service type does not exist or is deleted", nil)
		default:
			response.InternalServerError(w, "Failed to update service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service updated successfully", service)
}

// UploadServiceImage accepts a multipart form with an "image" field and
// replaces the service's stored image.
func (h *ServiceHandler) UploadServiceImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Image file is required", nil)
		return
	}
	defer file.Close()

	service, err := h.serviceUsecase.UpdateServiceImage(r.Context(), id, file, header)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		case usecase.ErrInvalidImage:
			response.Error(w, http.StatusBadRequest, "Invalid image file", nil)
		default:
			response.InternalServerError(w, "Failed to upload service image")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service image uploaded successfully", service)
}

func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	phase, err := h.serviceUsecase.DeleteService(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		case usecase.ErrServiceHasVariants:
			response.Conflict(w, "Service still has variants")
		default:
			response.InternalServerError(w, "Failed to delete service")
		}
		return
	}

	message := "Service soft deleted"
	if phase == usecase.DeletePhaseHard {
		message = "Service deleted permanently"
	}
	response.Success(w, http.StatusOK, message, dto.DeleteResultResponse{Phase: string(phase)})
}
