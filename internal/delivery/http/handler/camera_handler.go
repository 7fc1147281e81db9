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

type CameraHandler struct {
	cameraUsecase usecase.CameraUsecase
	validator     *validator.CustomValidator
}

func NewCameraHandler(cameraUsecase usecase.CameraUsecase, validator *validator.CustomValidator) *CameraHandler {
	return &CameraHandler{
		cameraUsecase: cameraUsecase,
		validator:     validator,
	}
}

func (h *CameraHandler) CreateCamera(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCameraRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	camera, err := h.cameraUsecase.CreateCamera(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrCameraIDExists:
			response.Conflict(w, "Camera ID already exists")
		case usecase.ErrCameraCodeExists:
			response.Conflict(w, "Camera code already exists")
		default:
			response.InternalServerError(w, "Failed to create camera")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Camera created successfully", camera)
}

func (h *CameraHandler) GetCamera(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid camera ID", nil)
		return
	}

	camera, err := h.cameraUsecase.GetCamera(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrCameraNotFound:
			response.NotFound(w, "Camera not found")
		default:
			response.InternalServerError(w, "Failed to get camera")
		}
		return
	}

	response.Success(w, http.StatusOK, "Camera retrieved successfully", camera)
}

func (h *CameraHandler) GetAllCameras(w http.ResponseWriter, r *http.Request) {
	cameras, err := h.cameraUsecase.GetAllCameras(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get cameras")
		return
	}

	if cameras.Total == 0 {
		response.NotFound(w, "No cameras found")
		return
	}

	response.Success(w, http.StatusOK, "Cameras retrieved successfully", cameras)
}

func (h *CameraHandler) GetAvailableCameras(w http.ResponseWriter, r *http.Request) {
	cameras, err := h.cameraUsecase.GetAvailableCameras(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get available cameras")
		return
	}

	if cameras.Total == 0 {
		response.NotFound(w, "No available cameras found")
		return
	}

	response.Success(w, http.StatusOK, "Available cameras retrieved successfully", cameras)
}

func (h *CameraHandler) UpdateCamera(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid camera ID", nil)
		return
	}

	var req dto.UpdateCameraRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	camera, err := h.cameraUsecase.UpdateCamera(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrCameraNotFound:
			response.NotFound(w, "Camera not found")
		default:
			response.InternalServerError(w, "Failed to update camera")
		}
		return
	}

	response.Success(w, http.StatusOK, "Camera updated successfully", camera)
}

func (h *CameraHandler) DeleteCamera(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid camera ID", nil)
		return
	}

	phase, err := h.cameraUsecase.DeleteCamera(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrCameraNotFound:
			response.NotFound(w, "Camera not found")
		case usecase.ErrCameraInUse:
			response.Conflict(w, "Camera is assigned to an open occupancy")
		default:
			response.InternalServerError(w, "Failed to delete camera")
		}
		return
	}

	message := "Camera soft deleted"
	if phase == usecase.DeletePhaseHard {
		message = "Camera deleted permanently"
	}
	response.Success(w, http.StatusOK, message, dto.DeleteResultResponse{Phase: string(phase)})
}
