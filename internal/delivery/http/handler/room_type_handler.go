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

type RoomTypeHandler struct {
	roomTypeUsecase usecase.RoomTypeUsecase
	validator       *validator.CustomValidator
}

func NewRoomTypeHandler(roomTypeUsecase usecase.RoomTypeUsecase, validator *validator.CustomValidator) *RoomTypeHandler {
	return &RoomTypeHandler{
		roomTypeUsecase: roomTypeUsecase,
		validator:       validator,
	}
}

func (h *RoomTypeHandler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRoomTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	roomType, err := h.roomTypeUsecase.CreateRoomType(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrRoomTypeIDExists:
			response.Conflict(w, "Room type ID already exists")
		case usecase.ErrRoomTypeNameExists:
			response.Conflict(w, "Room type name already exists")
		default:
			response.InternalServerError(w, "Failed to create room type")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Room type created successfully", roomType)
}

func (h *RoomTypeHandler) GetRoomType(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room type ID", nil)
		return
	}

	roomType, err := h.roomTypeUsecase.GetRoomType(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrRoomTypeNotFound:
			response.NotFound(w, "Room type not found")
		default:
			response.InternalServerError(w, "Failed to get room type")
		}
		return
	}

	response.Success(w, http.StatusOK, "Room type retrieved successfully", roomType)
}

func (h *RoomTypeHandler) GetAllRoomTypes(w http.ResponseWriter, r *http.Request) {
	roomTypes, err := h.roomTypeUsecase.GetAllRoomTypes(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get room types")
		return
	}

	if roomTypes.Total == 0 {
		response.NotFound(w, "No room types found")
		return
	}

	response.Success(w, http.StatusOK, "Room types retrieved successfully", roomTypes)
}

func (h *RoomTypeHandler) UpdateRoomType(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room type ID", nil)
		return
	}

	var req dto.UpdateRoomTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	roomType, err := h.roomTypeUsecase.UpdateRoomType(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrRoomTypeNotFound:
			response.NotFound(w, "Room type not found")
		case usecase.ErrRoomTypeNameExists:
			response.Conflict(w, "Room type name already exists")
		default:
			response.InternalServerError(w, "Failed to update room type")
		}
		return
	}

	response.Success(w, http.StatusOK, "Room type updated successfully", roomType)
}

func (h *RoomTypeHandler) DeleteRoomType(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room type ID", nil)
		return
	}

	phase, err := h.roomTypeUsecase.DeleteRoomType(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrRoomTypeNotFound:
			response.NotFound(w, "Room type not found")
		case usecase.ErrRoomTypeHasRooms:
			response.Conflict(w, "Room type still has rooms")
		default:
			response.InternalServerError(w, "Failed to delete room type")
		}
		return
	}

	message := "Room type soft deleted"
	if phase == usecase.DeletePhaseHard {
		message = "Room type deleted permanently"
	}
	response.Success(w, http.StatusOK, message, dto.DeleteResultResponse{Phase: string(phase)})
}
