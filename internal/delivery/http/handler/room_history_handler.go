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

type RoomHistoryHandler struct {
	historyUsecase usecase.RoomHistoryUsecase
	validator      *validator.CustomValidator
}

func NewRoomHistoryHandler(historyUsecase usecase.RoomHistoryUsecase, validator *validator.CustomValidator) *RoomHistoryHandler {
	return &RoomHistoryHandler{
		historyUsecase: historyUsecase,
		validator:      validator,
	}
}

func (h *RoomHistoryHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	history, err := h.historyUsecase.CheckIn(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrRoomNotAvailable:
			response.Conflict(w, "Room is not available for check-in")
		case usecase.ErrBookingItemNotFound:
			response.NotFound(w, "Booking service item not found")
		case usecase.ErrCameraNotValid:
			response.Error(w, http.StatusBadRequest, "Camera does not exist or is deleted", nil)
		default:
			response.InternalServerError(w, "Failed to check in")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Checked in successfully", history)
}

func (h *RoomHistoryHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room history ID", nil)
		return
	}

	history, err := h.historyUsecase.CheckOut(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrHistoryNotFound:
			response.NotFound(w, "Room history not found")
		case usecase.ErrOccupancyNotOpen:
			response.Conflict(w, "Occupancy is not open")
		default:
			response.InternalServerError(w, "Failed to check out")
		}
		return
	}

	response.Success(w, http.StatusOK, "Checked out successfully", history)
}

func (h *RoomHistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room history ID", nil)
		return
	}

	history, err := h.historyUsecase.GetHistory(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrHistoryNotFound:
			response.NotFound(w, "Room history not found")
		default:
			response.InternalServerError(w, "Failed to get room history")
		}
		return
	}

	response.Success(w, http.StatusOK, "Room history retrieved successfully", history)
}

func (h *RoomHistoryHandler) GetHistoriesByRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(mux.Vars(r)["roomId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	histories, err := h.historyUsecase.GetHistoriesByRoom(r.Context(), roomID)
	if err != nil {
		response.InternalServerError(w, "Failed to get room histories")
		return
	}

	if histories.Total == 0 {
		response.NotFound(w, "No room histories found")
		return
	}

	response.Success(w, http.StatusOK, "Room histories retrieved successfully", histories)
}

func (h *RoomHistoryHandler) GetOpenOccupancies(w http.ResponseWriter, r *http.Request) {
	histories, err := h.historyUsecase.GetOpenOccupancies(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get open occupancies")
		return
	}

	if histories.Total == 0 {
		response.NotFound(w, "No open occupancies found")
		return
	}

	response.Success(w, http.StatusOK, "Open occupancies retrieved successfully", histories)
}
