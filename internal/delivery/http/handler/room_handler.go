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

const maxMultipartMemory = 10 << 20

type RoomHandler struct {
	roomUsecase usecase.RoomUsecase
	validator   *validator.CustomValidator
}

func NewRoomHandler(roomUsecase usecase.RoomUsecase, validator *validator.CustomValidator) *RoomHandler {
	return &RoomHandler{
		roomUsecase: roomUsecase,
		validator:   validator,
	}
}

func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	room, err := h.roomUsecase.CreateRoom(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrRoomIDExists:
			response.Conflict(w, "Room ID already exists")
		case usecase.ErrRoomTypeInactive:
			response.Error(w, http.StatusBadRequest, "Room type does not exist or is deleted", nil)
		default:
			response.InternalServerError(w, "Failed to create room")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Room created successfully", room)
}

func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	room, err := h.roomUsecase.GetRoom(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrRoomNotFound:
			response.NotFound(w, "Room not found")
		default:
			response.InternalServerError(w, "Failed to get room")
		}
		return
	}

	response.Success(w, http.StatusOK, "Room retrieved successfully", room)
}

func (h *RoomHandler) GetAllRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomUsecase.GetAllRooms(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get rooms")
		return
	}

	if rooms.Total == 0 {
		response.NotFound(w, "No rooms found")
		return
	}

	response.Success(w, http.StatusOK, "Rooms retrieved successfully", rooms)
}

func (h *RoomHandler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomUsecase.GetAvailableRooms(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get available rooms")
		return
	}

	if rooms.Total == 0 {
		response.NotFound(w, "No available rooms found")
		return
	}

	response.Success(w, http.StatusOK, "Available rooms retrieved successfully", rooms)
}

func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	var req dto.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	room, err := h.roomUsecase.UpdateRoom(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrRoomNotFound:
			response.NotFound(w, "Room not found")
		case usecase.ErrRoomTypeInactive:
			response.Error(w, http.StatusBadRequest, "Room type does not exist or is deleted", nil)
		default:
			response.InternalServerError(w, "Failed to update room")
		}
		return
	}

	response.Success(w, http.StatusOK, "Room updated successfully", room)
}

// UploadRoomImage accepts a multipart form with an "image" field and replaces
// the room's stored image.
func (h *RoomHandler) UploadRoomImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
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

	room, err := h.roomUsecase.UpdateRoomImage(r.Context(), id, file, header)
	if err != nil {
		switch err {
		case usecase.ErrRoomNotFound:
			response.NotFound(w, "Room not found")
		case usecase.ErrInvalidImage:
			response.Error(w, http.StatusBadRequest, "Invalid image file", nil)
		default:
			response.InternalServerError(w, "Failed to upload room image")
		}
		return
	}

	response.Success(w, http.StatusOK, "Room image uploaded successfully", room)
}

func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	phase, err := h.roomUsecase.DeleteRoom(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrRoomNotFound:
			response.NotFound(w, "Room not found")
		default:
			response.InternalServerError(w, "Failed to delete room")
		}
		return
	}

	message := "Room soft deleted"
	if phase == usecase.DeletePhaseHard {
		message = "Room deleted permanently"
	}
	response.Success(w, http.StatusOK, message, dto.DeleteResultResponse{Phase: string(phase)})
}
