package converter

import (
	"petcare-facility-api/internal/delivery/dto"
	"petcare-facility-api/internal/domain/entity"

	"github.com/google/uuid"
)

func RoomHistoryToResponse(history *entity.RoomHistory) *dto.RoomHistoryResponse {
	if history == nil {
		return nil
	}

	resp := &dto.RoomHistoryResponse{
		ID:                   history.ID,
		RoomID:               history.RoomID,
		BookingServiceItemID: history.BookingServiceItemID,
		CameraID:             history.CameraID,
		CheckInAt:            history.CheckInAt,
		CheckOutAt:           history.CheckOutAt,
		Status:               string(history.Status),
		CreatedAt:            history.CreatedAt,
		UpdatedAt:            history.UpdatedAt,
	}

	if history.Room.ID != uuid.Nil {
		resp.Room = RoomToResponse(&history.Room)
	}
	if history.Camera != nil {
		resp.Camera = CameraToResponse(history.Camera)
	}

	return resp
}

func RoomHistoriesToResponses(histories []entity.RoomHistory) []dto.RoomHistoryResponse {
	responses := make([]dto.RoomHistoryResponse, len(histories))
	for i := range histories {
		responses[i] = *RoomHistoryToResponse(&histories[i])
	}
	return responses
}
