package converter

import (
	"petcare-facility-api/internal/delivery/dto"
	"petcare-facility-api/internal/domain/entity"

	"github.com/google/uuid"
)

// RoomToResponse converts a Room entity to RoomResponse DTO. The nested
// room type is included only when it was preloaded.
func RoomToResponse(room *entity.Room) *dto.RoomResponse {
	if room == nil {
		return nil
	}

	resp := &dto.RoomResponse{
		ID:          room.ID,
		RoomTypeID:  room.RoomTypeID,
		Description: room.Description,
		Status:      string(room.Status),
		RoomImage:   room.RoomImage,
		HasCamera:   room.HasCamera,
		IsDeleted:   room.IsDeleted,
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
	}

	if room.RoomType.ID != uuid.Nil {
		resp.RoomType = RoomTypeToResponse(&room.RoomType)
	}

	return resp
}

// RoomsToResponses converts a slice of Room entities to DTOs
func RoomsToResponses(rooms []entity.Room) []dto.RoomResponse {
	responses := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		responses[i] = *RoomToResponse(&rooms[i])
	}
	return responses
}
