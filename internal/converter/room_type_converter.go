package converter

import (
	"petcare-facility-api/internal/delivery/dto"
	"petcare-facility-api/internal/domain/entity"
)

// RoomTypeToResponse converts a RoomType entity to RoomTypeResponse DTO
func RoomTypeToResponse(roomType *entity.RoomType) *dto.RoomTypeResponse {
	if roomType == nil {
		return nil
	}

	return &dto.RoomTypeResponse{
		ID:          roomType.ID,
		Name:        roomType.Name,
		Price:       roomType.Price,
		Description: roomType.Description,
		IsDeleted:   roomType.IsDeleted,
		CreatedAt:   roomType.CreatedAt,
		UpdatedAt:   roomType.UpdatedAt,
	}
}

// RoomTypesToResponses converts a slice of RoomType entities to DTOs
func RoomTypesToResponses(roomTypes []entity.RoomType) []dto.RoomTypeResponse {
	responses := make([]dto.RoomTypeResponse, len(roomTypes))
	for i := range roomTypes {
		responses[i] = *RoomTypeToResponse(&roomTypes[i])
	}
	return responses
}
