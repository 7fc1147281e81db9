package converter

import (
	"petcare-facility-api/internal/delivery/dto"
	"petcare-facility-api/internal/domain/entity"
)

func CameraToResponse(camera *entity.Camera) *dto.CameraResponse {
	if camera == nil {
		return nil
	}

	return &dto.CameraResponse{
		ID:        camera.ID,
		Type:      camera.Type,
		Code:      camera.Code,
		Status:    string(camera.Status),
		RTSPUrl:   camera.RTSPUrl,
		Address:   camera.Address,
		IsDeleted: camera.IsDeleted,
		CreatedAt: camera.CreatedAt,
		UpdatedAt: camera.UpdatedAt,
	}
}

func CamerasToResponses(cameras []entity.Camera) []dto.CameraResponse {
	responses := make([]dto.CameraResponse, len(cameras))
	for i := range cameras {
		responses[i] = *CameraToResponse(&cameras[i])
	}
	return responses
}
