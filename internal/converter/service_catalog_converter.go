package converter

import (
	"petcare-facility-api/internal/delivery/dto"
	"petcare-facility-api/internal/domain/entity"

	"github.com/google/uuid"
)

func ServiceTypeToResponse(serviceType *entity.ServiceType) *dto.ServiceTypeResponse {
	if serviceType == nil {
		return nil
	}

	return &dto.ServiceTypeResponse{
		ID:          serviceType.ID,
		Name:        serviceType.Name,
		Description: serviceType.Description,
		IsDeleted:   serviceType.IsDeleted,
		CreatedAt:   serviceType.CreatedAt,
		UpdatedAt:   serviceType.UpdatedAt,
	}
}

func ServiceTypesToResponses(serviceTypes []entity.ServiceType) []dto.ServiceTypeResponse {
	responses := make([]dto.ServiceTypeResponse, len(serviceTypes))
	for i := range serviceTypes {
		responses[i] = *ServiceTypeToResponse(&serviceTypes[i])
	}
	return responses
}

func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	if service == nil {
		return nil
	}

	resp := &dto.ServiceResponse{
		ID:            service.ID,
		ServiceTypeID: service.ServiceTypeID,
		Name:          service.Name,
		Description:   service.Description,
		ServiceImage:  service.ServiceImage,
		IsDeleted:     service.IsDeleted,
		CreatedAt:     service.CreatedAt,
		UpdatedAt:     service.UpdatedAt,
	}

	if service.ServiceType.ID != uuid.Nil {
		resp.ServiceType = ServiceTypeToResponse(&service.ServiceType)
	}

	return resp
}

func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i := range services {
		responses[i] = *ServiceToResponse(&services[i])
	}
	return responses
}

func ServiceVariantToResponse(variant *entity.ServiceVariant) *dto.ServiceVariantResponse {
	if variant == nil {
		return nil
	}

	return &dto.ServiceVariantResponse{
		ID:        variant.ID,
		ServiceID: variant.ServiceID,
		Content:   variant.Content,
		Price:     variant.Price,
		IsDeleted: variant.IsDeleted,
		CreatedAt: variant.CreatedAt,
		UpdatedAt: variant.UpdatedAt,
	}
}

func ServiceVariantsToResponses(variants []entity.ServiceVariant) []dto.ServiceVariantResponse {
	responses := make([]dto.ServiceVariantResponse, len(variants))
	for i := range variants {
		responses[i] = *ServiceVariantToResponse(&variants[i])
	}
	return responses
}
