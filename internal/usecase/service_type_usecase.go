package usecase

import (
	"context"
	"errors"

	"petcare-facility-api/internal/converter"
	"petcare-facility-api/internal/delivery/dto"
	"petcare-facility-api/internal/delivery/http/middleware"
	"petcare-facility-api/internal/domain/entity"
	"petcare-facility-api/internal/domain/repository"
	"petcare-facility-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrServiceTypeNotFound    = errors.New("service type not found")
	ErrServiceTypeIDExists    = errors.New("service type id already exists")
	ErrServiceTypeHasServices = errors.New("service type still has services")
)

type ServiceTypeUsecase interface {
	CreateServiceType(ctx context.Context, req *dto.CreateServiceTypeRequest) (*dto.ServiceTypeResponse, error)
	GetServiceType(ctx context.Context, id uuid.UUID) (*dto.ServiceTypeResponse, error)
	GetAllServiceTypes(ctx context.Context) (*dto.ServiceTypeListResponse, error)
	UpdateServiceType(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceTypeRequest) (*dto.ServiceTypeResponse, error)
	DeleteServiceType(ctx context.Context, id uuid.UUID) (DeletePhase, error)
}

type serviceTypeUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	serviceTypeRepo repository.ServiceTypeRepository
	auditService    service.AuditService
}

func NewServiceTypeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceTypeRepo repository.ServiceTypeRepository,
	auditService service.AuditService,
) ServiceTypeUsecase {
	return &serviceTypeUsecase{
		db:              db,
		log:             log,
		serviceTypeRepo: serviceTypeRepo,
		auditService:    auditService,
	}
}

func (u *serviceTypeUsecase) CreateServiceType(ctx context.Context, req *dto.CreateServiceTypeRequest) (*dto.ServiceTypeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	id := uuid.New()
	if req.ID != nil {
		id = *req.ID
		existing, err := u.serviceTypeRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to check service type id: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrServiceTypeIDExists
		}
	}

	serviceType := &entity.ServiceType{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		IsDeleted:   false,
	}

	if err := u.serviceTypeRepo.Create(tx, serviceType); err != nil {
		if isDuplicateKeyError(err, "service_types_pkey") {
			return nil, ErrServiceTypeIDExists
		}
		u.log.Warnf("Failed to create service type: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionServiceTypeCreate, "service_type", serviceType.ID.String(), converter.ServiceTypeToResponse(serviceType)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ServiceTypeToResponse(serviceType), nil
}

func (u *serviceTypeUsecase) GetServiceType(ctx context.Context, id uuid.UUID) (*dto.ServiceTypeResponse, error) {
	serviceType, err := u.serviceTypeRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service type: %+v", err)
		return nil, err
	}
	if serviceType == nil {
		return nil, ErrServiceTypeNotFound
	}

	return converter.ServiceTypeToResponse(serviceType), nil
}

func (u *serviceTypeUsecase) GetAllServiceTypes(ctx context.Context) (*dto.ServiceTypeListResponse, error) {
	serviceTypes, err := u.serviceTypeRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all service types: %+v", err)
		return nil, err
	}

	responses := converter.ServiceTypesToResponses(serviceTypes)

	return &dto.ServiceTypeListResponse{
		ServiceTypes: responses,
		Total:        len(responses),
	}, nil
}

func (u *serviceTypeUsecase) UpdateServiceType(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceTypeRequest) (*dto.ServiceTypeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	serviceType, err := u.serviceTypeRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service type: %+v", err)
		return nil, err
	}
	if serviceType == nil || serviceType.IsDeleted {
		return nil, ErrServiceTypeNotFound
	}

	oldValue := converter.ServiceTypeToResponse(serviceType)

	if req.Name != "" {
		serviceType.Name = req.Name
	}
	if req.Description != nil {
		serviceType.Description = *req.Description
	}

	if err := u.serviceTypeRepo.Update(tx, serviceType); err != nil {
		u.log.Warnf("Failed to update service type: %+v", err)
		return nil, err
	}

	newValue := converter.ServiceTypeToResponse(serviceType)
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionServiceTypeUpdate, "service_type", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeleteServiceType refuses both phases while any non-deleted service still
// references the type.
func (u *serviceTypeUsecase) DeleteServiceType(ctx context.Context, id uuid.UUID) (DeletePhase, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	userID, _ := middleware.GetUserIDFromContext(ctx)

	active, err := u.serviceTypeRepo.CountActiveServices(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count services of type: %+v", err)
		return "", err
	}
	if active > 0 {
		return "", ErrServiceTypeHasServices
	}

	affected, err := u.serviceTypeRepo.SoftDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to soft delete service type: %+v", err)
		return "", err
	}

	if affected == 1 {
		if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionServiceTypeDelete, "service_type", id.String(), entity.JSON{"phase": "soft"}); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		if err := tx.Commit().Error; err != nil {
			u.log.Warnf("Failed commit transaction: %+v", err)
			return "", err
		}
		return DeletePhaseSoft, nil
	}

	serviceType, err := u.serviceTypeRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service type: %+v", err)
		return "", err
	}
	if serviceType == nil {
		return "", ErrServiceTypeNotFound
	}

	affected, err = u.serviceTypeRepo.HardDelete(tx, id)
	if err != nil {
		if isForeignKeyError(err, "service_type") {
			return "", ErrServiceTypeHasServices
		}
		u.log.Warnf("Failed to hard delete service type: %+v", err)
		return "", err
	}
	if affected == 0 {
		return "", ErrServiceTypeNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionServiceTypeDelete, "service_type", id.String(), converter.ServiceTypeToResponse(serviceType)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return "", err
	}

	return DeletePhaseHard, nil
}
