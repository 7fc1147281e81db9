package usecase

import (
	"context"
	"errors"
	"mime/multipart"

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
	ErrServiceNotFound     = errors.New("service not found")
	ErrServiceIDExists     = errors.New("service id already exists")
	ErrServiceNameExists   = errors.New("service name already exists")
	ErrServiceTypeNotValid = errors.New("service type does not exist or is deleted")
	ErrServiceHasVariants  = errors.New("service still has variants")
)

const serviceImageSubdir = "services"

type ServiceUsecase interface {
	CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetService(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error)
	GetAllServices(ctx context.Context) (*dto.ServiceListResponse, error)
	UpdateService(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	UpdateServiceImage(ctx context.Context, id uuid.UUID, file multipart.File, header *multipart.FileHeader) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, id uuid.UUID) (DeletePhase, error)
}

type serviceUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	serviceRepo     repository.ServiceRepository
	serviceTypeRepo repository.ServiceTypeRepository
	variantRepo     repository.ServiceVariantRepository
	imageService    *service.ImageService
	auditService    service.AuditService
}

func NewServiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	serviceTypeRepo repository.ServiceTypeRepository,
	variantRepo repository.ServiceVariantRepository,
	imageService *service.ImageService,
	auditService service.AuditService,
) ServiceUsecase {
	return &serviceUsecase{
		db:              db,
		log:             log,
		serviceRepo:     serviceRepo,
		serviceTypeRepo: serviceTypeRepo,
		variantRepo:     variantRepo,
		imageService:    imageService,
		auditService:    auditService,
	}
}

func (u *serviceUsecase) CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	id := uuid.New()
	if req.ID != nil {
		id = *req.ID
		existing, err := u.serviceRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to check service id: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrServiceIDExists
		}
	}

	serviceType, err := u.serviceTypeRepo.FindByID(tx, req.ServiceTypeID)
	if err != nil {
		u.log.Warnf("Failed to find service type: %+v", err)
		return nil, err
	}
	if serviceType == nil || serviceType.IsDeleted {
		return nil, ErrServiceTypeNotValid
	}

	byName, err := u.serviceRepo.FindByName(tx, req.Name)
	if err != nil {
		u.log.Warnf("Failed to check service name: %+v", err)
		return nil, err
	}
	if byName != nil {
		return nil, ErrServiceNameExists
	}

	svc := &entity.Service{
		ID:            id,
		ServiceTypeID: req.ServiceTypeID,
		Name:          req.Name,
		Description:   req.Description,
		IsDeleted:     false,
	}

	if err := u.serviceRepo.Create(tx, svc); err != nil {
		if isDuplicateKeyError(err, "services_pkey") {
			return nil, ErrServiceIDExists
		}
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionServiceCreate, "service", svc.ID.String(), converter.ServiceToResponse(svc)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) GetService(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error) {
	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) GetAllServices(ctx context.Context) (*dto.ServiceListResponse, error) {
	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all services: %+v", err)
		return nil, err
	}

	responses := converter.ServicesToResponses(services)

	return &dto.ServiceListResponse{
		Services: responses,
		Total:    len(responses),
	}, nil
}

func (u *serviceUsecase) UpdateService(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	svc, err := u.serviceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if svc == nil || svc.IsDeleted {
		return nil, ErrServiceNotFound
	}

	oldValue := converter.ServiceToResponse(svc)

	if req.ServiceTypeID != nil && *req.ServiceTypeID != svc.ServiceTypeID {
		serviceType, err := u.serviceTypeRepo.FindByID(tx, *req.ServiceTypeID)
		if err != nil {
			u.log.Warnf("Failed to find service type: %+v", err)
			return nil, err
		}
		if serviceType == nil || serviceType.IsDeleted {
			return nil, ErrServiceTypeNotValid
		}
		svc.ServiceTypeID = *req.ServiceTypeID
	}
	if req.Name != "" {
		byName, err := u.serviceRepo.FindByName(tx, req.Name)
		if err != nil {
			u.log.Warnf("Failed to check service name: %+v", err)
			return nil, err
		}
		if byName != nil && byName.ID != id {
			return nil, ErrServiceNameExists
		}
		svc.Name = req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}

	if err := u.serviceRepo.Update(tx, svc); err != nil {
		u.log.Warnf("Failed to update service: %+v", err)
		return nil, err
	}

	newValue := converter.ServiceToResponse(svc)
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionServiceUpdate, "service", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *serviceUsecase) UpdateServiceImage(ctx context.Context, id uuid.UUID, file multipart.File, header *multipart.FileHeader) (*dto.ServiceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	svc, err := u.serviceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if svc == nil || svc.IsDeleted {
		return nil, ErrServiceNotFound
	}

	path, err := u.imageService.Replace(file, header, serviceImageSubdir, svc.ServiceImage)
	if err != nil {
		u.log.Warnf("Failed to store service image: %+v", err)
		return nil, ErrInvalidImage
	}

	svc.ServiceImage = path
	if err := u.serviceRepo.Update(tx, svc); err != nil {
		u.log.Warnf("Failed to update service image path: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ServiceToResponse(svc), nil
}

// DeleteService soft-deletes the service and cascades to its variants on the
// first call. The second call hard-deletes but only once no variant row
// references the service at all.
func (u *serviceUsecase) DeleteService(ctx context.Context, id uuid.UUID) (DeletePhase, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	userID, _ := middleware.GetUserIDFromContext(ctx)

	affected, err := u.serviceRepo.SoftDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to soft delete service: %+v", err)
		return "", err
	}

	if affected == 1 {
		cascaded, err := u.variantRepo.SoftDeleteByServiceID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to cascade soft delete to variants: %+v", err)
			return "", err
		}

		if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionServiceDelete, "service", id.String(), entity.JSON{"phase": "soft", "variants_cascaded": cascaded}); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}

		if err := tx.Commit().Error; err != nil {
			u.log.Warnf("Failed commit transaction: %+v", err)
			return "", err
		}
		return DeletePhaseSoft, nil
	}

	svc, err := u.serviceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return "", err
	}
	if svc == nil {
		return "", ErrServiceNotFound
	}

	hasVariants, err := u.serviceRepo.HasVariants(tx, id)
	if err != nil {
		u.log.Warnf("Failed to check service variants: %+v", err)
		return "", err
	}
	if hasVariants {
		return "", ErrServiceHasVariants
	}

	affected, err = u.serviceRepo.HardDelete(tx, id)
	if err != nil {
		if isForeignKeyError(err, "service") {
			return "", ErrServiceHasVariants
		}
		u.log.Warnf("Failed to hard delete service: %+v", err)
		return "", err
	}
	if affected == 0 {
		return "", ErrServiceNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionServiceDelete, "service", id.String(), converter.ServiceToResponse(svc)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return "", err
	}

	if svc.ServiceImage != "" {
		if err := u.imageService.Remove(svc.ServiceImage); err != nil {
			u.log.Warnf("Failed to remove service image %s: %+v", svc.ServiceImage, err)
		}
	}

	return DeletePhaseHard, nil
}
