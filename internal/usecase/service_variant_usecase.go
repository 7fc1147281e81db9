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
	ErrVariantNotFound   = errors.New("service variant not found")
	ErrVariantIDExists   = errors.New("service variant id already exists")
	ErrServiceNotValid   = errors.New("service does not exist or is deleted")
	ErrVariantHasBooking = errors.New("service variant is referenced by booking items")
)

type ServiceVariantUsecase interface {
	CreateVariant(ctx context.Context, req *dto.CreateServiceVariantRequest) (*dto.ServiceVariantResponse, error)
	GetVariant(ctx context.Context, id uuid.UUID) (*dto.ServiceVariantResponse, error)
	GetAllVariants(ctx context.Context) (*dto.ServiceVariantListResponse, error)
	GetVariantsByService(ctx context.Context, serviceID uuid.UUID) (*dto.ServiceVariantListResponse, error)
	UpdateVariant(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceVariantRequest) (*dto.ServiceVariantResponse, error)
	DeleteVariant(ctx context.Context, id uuid.UUID) (DeletePhase, error)
}

type serviceVariantUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	variantRepo     repository.ServiceVariantRepository
	serviceRepo     repository.ServiceRepository
	bookingItemRepo repository.BookingServiceItemRepository
	auditService    service.AuditService
}

func NewServiceVariantUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	variantRepo repository.ServiceVariantRepository,
	serviceRepo repository.ServiceRepository,
	bookingItemRepo repository.BookingServiceItemRepository,
	auditService service.AuditService,
) ServiceVariantUsecase {
	return &serviceVariantUsecase{
		db:              db,
		log:             log,
		variantRepo:     variantRepo,
		serviceRepo:     serviceRepo,
		bookingItemRepo: bookingItemRepo,
		auditService:    auditService,
	}
}

func (u *serviceVariantUsecase) CreateVariant(ctx context.Context, req *dto.CreateServiceVariantRequest) (*dto.ServiceVariantResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	id := uuid.New()
	if req.ID != nil {
		id = *req.ID
		existing, err := u.variantRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to check variant id: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrVariantIDExists
		}
	}

	svc, err := u.serviceRepo.FindByID(tx, req.ServiceID)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if svc == nil || svc.IsDeleted {
		return nil, ErrServiceNotValid
	}

	variant := &entity.ServiceVariant{
		ID:        id,
		ServiceID: req.ServiceID,
		Content:   req.Content,
		Price:     req.Price,
		IsDeleted: false,
	}

	if err := u.variantRepo.Create(tx, variant); err != nil {
		if isDuplicateKeyError(err, "service_variants_pkey") {
			return nil, ErrVariantIDExists
		}
		u.log.Warnf("Failed to create service variant: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionVariantCreate, "service_variant", variant.ID.String(), converter.ServiceVariantToResponse(variant)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ServiceVariantToResponse(variant), nil
}

func (u *serviceVariantUsecase) GetVariant(ctx context.Context, id uuid.UUID) (*dto.ServiceVariantResponse, error) {
	variant, err := u.variantRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service variant: %+v", err)
		return nil, err
	}
	if variant == nil {
		return nil, ErrVariantNotFound
	}

	return converter.ServiceVariantToResponse(variant), nil
}

func (u *serviceVariantUsecase) GetAllVariants(ctx context.Context) (*dto.ServiceVariantListResponse, error) {
	variants, err := u.variantRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all service variants: %+v", err)
		return nil, err
	}

	responses := converter.ServiceVariantsToResponses(variants)

	return &dto.ServiceVariantListResponse{
		Variants: responses,
		Total:    len(responses),
	}, nil
}

func (u *serviceVariantUsecase) GetVariantsByService(ctx context.Context, serviceID uuid.UUID) (*dto.ServiceVariantListResponse, error) {
	variants, err := u.variantRepo.FindByServiceID(u.db.WithContext(ctx), serviceID)
	if err != nil {
		u.log.Warnf("Failed to find variants of service: %+v", err)
		return nil, err
	}

	responses := converter.ServiceVariantsToResponses(variants)

	return &dto.ServiceVariantListResponse{
		Variants: responses,
		Total:    len(responses),
	}, nil
}

func (u *serviceVariantUsecase) UpdateVariant(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceVariantRequest) (*dto.ServiceVariantResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	variant, err := u.variantRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service variant: %+v", err)
		return nil, err
	}
	if variant == nil || variant.IsDeleted {
		return nil, ErrVariantNotFound
	}

	oldValue := converter.ServiceVariantToResponse(variant)

	if req.Content != "" {
		variant.Content = req.Content
	}
	if req.Price != nil {
		variant.Price = *req.Price
	}

	if err := u.variantRepo.Update(tx, variant); err != nil {
		u.log.Warnf("Failed to update service variant: %+v", err)
		return nil, err
	}

	newValue := converter.ServiceVariantToResponse(variant)
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionVariantUpdate, "service_variant", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeleteVariant soft-deletes on the first call. The hard phase is refused
// while any booking item still references the variant, cancelled or not:
// removing the row would orphan booking history.
func (u *serviceVariantUsecase) DeleteVariant(ctx context.Context, id uuid.UUID) (DeletePhase, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	userID, _ := middleware.GetUserIDFromContext(ctx)

	affected, err := u.variantRepo.SoftDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to soft delete service variant: %+v", err)
		return "", err
	}

	if affected == 1 {
		if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionVariantDelete, "service_variant", id.String(), entity.JSON{"phase": "soft"}); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		if err := tx.Commit().Error; err != nil {
			u.log.Warnf("Failed commit transaction: %+v", err)
			return "", err
		}
		return DeletePhaseSoft, nil
	}

	variant, err := u.variantRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service variant: %+v", err)
		return "", err
	}
	if variant == nil {
		return "", ErrVariantNotFound
	}

	referenced, err := u.bookingItemRepo.HasAnyForVariant(tx, id)
	if err != nil {
		u.log.Warnf("Failed to check booking items of variant: %+v", err)
		return "", err
	}
	if referenced {
		return "", ErrVariantHasBooking
	}

	affected, err = u.variantRepo.HardDelete(tx, id)
	if err != nil {
		if isForeignKeyError(err, "service_variant") {
			return "", ErrVariantHasBooking
		}
		u.log.Warnf("Failed to hard delete service variant: %+v", err)
		return "", err
	}
	if affected == 0 {
		return "", ErrVariantNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionVariantDelete, "service_variant", id.String(), converter.ServiceVariantToResponse(variant)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return "", err
	}

	return DeletePhaseHard, nil
}
