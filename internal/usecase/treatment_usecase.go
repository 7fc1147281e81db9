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
	ErrTreatmentNotFound = errors.New("treatment not found")
	ErrTreatmentIDExists = errors.New("treatment id already exists")
)

type TreatmentUsecase interface {
	CreateTreatment(ctx context.Context, req *dto.CreateTreatmentRequest) (*dto.TreatmentResponse, error)
	GetTreatment(ctx context.Context, id uuid.UUID) (*dto.TreatmentResponse, error)
	GetAllTreatments(ctx context.Context) (*dto.TreatmentListResponse, error)
	UpdateTreatment(ctx context.Context, id uuid.UUID, req *dto.UpdateTreatmentRequest) (*dto.TreatmentResponse, error)
	DeleteTreatment(ctx context.Context, id uuid.UUID) (DeletePhase, error)
}

type treatmentUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	treatmentRepo repository.TreatmentRepository
	auditService  service.AuditService
}

func NewTreatmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	treatmentRepo repository.TreatmentRepository,
	auditService service.AuditService,
) TreatmentUsecase {
	return &treatmentUsecase{
		db:            db,
		log:           log,
		treatmentRepo: treatmentRepo,
		auditService:  auditService,
	}
}

func (u *treatmentUsecase) CreateTreatment(ctx context.Context, req *dto.CreateTreatmentRequest) (*dto.TreatmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	id := uuid.New()
	if req.ID != nil {
		id = *req.ID
		existing, err := u.treatmentRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to check treatment id: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrTreatmentIDExists
		}
	}

	treatment := &entity.Treatment{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		IsDeleted:   false,
	}

	if err := u.treatmentRepo.Create(tx, treatment); err != nil {
		if isDuplicateKeyError(err, "treatments_pkey") {
			return nil, ErrTreatmentIDExists
		}
		u.log.Warnf("Failed to create treatment: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionTreatmentCreate, "treatment", treatment.ID.String(), converter.TreatmentToResponse(treatment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TreatmentToResponse(treatment), nil
}

func (u *treatmentUsecase) GetTreatment(ctx context.Context, id uuid.UUID) (*dto.TreatmentResponse, error) {
	treatment, err := u.treatmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find treatment: %+v", err)
		return nil, err
	}
	if treatment == nil {
		return nil, ErrTreatmentNotFound
	}

	return converter.TreatmentToResponse(treatment), nil
}

func (u *treatmentUsecase) GetAllTreatments(ctx context.Context) (*dto.TreatmentListResponse, error) {
	treatments, err := u.treatmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all treatments: %+v", err)
		return nil, err
	}

	responses := converter.TreatmentsToResponses(treatments)

	return &dto.TreatmentListResponse{
		Treatments: responses,
		Total:      len(responses),
	}, nil
}

func (u *treatmentUsecase) UpdateTreatment(ctx context.Context, id uuid.UUID, req *dto.UpdateTreatmentRequest) (*dto.TreatmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	treatment, err := u.treatmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find treatment: %+v", err)
		return nil, err
	}
	if treatment == nil || treatment.IsDeleted {
		return nil, ErrTreatmentNotFound
	}

	oldValue := converter.TreatmentToResponse(treatment)

	if req.Name != "" {
		treatment.Name = req.Name
	}
	if req.Description != nil {
		treatment.Description = *req.Description
	}

	if err := u.treatmentRepo.Update(tx, treatment); err != nil {
		u.log.Warnf("Failed to update treatment: %+v", err)
		return nil, err
	}

	newValue := converter.TreatmentToResponse(treatment)
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionTreatmentUpdate, "treatment", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *treatmentUsecase) DeleteTreatment(ctx context.Context, id uuid.UUID) (DeletePhase, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	userID, _ := middleware.GetUserIDFromContext(ctx)

	affected, err := u.treatmentRepo.SoftDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to soft delete treatment: %+v", err)
		return "", err
	}

	if affected == 1 {
		if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionTreatmentDelete, "treatment", id.String(), entity.JSON{"phase": "soft"}); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		if err := tx.Commit().Error; err != nil {
			u.log.Warnf("Failed commit transaction: %+v", err)
			return "", err
		}
		return DeletePhaseSoft, nil
	}

	treatment, err := u.treatmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find treatment: %+v", err)
		return "", err
	}
	if treatment == nil {
		return "", ErrTreatmentNotFound
	}

	affected, err = u.treatmentRepo.HardDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to hard delete treatment: %+v", err)
		return "", err
	}
	if affected == 0 {
		return "", ErrTreatmentNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionTreatmentDelete, "treatment", id.String(), converter.TreatmentToResponse(treatment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return "", err
	}

	return DeletePhaseHard, nil
}
