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
	ErrCameraNotFound   = errors.New("camera not found")
	ErrCameraIDExists   = errors.New("camera id already exists")
	ErrCameraCodeExists = errors.New("camera code already exists")
	ErrCameraInUse      = errors.New("camera is assigned to an open occupancy")
)

type CameraUsecase interface {
	CreateCamera(ctx context.Context, req *dto.CreateCameraRequest) (*dto.CameraResponse, error)
	GetCamera(ctx context.Context, id uuid.UUID) (*dto.CameraResponse, error)
	GetAllCameras(ctx context.Context) (*dto.CameraListResponse, error)
	GetAvailableCameras(ctx context.Context) (*dto.CameraListResponse, error)
	UpdateCamera(ctx context.Context, id uuid.UUID, req *dto.UpdateCameraRequest) (*dto.CameraResponse, error)
	DeleteCamera(ctx context.Context, id uuid.UUID) (DeletePhase, error)
}

type cameraUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	cameraRepo   repository.CameraRepository
	historyRepo  repository.RoomHistoryRepository
	auditService service.AuditService
}

func NewCameraUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cameraRepo repository.CameraRepository,
	historyRepo repository.RoomHistoryRepository,
	auditService service.AuditService,
) CameraUsecase {
	return &cameraUsecase{
		db:           db,
		log:          log,
		cameraRepo:   cameraRepo,
		historyRepo:  historyRepo,
		auditService: auditService,
	}
}

func (u *cameraUsecase) CreateCamera(ctx context.Context, req *dto.CreateCameraRequest) (*dto.CameraResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	id := uuid.New()
	if req.ID != nil {
		id = *req.ID
		existing, err := u.cameraRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to check camera id: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrCameraIDExists
		}
	}

	byCode, err := u.cameraRepo.FindByCode(tx, req.Code)
	if err != nil {
		u.log.Warnf("Failed to check camera code: %+v", err)
		return nil, err
	}
	if byCode != nil {
		return nil, ErrCameraCodeExists
	}

	camera := &entity.Camera{
		ID:        id,
		Type:      req.Type,
		Code:      req.Code,
		Status:    entity.CameraStatusOffline,
		RTSPUrl:   req.RTSPUrl,
		Address:   req.Address,
		IsDeleted: false,
	}

	if err := u.cameraRepo.Create(tx, camera); err != nil {
		if isDuplicateKeyError(err, "cameras_pkey") {
			return nil, ErrCameraIDExists
		}
		u.log.Warnf("Failed to create camera: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionCameraCreate, "camera", camera.ID.String(), converter.CameraToResponse(camera)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.CameraToResponse(camera), nil
}

func (u *cameraUsecase) GetCamera(ctx context.Context, id uuid.UUID) (*dto.CameraResponse, error) {
	camera, err := u.cameraRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find camera: %+v", err)
		return nil, err
	}
	if camera == nil {
		return nil, ErrCameraNotFound
	}

	return converter.CameraToResponse(camera), nil
}

func (u *cameraUsecase) GetAllCameras(ctx context.Context) (*dto.CameraListResponse, error) {
	cameras, err := u.cameraRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all cameras: %+v", err)
		return nil, err
	}

	responses := converter.CamerasToResponses(cameras)

	return &dto.CameraListResponse{
		Cameras: responses,
		Total:   len(responses),
	}, nil
}

func (u *cameraUsecase) GetAvailableCameras(ctx context.Context) (*dto.CameraListResponse, error) {
	cameras, err := u.cameraRepo.FindAvailable(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find available cameras: %+v", err)
		return nil, err
	}

	responses := converter.CamerasToResponses(cameras)

	return &dto.CameraListResponse{
		Cameras: responses,
		Total:   len(responses),
	}, nil
}

func (u *cameraUsecase) UpdateCamera(ctx context.Context, id uuid.UUID, req *dto.UpdateCameraRequest) (*dto.CameraResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	camera, err := u.cameraRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find camera: %+v", err)
		return nil, err
	}
	if camera == nil || camera.IsDeleted {
		return nil, ErrCameraNotFound
	}

	oldValue := converter.CameraToResponse(camera)

	if req.Type != "" {
		camera.Type = req.Type
	}
	if req.Status != "" {
		camera.Status = entity.CameraStatus(req.Status)
	}
	if req.RTSPUrl != "" {
		camera.RTSPUrl = req.RTSPUrl
	}
	if req.Address != nil {
		camera.Address = *req.Address
	}

	if err := u.cameraRepo.Update(tx, camera); err != nil {
		u.log.Warnf("Failed to update camera: %+v", err)
		return nil, err
	}

	newValue := converter.CameraToResponse(camera)
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionCameraUpdate, "camera", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeleteCamera refuses both phases while an open occupancy holds the camera.
func (u *cameraUsecase) DeleteCamera(ctx context.Context, id uuid.UUID) (DeletePhase, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	userID, _ := middleware.GetUserIDFromContext(ctx)

	open, err := u.historyRepo.CountOpenByCameraID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count open occupancies of camera: %+v", err)
		return "", err
	}
	if open > 0 {
		return "", ErrCameraInUse
	}

	affected, err := u.cameraRepo.SoftDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to soft delete camera: %+v", err)
		return "", err
	}

	if affected == 1 {
		if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionCameraDelete, "camera", id.String(), entity.JSON{"phase": "soft"}); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		if err := tx.Commit().Error; err != nil {
			u.log.Warnf("Failed commit transaction: %+v", err)
			return "", err
		}
		return DeletePhaseSoft, nil
	}

	camera, err := u.cameraRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find camera: %+v", err)
		return "", err
	}
	if camera == nil {
		return "", ErrCameraNotFound
	}

	affected, err = u.cameraRepo.HardDelete(tx, id)
	if err != nil {
		if isForeignKeyError(err, "camera") {
			return "", ErrCameraInUse
		}
		u.log.Warnf("Failed to hard delete camera: %+v", err)
		return "", err
	}
	if affected == 0 {
		return "", ErrCameraNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionCameraDelete, "camera", id.String(), converter.CameraToResponse(camera)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return "", err
	}

	return DeletePhaseHard, nil
}
