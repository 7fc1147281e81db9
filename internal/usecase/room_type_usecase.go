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
	ErrRoomTypeNotFound   = errors.New("room type not found")
	ErrRoomTypeIDExists   = errors.New("room type id already exists")
	ErrRoomTypeNameExists = errors.New("room type name already exists")
	ErrRoomTypeHasRooms   = errors.New("room type still has rooms")
)

type RoomTypeUsecase interface {
	CreateRoomType(ctx context.Context, req *dto.CreateRoomTypeRequest) (*dto.RoomTypeResponse, error)
	GetRoomType(ctx context.Context, id uuid.UUID) (*dto.RoomTypeResponse, error)
	GetAllRoomTypes(ctx context.Context) (*dto.RoomTypeListResponse, error)
	UpdateRoomType(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomTypeRequest) (*dto.RoomTypeResponse, error)
	DeleteRoomType(ctx context.Context, id uuid.UUID) (DeletePhase, error)
}

type roomTypeUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	roomTypeRepo repository.RoomTypeRepository
	roomRepo     repository.RoomRepository
	auditService service.AuditService
}

func NewRoomTypeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roomTypeRepo repository.RoomTypeRepository,
	roomRepo repository.RoomRepository,
	auditService service.AuditService,
) RoomTypeUsecase {
	return &roomTypeUsecase{
		db:           db,
		log:          log,
		roomTypeRepo: roomTypeRepo,
		roomRepo:     roomRepo,
		auditService: auditService,
	}
}

func (u *roomTypeUsecase) CreateRoomType(ctx context.Context, req *dto.CreateRoomTypeRequest) (*dto.RoomTypeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	id := uuid.New()
	if req.ID != nil {
		id = *req.ID
		existing, err := u.roomTypeRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to check room type id: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrRoomTypeIDExists
		}
	}

	sameName, err := u.roomTypeRepo.FindByName(tx, req.Name)
	if err != nil {
		u.log.Warnf("Failed to check room type name: %+v", err)
		return nil, err
	}
	if sameName != nil {
		return nil, ErrRoomTypeNameExists
	}

	roomType := &entity.RoomType{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		IsDeleted:   false,
	}

	if err := u.roomTypeRepo.Create(tx, roomType); err != nil {
		if isDuplicateKeyError(err, "room_types_pkey") {
			return nil, ErrRoomTypeIDExists
		}
		u.log.Warnf("Failed to create room type: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionRoomTypeCreate, "room_type", roomType.ID.String(), converter.RoomTypeToResponse(roomType)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.RoomTypeToResponse(roomType), nil
}

func (u *roomTypeUsecase) GetRoomType(ctx context.Context, id uuid.UUID) (*dto.RoomTypeResponse, error) {
	roomType, err := u.roomTypeRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find room type: %+v", err)
		return nil, err
	}
	if roomType == nil {
		return nil, ErrRoomTypeNotFound
	}

	return converter.RoomTypeToResponse(roomType), nil
}

func (u *roomTypeUsecase) GetAllRoomTypes(ctx context.Context) (*dto.RoomTypeListResponse, error) {
	roomTypes, err := u.roomTypeRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all room types: %+v", err)
		return nil, err
	}

	responses := converter.RoomTypesToResponses(roomTypes)

	return &dto.RoomTypeListResponse{
		RoomTypes: responses,
		Total:     len(responses),
	}, nil
}

func (u *roomTypeUsecase) UpdateRoomType(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomTypeRequest) (*dto.RoomTypeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	roomType, err := u.roomTypeRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find room type: %+v", err)
		return nil, err
	}
	if roomType == nil || roomType.IsDeleted {
		return nil, ErrRoomTypeNotFound
	}

	oldValue := converter.RoomTypeToResponse(roomType)

	if req.Name != "" && req.Name != roomType.Name {
		sameName, err := u.roomTypeRepo.FindByName(tx, req.Name)
		if err != nil {
			u.log.Warnf("Failed to check room type name: %+v", err)
			return nil, err
		}
		if sameName != nil && sameName.ID != roomType.ID {
			return nil, ErrRoomTypeNameExists
		}
		roomType.Name = req.Name
	}
	if req.Price != nil {
		roomType.Price = *req.Price
	}
	if req.Description != nil {
		roomType.Description = *req.Description
	}

	if err := u.roomTypeRepo.Update(tx, roomType); err != nil {
		u.log.Warnf("Failed to update room type: %+v", err)
		return nil, err
	}

	newValue := converter.RoomTypeToResponse(roomType)
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionRoomTypeUpdate, "room_type", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeleteRoomType runs the two-phase delete. The first call soft-deletes the
// type and cascades to its rooms; the second call removes the row, but only
// when no room still references it.
func (u *roomTypeUsecase) DeleteRoomType(ctx context.Context, id uuid.UUID) (DeletePhase, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	userID, _ := middleware.GetUserIDFromContext(ctx)

	affected, err := u.roomTypeRepo.SoftDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to soft delete room type: %+v", err)
		return "", err
	}

	if affected == 1 {
		cascaded, err := u.roomRepo.SoftDeleteByRoomTypeID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to cascade soft delete to rooms: %+v", err)
			return "", err
		}

		if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionRoomTypeDelete, "room_type", id.String(), entity.JSON{"phase": "soft", "rooms_cascaded": cascaded}); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}

		if err := tx.Commit().Error; err != nil {
			u.log.Warnf("Failed commit transaction: %+v", err)
			return "", err
		}
		return DeletePhaseSoft, nil
	}

	// Soft delete touched nothing: either the row is absent or it is
	// already soft-deleted and due for removal.
	roomType, err := u.roomTypeRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find room type: %+v", err)
		return "", err
	}
	if roomType == nil {
		return "", ErrRoomTypeNotFound
	}

	roomCount, err := u.roomTypeRepo.CountRooms(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count rooms for room type: %+v", err)
		return "", err
	}
	if roomCount > 0 {
		return "", ErrRoomTypeHasRooms
	}

	affected, err = u.roomTypeRepo.HardDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to hard delete room type: %+v", err)
		return "", err
	}
	if affected == 0 {
		return "", ErrRoomTypeNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionRoomTypeDelete, "room_type", id.String(), converter.RoomTypeToResponse(roomType)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return "", err
	}

	return DeletePhaseHard, nil
}
