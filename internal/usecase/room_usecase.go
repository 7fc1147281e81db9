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
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomIDExists     = errors.New("room id already exists")
	ErrRoomTypeInactive = errors.New("room type does not exist or is deleted")
	ErrInvalidImage     = errors.New("invalid image file")
)

const roomImageSubdir = "rooms"

type RoomUsecase interface {
	CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*dto.RoomResponse, error)
	GetAllRooms(ctx context.Context) (*dto.RoomListResponse, error)
	GetAvailableRooms(ctx context.Context) (*dto.RoomListResponse, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error)
	UpdateRoomImage(ctx context.Context, id uuid.UUID, file multipart.File, header *multipart.FileHeader) (*dto.RoomResponse, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) (DeletePhase, error)
}

type roomUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	roomRepo     repository.RoomRepository
	roomTypeRepo repository.RoomTypeRepository
	imageService *service.ImageService
	auditService service.AuditService
}

func NewRoomUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roomRepo repository.RoomRepository,
	roomTypeRepo repository.RoomTypeRepository,
	imageService *service.ImageService,
	auditService service.AuditService,
) RoomUsecase {
	return &roomUsecase{
		db:           db,
		log:          log,
		roomRepo:     roomRepo,
		roomTypeRepo: roomTypeRepo,
		imageService: imageService,
		auditService: auditService,
	}
}

func (u *roomUsecase) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	id := uuid.New()
	if req.ID != nil {
		id = *req.ID
		existing, err := u.roomRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to check room id: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrRoomIDExists
		}
	}

	roomType, err := u.roomTypeRepo.FindByID(tx, req.RoomTypeID)
	if err != nil {
		u.log.Warnf("Failed to find room type: %+v", err)
		return nil, err
	}
	if roomType == nil || roomType.IsDeleted {
		return nil, ErrRoomTypeInactive
	}

	room := &entity.Room{
		ID:          id,
		RoomTypeID:  req.RoomTypeID,
		Description: req.Description,
		Status:      entity.RoomStatusFree,
		HasCamera:   req.HasCamera,
		IsDeleted:   false,
	}

	if err := u.roomRepo.Create(tx, room); err != nil {
		if isDuplicateKeyError(err, "rooms_pkey") {
			return nil, ErrRoomIDExists
		}
		if isForeignKeyError(err, "room_type") {
			return nil, ErrRoomTypeInactive
		}
		u.log.Warnf("Failed to create room: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionRoomCreate, "room", room.ID.String(), converter.RoomToResponse(room)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.RoomToResponse(room), nil
}

func (u *roomUsecase) GetRoom(ctx context.Context, id uuid.UUID) (*dto.RoomResponse, error) {
	room, err := u.roomRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find room: %+v", err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	return converter.RoomToResponse(room), nil
}

func (u *roomUsecase) GetAllRooms(ctx context.Context) (*dto.RoomListResponse, error) {
	rooms, err := u.roomRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all rooms: %+v", err)
		return nil, err
	}

	responses := converter.RoomsToResponses(rooms)

	return &dto.RoomListResponse{
		Rooms: responses,
		Total: len(responses),
	}, nil
}

func (u *roomUsecase) GetAvailableRooms(ctx context.Context) (*dto.RoomListResponse, error) {
	rooms, err := u.roomRepo.FindAvailable(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find available rooms: %+v", err)
		return nil, err
	}

	responses := converter.RoomsToResponses(rooms)

	return &dto.RoomListResponse{
		Rooms: responses,
		Total: len(responses),
	}, nil
}

func (u *roomUsecase) UpdateRoom(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room, err := u.roomRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find room: %+v", err)
		return nil, err
	}
	if room == nil || room.IsDeleted {
		return nil, ErrRoomNotFound
	}

	oldValue := converter.RoomToResponse(room)

	if req.RoomTypeID != nil && *req.RoomTypeID != room.RoomTypeID {
		roomType, err := u.roomTypeRepo.FindByID(tx, *req.RoomTypeID)
		if err != nil {
			u.log.Warnf("Failed to find room type: %+v", err)
			return nil, err
		}
		if roomType == nil || roomType.IsDeleted {
			return nil, ErrRoomTypeInactive
		}
		room.RoomTypeID = *req.RoomTypeID
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.Status != "" {
		room.Status = entity.RoomStatus(req.Status)
	}
	if req.HasCamera != nil {
		room.HasCamera = *req.HasCamera
	}

	if err := u.roomRepo.Update(tx, room); err != nil {
		u.log.Warnf("Failed to update room: %+v", err)
		return nil, err
	}

	newValue := converter.RoomToResponse(room)
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionRoomUpdate, "room", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *roomUsecase) UpdateRoomImage(ctx context.Context, id uuid.UUID, file multipart.File, header *multipart.FileHeader) (*dto.RoomResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room, err := u.roomRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find room: %+v", err)
		return nil, err
	}
	if room == nil || room.IsDeleted {
		return nil, ErrRoomNotFound
	}

	path, err := u.imageService.Replace(file, header, roomImageSubdir, room.RoomImage)
	if err != nil {
		u.log.Warnf("Failed to store room image: %+v", err)
		return nil, ErrInvalidImage
	}

	room.RoomImage = path
	if err := u.roomRepo.Update(tx, room); err != nil {
		u.log.Warnf("Failed to update room image path: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.RoomToResponse(room), nil
}

// DeleteRoom runs the two-phase delete: first call soft-deletes, second
// call removes the row.
func (u *roomUsecase) DeleteRoom(ctx context.Context, id uuid.UUID) (DeletePhase, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	userID, _ := middleware.GetUserIDFromContext(ctx)

	affected, err := u.roomRepo.SoftDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to soft delete room: %+v", err)
		return "", err
	}

	if affected == 1 {
		if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionRoomDelete, "room", id.String(), entity.JSON{"phase": "soft"}); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		if err := tx.Commit().Error; err != nil {
			u.log.Warnf("Failed commit transaction: %+v", err)
			return "", err
		}
		return DeletePhaseSoft, nil
	}

	room, err := u.roomRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find room: %+v", err)
		return "", err
	}
	if room == nil {
		return "", ErrRoomNotFound
	}

	affected, err = u.roomRepo.HardDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to hard delete room: %+v", err)
		return "", err
	}
	if affected == 0 {
		return "", ErrRoomNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionRoomDelete, "room", id.String(), converter.RoomToResponse(room)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return "", err
	}

	// The stored image is orphaned once the row is gone.
	if room.RoomImage != "" {
		if err := u.imageService.Remove(room.RoomImage); err != nil {
			u.log.Warnf("Failed to remove room image %s: %+v", room.RoomImage, err)
		}
	}

	return DeletePhaseHard, nil
}
