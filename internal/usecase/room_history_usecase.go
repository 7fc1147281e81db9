package usecase

import (
	"context"
	"errors"
	"time"

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
	ErrHistoryNotFound     = errors.New("room history not found")
	ErrRoomNotAvailable    = errors.New("room is not available for check-in")
	ErrBookingItemNotFound = errors.New("booking service item not found")
	ErrCameraNotValid      = errors.New("camera does not exist or is deleted")
	ErrOccupancyNotOpen    = errors.New("occupancy is not open")
)

type RoomHistoryUsecase interface {
	CheckIn(ctx context.Context, req *dto.CheckInRequest) (*dto.RoomHistoryResponse, error)
	CheckOut(ctx context.Context, id uuid.UUID) (*dto.RoomHistoryResponse, error)
	GetHistory(ctx context.Context, id uuid.UUID) (*dto.RoomHistoryResponse, error)
	GetHistoriesByRoom(ctx context.Context, roomID uuid.UUID) (*dto.RoomHistoryListResponse, error)
	GetOpenOccupancies(ctx context.Context) (*dto.RoomHistoryListResponse, error)
}

type roomHistoryUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	historyRepo     repository.RoomHistoryRepository
	roomRepo        repository.RoomRepository
	bookingItemRepo repository.BookingServiceItemRepository
	cameraRepo      repository.CameraRepository
	auditService    service.AuditService
}

func NewRoomHistoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	historyRepo repository.RoomHistoryRepository,
	roomRepo repository.RoomRepository,
	bookingItemRepo repository.BookingServiceItemRepository,
	cameraRepo repository.CameraRepository,
	auditService service.AuditService,
) RoomHistoryUsecase {
	return &roomHistoryUsecase{
		db:              db,
		log:             log,
		historyRepo:     historyRepo,
		roomRepo:        roomRepo,
		bookingItemRepo: bookingItemRepo,
		cameraRepo:      cameraRepo,
		auditService:    auditService,
	}
}

// CheckIn opens an occupancy. The room status flip Free -> In Use is the
// concurrency gate: two concurrent check-ins on the same room race on the
// conditional update and the loser gets ErrRoomNotAvailable.
func (u *roomHistoryUsecase) CheckIn(ctx context.Context, req *dto.CheckInRequest) (*dto.RoomHistoryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	item, err := u.bookingItemRepo.FindByID(tx, req.BookingServiceItemID)
	if err != nil {
		u.log.Warnf("Failed to find booking service item: %+v", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrBookingItemNotFound
	}

	if req.CameraID != nil {
		camera, err := u.cameraRepo.FindByID(tx, *req.CameraID)
		if err != nil {
			u.log.Warnf("Failed to find camera: %+v", err)
			return nil, err
		}
		if camera == nil || camera.IsDeleted {
			return nil, ErrCameraNotValid
		}
	}

	affected, err := u.roomRepo.UpdateStatus(tx, req.RoomID, entity.RoomStatusFree, entity.RoomStatusInUse)
	if err != nil {
		u.log.Warnf("Failed to occupy room: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrRoomNotAvailable
	}

	history := &entity.RoomHistory{
		ID:                   uuid.New(),
		RoomID:               req.RoomID,
		BookingServiceItemID: req.BookingServiceItemID,
		CameraID:             req.CameraID,
		CheckInAt:            time.Now(),
		Status:               entity.RoomHistoryStatusOpen,
	}

	if err := u.historyRepo.Create(tx, history); err != nil {
		u.log.Warnf("Failed to create room history: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionCheckIn, "room_history", history.ID.String(), converter.RoomHistoryToResponse(history)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.RoomHistoryToResponse(history), nil
}

// CheckOut closes an open occupancy and frees the room. Closing is a
// conditional update on status so a double check-out fails cleanly.
func (u *roomHistoryUsecase) CheckOut(ctx context.Context, id uuid.UUID) (*dto.RoomHistoryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	history, err := u.historyRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find room history: %+v", err)
		return nil, err
	}
	if history == nil {
		return nil, ErrHistoryNotFound
	}

	now := time.Now()
	affected, err := u.historyRepo.Close(tx, id, now)
	if err != nil {
		u.log.Warnf("Failed to close room history: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrOccupancyNotOpen
	}

	if _, err := u.roomRepo.UpdateStatus(tx, history.RoomID, entity.RoomStatusInUse, entity.RoomStatusFree); err != nil {
		u.log.Warnf("Failed to free room: %+v", err)
		return nil, err
	}

	history.Status = entity.RoomHistoryStatusClosed
	history.CheckOutAt = &now

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionCheckOut, "room_history", id.String(), nil, converter.RoomHistoryToResponse(history)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.RoomHistoryToResponse(history), nil
}

func (u *roomHistoryUsecase) GetHistory(ctx context.Context, id uuid.UUID) (*dto.RoomHistoryResponse, error) {
	history, err := u.historyRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find room history: %+v", err)
		return nil, err
	}
	if history == nil {
		return nil, ErrHistoryNotFound
	}

	return converter.RoomHistoryToResponse(history), nil
}

func (u *roomHistoryUsecase) GetHistoriesByRoom(ctx context.Context, roomID uuid.UUID) (*dto.RoomHistoryListResponse, error) {
	histories, err := u.historyRepo.FindByRoomID(u.db.WithContext(ctx), roomID)
	if err != nil {
		u.log.Warnf("Failed to find histories of room: %+v", err)
		return nil, err
	}

	responses := converter.RoomHistoriesToResponses(histories)

	return &dto.RoomHistoryListResponse{
		Histories: responses,
		Total:     len(responses),
	}, nil
}

func (u *roomHistoryUsecase) GetOpenOccupancies(ctx context.Context) (*dto.RoomHistoryListResponse, error) {
	histories, err := u.historyRepo.FindOpen(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find open occupancies: %+v", err)
		return nil, err
	}

	responses := converter.RoomHistoriesToResponses(histories)

	return &dto.RoomHistoryListResponse{
		Histories: responses,
		Total:     len(responses),
	}, nil
}
