package usecase

import (
	"context"
	"testing"

	"petcare-facility-api/internal/delivery/dto"
	"petcare-facility-api/internal/domain/entity"
	"petcare-facility-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newRoomUsecaseForTest(t *testing.T) (RoomUsecase, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()
	return NewRoomUsecase(
		db,
		log,
		repository.NewRoomRepository(),
		repository.NewRoomTypeRepository(),
		newTestImageService(t, log),
		newTestAuditService(log),
	), db
}

func TestCreateRoom(t *testing.T) {
	uc, db := newRoomUsecaseForTest(t)

	roomType := seedRoomType(t, db, "Standard")

	resp, err := uc.CreateRoom(context.Background(), &dto.CreateRoomRequest{
		RoomTypeID:  roomType.ID,
		Description: "Corner room",
		HasCamera:   true,
	})
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	if resp.Status != string(entity.RoomStatusFree) {
		t.Fatalf("expected new room to be free, got %q", resp.Status)
	}
	if !resp.HasCamera {
		t.Fatal("expected has_camera to be set")
	}
}

func TestCreateRoom_InactiveRoomType(t *testing.T) {
	uc, db := newRoomUsecaseForTest(t)
	ctx := context.Background()

	// Unknown type.
	if _, err := uc.CreateRoom(ctx, &dto.CreateRoomRequest{RoomTypeID: uuid.New()}); err != ErrRoomTypeInactive {
		t.Fatalf("expected ErrRoomTypeInactive, got %v", err)
	}

	// Soft-deleted type.
	roomType := seedRoomType(t, db, "Retired")
	if err := db.Model(&entity.RoomType{}).Where("id = ?", roomType.ID).Update("is_deleted", true).Error; err != nil {
		t.Fatalf("failed to soft delete room type: %v", err)
	}
	if _, err := uc.CreateRoom(ctx, &dto.CreateRoomRequest{RoomTypeID: roomType.ID}); err != ErrRoomTypeInactive {
		t.Fatalf("expected ErrRoomTypeInactive, got %v", err)
	}
}

func TestGetAvailableRooms(t *testing.T) {
	uc, db := newRoomUsecaseForTest(t)

	roomType := seedRoomType(t, db, "Standard")
	free := seedRoom(t, db, roomType.ID, entity.RoomStatusFree)
	seedRoom(t, db, roomType.ID, entity.RoomStatusInUse)
	seedRoom(t, db, roomType.ID, entity.RoomStatusMaintenance)

	list, err := uc.GetAvailableRooms(context.Background())
	if err != nil {
		t.Fatalf("GetAvailableRooms failed: %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("expected 1 available room, got %d", list.Total)
	}
	if list.Rooms[0].ID != free.ID {
		t.Fatalf("expected room %s, got %s", free.ID, list.Rooms[0].ID)
	}
}
