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

func newRoomHistoryUsecaseForTest(t *testing.T) (RoomHistoryUsecase, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()
	return NewRoomHistoryUsecase(
		db,
		log,
		repository.NewRoomHistoryRepository(),
		repository.NewRoomRepository(),
		repository.NewBookingServiceItemRepository(),
		repository.NewCameraRepository(),
		newTestAuditService(log),
	), db
}

func TestCheckIn(t *testing.T) {
	uc, db := newRoomHistoryUsecaseForTest(t)
	ctx := context.Background()

	roomType := seedRoomType(t, db, "Standard")
	room := seedRoom(t, db, roomType.ID, entity.RoomStatusFree)
	item := seedBookingItem(t, db, uuid.New())

	resp, err := uc.CheckIn(ctx, &dto.CheckInRequest{
		RoomID:               room.ID,
		BookingServiceItemID: item.ID,
	})
	if err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	if resp.Status != string(entity.RoomHistoryStatusOpen) {
		t.Fatalf("expected open occupancy, got %q", resp.Status)
	}
	if resp.CheckInAt.IsZero() {
		t.Fatal("expected check-in timestamp")
	}

	var reloaded entity.Room
	if err := db.Where("id = ?", room.ID).First(&reloaded).Error; err != nil {
		t.Fatalf("failed to reload room: %v", err)
	}
	if reloaded.Status != entity.RoomStatusInUse {
		t.Fatalf("expected room status %q, got %q", entity.RoomStatusInUse, reloaded.Status)
	}
}

func TestCheckIn_RoomNotAvailable(t *testing.T) {
	uc, db := newRoomHistoryUsecaseForTest(t)
	ctx := context.Background()

	roomType := seedRoomType(t, db, "Standard")
	room := seedRoom(t, db, roomType.ID, entity.RoomStatusFree)
	first := seedBookingItem(t, db, uuid.New())
	second := seedBookingItem(t, db, uuid.New())

	if _, err := uc.CheckIn(ctx, &dto.CheckInRequest{
		RoomID:               room.ID,
		BookingServiceItemID: first.ID,
	}); err != nil {
		t.Fatalf("first check-in failed: %v", err)
	}

	_, err := uc.CheckIn(ctx, &dto.CheckInRequest{
		RoomID:               room.ID,
		BookingServiceItemID: second.ID,
	})
	if err != ErrRoomNotAvailable {
		t.Fatalf("expected ErrRoomNotAvailable, got %v", err)
	}
}

func TestCheckIn_MaintenanceRoom(t *testing.T) {
	uc, db := newRoomHistoryUsecaseForTest(t)

	roomType := seedRoomType(t, db, "Standard")
	room := seedRoom(t, db, roomType.ID, entity.RoomStatusMaintenance)
	item := seedBookingItem(t, db, uuid.New())

	_, err := uc.CheckIn(context.Background(), &dto.CheckInRequest{
		RoomID:               room.ID,
		BookingServiceItemID: item.ID,
	})
	if err != ErrRoomNotAvailable {
		t.Fatalf("expected ErrRoomNotAvailable, got %v", err)
	}
}

func TestCheckIn_UnknownBookingItem(t *testing.T) {
	uc, db := newRoomHistoryUsecaseForTest(t)

	roomType := seedRoomType(t, db, "Standard")
	room := seedRoom(t, db, roomType.ID, entity.RoomStatusFree)

	_, err := uc.CheckIn(context.Background(), &dto.CheckInRequest{
		RoomID:               room.ID,
		BookingServiceItemID: uuid.New(),
	})
	if err != ErrBookingItemNotFound {
		t.Fatalf("expected ErrBookingItemNotFound, got %v", err)
	}
}

func TestCheckOut(t *testing.T) {
	uc, db := newRoomHistoryUsecaseForTest(t)
	ctx := context.Background()

	roomType := seedRoomType(t, db, "Standard")
	room := seedRoom(t, db, roomType.ID, entity.RoomStatusFree)
	item := seedBookingItem(t, db, uuid.New())

	opened, err := uc.CheckIn(ctx, &dto.CheckInRequest{
		RoomID:               room.ID,
		BookingServiceItemID: item.ID,
	})
	if err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}

	closed, err := uc.CheckOut(ctx, opened.ID)
	if err != nil {
		t.Fatalf("CheckOut failed: %v", err)
	}
	if closed.Status != string(entity.RoomHistoryStatusClosed) {
		t.Fatalf("expected closed occupancy, got %q", closed.Status)
	}
	if closed.CheckOutAt == nil {
		t.Fatal("expected check-out timestamp")
	}

	var reloaded entity.Room
	if err := db.Where("id = ?", room.ID).First(&reloaded).Error; err != nil {
		t.Fatalf("failed to reload room: %v", err)
	}
	if reloaded.Status != entity.RoomStatusFree {
		t.Fatalf("expected room status %q, got %q", entity.RoomStatusFree, reloaded.Status)
	}

	// A closed occupancy cannot be checked out again.
	if _, err := uc.CheckOut(ctx, opened.ID); err != ErrOccupancyNotOpen {
		t.Fatalf("expected ErrOccupancyNotOpen, got %v", err)
	}
}

func TestCheckOut_UnknownHistory(t *testing.T) {
	uc, _ := newRoomHistoryUsecaseForTest(t)

	_, err := uc.CheckOut(context.Background(), uuid.New())
	if err != ErrHistoryNotFound {
		t.Fatalf("expected ErrHistoryNotFound, got %v", err)
	}
}

func TestGetOpenOccupancies(t *testing.T) {
	uc, db := newRoomHistoryUsecaseForTest(t)
	ctx := context.Background()

	roomType := seedRoomType(t, db, "Standard")
	first := seedRoom(t, db, roomType.ID, entity.RoomStatusFree)
	second := seedRoom(t, db, roomType.ID, entity.RoomStatusFree)

	opened, err := uc.CheckIn(ctx, &dto.CheckInRequest{
		RoomID:               first.ID,
		BookingServiceItemID: seedBookingItem(t, db, uuid.New()).ID,
	})
	if err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	if _, err := uc.CheckIn(ctx, &dto.CheckInRequest{
		RoomID:               second.ID,
		BookingServiceItemID: seedBookingItem(t, db, uuid.New()).ID,
	}); err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}

	if _, err := uc.CheckOut(ctx, opened.ID); err != nil {
		t.Fatalf("CheckOut failed: %v", err)
	}

	list, err := uc.GetOpenOccupancies(ctx)
	if err != nil {
		t.Fatalf("GetOpenOccupancies failed: %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("expected 1 open occupancy, got %d", list.Total)
	}
	if list.Histories[0].RoomID != second.ID {
		t.Fatalf("expected open occupancy for room %s, got %s", second.ID, list.Histories[0].RoomID)
	}
}
