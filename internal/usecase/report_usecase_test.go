package usecase

import (
	"context"
	"testing"
	"time"

	"petcare-facility-api/internal/domain/entity"
	"petcare-facility-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestRoomStatusReport(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger()
	uc := NewReportUsecase(db, log, repository.NewRoomRepository(), repository.NewRoomHistoryRepository())

	roomType := seedRoomType(t, db, "Standard")
	seedRoom(t, db, roomType.ID, entity.RoomStatusFree)
	seedRoom(t, db, roomType.ID, entity.RoomStatusFree)
	seedRoom(t, db, roomType.ID, entity.RoomStatusInUse)
	seedRoom(t, db, roomType.ID, entity.RoomStatusMaintenance)

	// Soft-deleted rooms stay out of the report.
	retired := seedRoom(t, db, roomType.ID, entity.RoomStatusFree)
	if err := db.Model(&entity.Room{}).Where("id = ?", retired.ID).Update("is_deleted", true).Error; err != nil {
		t.Fatalf("failed to soft delete room: %v", err)
	}

	report, err := uc.RoomStatusReport(context.Background())
	if err != nil {
		t.Fatalf("RoomStatusReport failed: %v", err)
	}
	if report.Free != 2 {
		t.Fatalf("expected 2 free rooms, got %d", report.Free)
	}
	if report.InUse != 1 {
		t.Fatalf("expected 1 room in use, got %d", report.InUse)
	}
	if report.Maintenance != 1 {
		t.Fatalf("expected 1 room in maintenance, got %d", report.Maintenance)
	}
	if report.Total != 4 {
		t.Fatalf("expected 4 rooms total, got %d", report.Total)
	}
}

func seedClosedStay(t *testing.T, db *gorm.DB, roomID uuid.UUID) {
	t.Helper()

	now := time.Now()
	checkIn := now.Add(-24 * time.Hour)
	history := &entity.RoomHistory{
		ID:                   uuid.New(),
		RoomID:               roomID,
		BookingServiceItemID: uuid.New(),
		CheckInAt:            checkIn,
		CheckOutAt:           &now,
		Status:               entity.RoomHistoryStatusClosed,
	}
	if err := db.Create(history).Error; err != nil {
		t.Fatalf("failed to seed closed stay: %v", err)
	}
}

func TestRevenueReport(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger()
	uc := NewReportUsecase(db, log, repository.NewRoomRepository(), repository.NewRoomHistoryRepository())

	standard := seedRoomType(t, db, "Standard")
	deluxe := &entity.RoomType{ID: uuid.New(), Name: "Deluxe", Price: decimal.NewFromInt(250000)}
	if err := db.Create(deluxe).Error; err != nil {
		t.Fatalf("failed to seed room type: %v", err)
	}

	standardRoom := seedRoom(t, db, standard.ID, entity.RoomStatusFree)
	deluxeRoom := seedRoom(t, db, deluxe.ID, entity.RoomStatusFree)

	seedClosedStay(t, db, standardRoom.ID)
	seedClosedStay(t, db, standardRoom.ID)
	seedClosedStay(t, db, deluxeRoom.ID)

	// An open stay has not earned anything yet.
	open := &entity.RoomHistory{
		ID:                   uuid.New(),
		RoomID:               deluxeRoom.ID,
		BookingServiceItemID: uuid.New(),
		CheckInAt:            time.Now(),
		Status:               entity.RoomHistoryStatusOpen,
	}
	if err := db.Create(open).Error; err != nil {
		t.Fatalf("failed to seed open stay: %v", err)
	}

	report, err := uc.RevenueReport(context.Background())
	if err != nil {
		t.Fatalf("RevenueReport failed: %v", err)
	}
	if len(report.RoomTypes) != 2 {
		t.Fatalf("expected 2 room type rows, got %d", len(report.RoomTypes))
	}

	// seedRoomType prices Standard at 150000; two stays plus one Deluxe stay.
	want := decimal.NewFromInt(2*150000 + 250000)
	if !report.Total.Equal(want) {
		t.Fatalf("expected total revenue %s, got %s", want, report.Total)
	}
	for _, row := range report.RoomTypes {
		switch row.RoomTypeID {
		case standard.ID:
			if row.Occupancies != 2 {
				t.Fatalf("expected 2 standard stays, got %d", row.Occupancies)
			}
		case deluxe.ID:
			if row.Occupancies != 1 {
				t.Fatalf("expected 1 deluxe stay, got %d", row.Occupancies)
			}
		default:
			t.Fatalf("unexpected room type row %s", row.RoomTypeID)
		}
	}
}
