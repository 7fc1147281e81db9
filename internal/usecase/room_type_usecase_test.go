package usecase

import (
	"context"
	"testing"

	"petcare-facility-api/internal/delivery/dto"
	"petcare-facility-api/internal/domain/entity"
	"petcare-facility-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newRoomTypeUsecaseForTest(t *testing.T) (RoomTypeUsecase, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()
	return NewRoomTypeUsecase(
		db,
		log,
		repository.NewRoomTypeRepository(),
		repository.NewRoomRepository(),
		newTestAuditService(log),
	), db
}

func TestCreateRoomType(t *testing.T) {
	uc, _ := newRoomTypeUsecaseForTest(t)
	ctx := context.Background()

	resp, err := uc.CreateRoomType(ctx, &dto.CreateRoomTypeRequest{
		Name:        "Deluxe",
		Price:       decimal.NewFromInt(250000),
		Description: "Large room with window",
	})
	if err != nil {
		t.Fatalf("CreateRoomType failed: %v", err)
	}
	if resp.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}
	if resp.Name != "Deluxe" {
		t.Fatalf("expected name %q, got %q", "Deluxe", resp.Name)
	}
	if resp.IsDeleted {
		t.Fatal("new room type must not be soft-deleted")
	}
}

func TestCreateRoomType_DuplicateNameCaseInsensitive(t *testing.T) {
	uc, _ := newRoomTypeUsecaseForTest(t)
	ctx := context.Background()

	if _, err := uc.CreateRoomType(ctx, &dto.CreateRoomTypeRequest{
		Name:  "Standard",
		Price: decimal.NewFromInt(100000),
	}); err != nil {
		t.Fatalf("CreateRoomType failed: %v", err)
	}

	_, err := uc.CreateRoomType(ctx, &dto.CreateRoomTypeRequest{
		Name:  "STANDARD",
		Price: decimal.NewFromInt(120000),
	})
	if err != ErrRoomTypeNameExists {
		t.Fatalf("expected ErrRoomTypeNameExists, got %v", err)
	}
}

func TestCreateRoomType_ClientSuppliedID(t *testing.T) {
	uc, _ := newRoomTypeUsecaseForTest(t)
	ctx := context.Background()

	id := uuid.New()
	resp, err := uc.CreateRoomType(ctx, &dto.CreateRoomTypeRequest{
		ID:    &id,
		Name:  "Suite",
		Price: decimal.NewFromInt(500000),
	})
	if err != nil {
		t.Fatalf("CreateRoomType failed: %v", err)
	}
	if resp.ID != id {
		t.Fatalf("expected id %s, got %s", id, resp.ID)
	}

	_, err = uc.CreateRoomType(ctx, &dto.CreateRoomTypeRequest{
		ID:    &id,
		Name:  "Another Suite",
		Price: decimal.NewFromInt(600000),
	})
	if err != ErrRoomTypeIDExists {
		t.Fatalf("expected ErrRoomTypeIDExists, got %v", err)
	}
}

func TestUpdateRoomType_NameConflict(t *testing.T) {
	uc, db := newRoomTypeUsecaseForTest(t)
	ctx := context.Background()

	seedRoomType(t, db, "Standard")
	target := seedRoomType(t, db, "Deluxe")

	_, err := uc.UpdateRoomType(ctx, target.ID, &dto.UpdateRoomTypeRequest{Name: "standard"})
	if err != ErrRoomTypeNameExists {
		t.Fatalf("expected ErrRoomTypeNameExists, got %v", err)
	}

	// Updating with its own name is not a conflict.
	if _, err := uc.UpdateRoomType(ctx, target.ID, &dto.UpdateRoomTypeRequest{Name: "Deluxe"}); err != nil {
		t.Fatalf("UpdateRoomType failed: %v", err)
	}
}

func TestGetRoomType_NotFound(t *testing.T) {
	uc, _ := newRoomTypeUsecaseForTest(t)

	_, err := uc.GetRoomType(context.Background(), uuid.New())
	if err != ErrRoomTypeNotFound {
		t.Fatalf("expected ErrRoomTypeNotFound, got %v", err)
	}
}

func TestDeleteRoomType_TwoPhase(t *testing.T) {
	uc, db := newRoomTypeUsecaseForTest(t)
	ctx := context.Background()

	roomType := seedRoomType(t, db, "Standard")

	phase, err := uc.DeleteRoomType(ctx, roomType.ID)
	if err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if phase != DeletePhaseSoft {
		t.Fatalf("expected soft phase, got %q", phase)
	}

	var softDeleted entity.RoomType
	if err := db.Where("id = ?", roomType.ID).First(&softDeleted).Error; err != nil {
		t.Fatalf("room type row must survive the soft phase: %v", err)
	}
	if !softDeleted.IsDeleted {
		t.Fatal("expected is_deleted after the soft phase")
	}

	phase, err = uc.DeleteRoomType(ctx, roomType.ID)
	if err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
	if phase != DeletePhaseHard {
		t.Fatalf("expected hard phase, got %q", phase)
	}

	var count int64
	db.Model(&entity.RoomType{}).Where("id = ?", roomType.ID).Count(&count)
	if count != 0 {
		t.Fatal("room type row must be gone after the hard phase")
	}

	if _, err := uc.DeleteRoomType(ctx, roomType.ID); err != ErrRoomTypeNotFound {
		t.Fatalf("expected ErrRoomTypeNotFound, got %v", err)
	}
}

func TestDeleteRoomType_CascadesAndGuards(t *testing.T) {
	uc, db := newRoomTypeUsecaseForTest(t)
	ctx := context.Background()

	roomType := seedRoomType(t, db, "Standard")
	room := seedRoom(t, db, roomType.ID, entity.RoomStatusFree)

	phase, err := uc.DeleteRoomType(ctx, roomType.ID)
	if err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}
	if phase != DeletePhaseSoft {
		t.Fatalf("expected soft phase, got %q", phase)
	}

	var cascaded entity.Room
	if err := db.Where("id = ?", room.ID).First(&cascaded).Error; err != nil {
		t.Fatalf("failed to reload room: %v", err)
	}
	if !cascaded.IsDeleted {
		t.Fatal("expected room to be soft-deleted with its type")
	}

	// The room row still references the type, so the hard phase is blocked.
	if _, err := uc.DeleteRoomType(ctx, roomType.ID); err != ErrRoomTypeHasRooms {
		t.Fatalf("expected ErrRoomTypeHasRooms, got %v", err)
	}

	if err := db.Delete(&entity.Room{}, "id = ?", room.ID).Error; err != nil {
		t.Fatalf("failed to remove room: %v", err)
	}

	phase, err = uc.DeleteRoomType(ctx, roomType.ID)
	if err != nil {
		t.Fatalf("hard delete failed: %v", err)
	}
	if phase != DeletePhaseHard {
		t.Fatalf("expected hard phase, got %q", phase)
	}
}
