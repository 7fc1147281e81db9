package usecase

import (
	"context"
	"testing"
	"time"

	"petcare-facility-api/internal/delivery/dto"
	"petcare-facility-api/internal/domain/entity"
	"petcare-facility-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newCameraUsecaseForTest(t *testing.T) (CameraUsecase, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()
	return NewCameraUsecase(
		db,
		log,
		repository.NewCameraRepository(),
		repository.NewRoomHistoryRepository(),
		newTestAuditService(log),
	), db
}

func TestCreateCamera_DuplicateCode(t *testing.T) {
	uc, _ := newCameraUsecaseForTest(t)
	ctx := context.Background()

	resp, err := uc.CreateCamera(ctx, &dto.CreateCameraRequest{
		Type:    "IP",
		Code:    "CAM-01",
		RTSPUrl: "rtsp://10.0.0.5/stream",
	})
	if err != nil {
		t.Fatalf("CreateCamera failed: %v", err)
	}
	if resp.Status != string(entity.CameraStatusOffline) {
		t.Fatalf("expected new camera to default offline, got %q", resp.Status)
	}

	_, err = uc.CreateCamera(ctx, &dto.CreateCameraRequest{
		Type:    "IP",
		Code:    "CAM-01",
		RTSPUrl: "rtsp://10.0.0.6/stream",
	})
	if err != ErrCameraCodeExists {
		t.Fatalf("expected ErrCameraCodeExists, got %v", err)
	}
}

func TestDeleteCamera_BlockedWhileAssigned(t *testing.T) {
	uc, db := newCameraUsecaseForTest(t)
	ctx := context.Background()

	resp, err := uc.CreateCamera(ctx, &dto.CreateCameraRequest{
		Type:    "IP",
		Code:    "CAM-01",
		RTSPUrl: "rtsp://10.0.0.5/stream",
	})
	if err != nil {
		t.Fatalf("CreateCamera failed: %v", err)
	}

	cameraID := resp.ID
	history := &entity.RoomHistory{
		ID:                   uuid.New(),
		RoomID:               uuid.New(),
		BookingServiceItemID: uuid.New(),
		CameraID:             &cameraID,
		CheckInAt:            time.Now(),
		Status:               entity.RoomHistoryStatusOpen,
	}
	if err := db.Create(history).Error; err != nil {
		t.Fatalf("failed to seed room history: %v", err)
	}

	if _, err := uc.DeleteCamera(ctx, cameraID); err != ErrCameraInUse {
		t.Fatalf("expected ErrCameraInUse, got %v", err)
	}

	// Closing the occupancy releases the camera.
	now := time.Now()
	if err := db.Model(&entity.RoomHistory{}).Where("id = ?", history.ID).Updates(map[string]interface{}{
		"status":       entity.RoomHistoryStatusClosed,
		"check_out_at": now,
	}).Error; err != nil {
		t.Fatalf("failed to close room history: %v", err)
	}

	phase, err := uc.DeleteCamera(ctx, cameraID)
	if err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}
	if phase != DeletePhaseSoft {
		t.Fatalf("expected soft phase, got %q", phase)
	}
}
