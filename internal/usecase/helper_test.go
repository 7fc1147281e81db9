package usecase

import (
	"io"
	"testing"

	"petcare-facility-api/config"
	"petcare-facility-api/internal/domain/entity"
	"petcare-facility-api/internal/infrastructure/database"
	"petcare-facility-api/internal/repository"
	"petcare-facility-api/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	// A second connection would see a fresh, empty :memory: database.
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestAuditService(log *logrus.Logger) service.AuditService {
	return service.NewAuditService(log, repository.NewAuditLogRepository())
}

func newTestImageService(t *testing.T, log *logrus.Logger) *service.ImageService {
	t.Helper()
	return service.NewImageService(config.UploadConfig{Dir: t.TempDir(), MaxSizeBytes: 5 << 20}, log)
}

func seedRoomType(t *testing.T, db *gorm.DB, name string) *entity.RoomType {
	t.Helper()

	roomType := &entity.RoomType{
		ID:    uuid.New(),
		Name:  name,
		Price: decimal.NewFromInt(150000),
	}
	if err := db.Create(roomType).Error; err != nil {
		t.Fatalf("failed to seed room type: %v", err)
	}
	return roomType
}

func seedRoom(t *testing.T, db *gorm.DB, roomTypeID uuid.UUID, status entity.RoomStatus) *entity.Room {
	t.Helper()

	room := &entity.Room{
		ID:         uuid.New(),
		RoomTypeID: roomTypeID,
		Status:     status,
	}
	if err := db.Create(room).Error; err != nil {
		t.Fatalf("failed to seed room: %v", err)
	}
	return room
}

func seedBookingItem(t *testing.T, db *gorm.DB, variantID uuid.UUID) *entity.BookingServiceItem {
	t.Helper()

	booking := &entity.Booking{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		BookingCode: "BK-" + uuid.New().String()[:8],
		Status:      entity.BookingStatusConfirmed,
	}
	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}

	item := &entity.BookingServiceItem{
		ID:               uuid.New(),
		BookingID:        booking.ID,
		PetID:            uuid.New(),
		ServiceVariantID: variantID,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to seed booking service item: %v", err)
	}
	return item
}

func seedMedicine(t *testing.T, db *gorm.DB, name string) *entity.Medicine {
	t.Helper()

	medicine := &entity.Medicine{
		ID:   uuid.New(),
		Name: name,
	}
	if err := db.Create(medicine).Error; err != nil {
		t.Fatalf("failed to seed medicine: %v", err)
	}
	return medicine
}
