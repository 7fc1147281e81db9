package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"petcare-facility-api/internal/infrastructure/database"
	"petcare-facility-api/internal/repository"
	"petcare-facility-api/internal/service"
	"petcare-facility-api/internal/usecase"
	"petcare-facility-api/pkg/response"
	"petcare-facility-api/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newRoomTypeHandlerForTest(t *testing.T) *RoomTypeHandler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	uc := usecase.NewRoomTypeUsecase(
		db,
		log,
		repository.NewRoomTypeRepository(),
		repository.NewRoomRepository(),
		service.NewAuditService(log, repository.NewAuditLogRepository()),
	)
	return NewRoomTypeHandler(uc, validator.NewValidator())
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var envelope response.Response
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return envelope
}

func TestGetAllRoomTypes_EmptyIsNotFound(t *testing.T) {
	h := newRoomTypeHandlerForTest(t)

	rec := httptest.NewRecorder()
	h.GetAllRoomTypes(rec, httptest.NewRequest(http.MethodGet, "/api/v1/room-types", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an empty list, got %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if envelope.Flag {
		t.Fatal("expected flag=false for an empty list")
	}
}

func TestCreateRoomType_ThenList(t *testing.T) {
	h := newRoomTypeHandlerForTest(t)

	body := bytes.NewBufferString(`{"name": "Deluxe", "price": "500000"}`)
	rec := httptest.NewRecorder()
	h.CreateRoomType(rec, httptest.NewRequest(http.MethodPost, "/api/v1/room-types", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if envelope := decodeEnvelope(t, rec); !envelope.Flag {
		t.Fatal("expected flag=true on create")
	}

	rec = httptest.NewRecorder()
	h.GetAllRoomTypes(rec, httptest.NewRequest(http.MethodGet, "/api/v1/room-types", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCreateRoomType_ValidationError(t *testing.T) {
	h := newRoomTypeHandlerForTest(t)

	body := bytes.NewBufferString(`{"name": "X"}`)
	rec := httptest.NewRecorder()
	h.CreateRoomType(rec, httptest.NewRequest(http.MethodPost, "/api/v1/room-types", body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a validation failure, got %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if envelope.Flag {
		t.Fatal("expected flag=false for a validation failure")
	}
}

func TestCreateRoomType_DuplicateNameIsConflict(t *testing.T) {
	h := newRoomTypeHandlerForTest(t)

	first := httptest.NewRecorder()
	h.CreateRoomType(first, httptest.NewRequest(http.MethodPost, "/api/v1/room-types",
		bytes.NewBufferString(`{"name": "Deluxe", "price": "500000"}`)))
	if first.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	h.CreateRoomType(second, httptest.NewRequest(http.MethodPost, "/api/v1/room-types",
		bytes.NewBufferString(`{"name": "deluxe", "price": "450000"}`)))
	if second.Code != http.StatusConflict {
		t.Fatalf("expected 409 for a duplicate name, got %d", second.Code)
	}
}
