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

func newServiceUsecaseForTest(t *testing.T) (ServiceUsecase, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()
	return NewServiceUsecase(
		db,
		log,
		repository.NewServiceRepository(),
		repository.NewServiceTypeRepository(),
		repository.NewServiceVariantRepository(),
		newTestImageService(t, log),
		newTestAuditService(log),
	), db
}

func seedServiceType(t *testing.T, db *gorm.DB, name string) *entity.ServiceType {
	t.Helper()

	serviceType := &entity.ServiceType{
		ID:   uuid.New(),
		Name: name,
	}
	if err := db.Create(serviceType).Error; err != nil {
		t.Fatalf("failed to seed service type: %v", err)
	}
	return serviceType
}

func seedService(t *testing.T, db *gorm.DB, serviceTypeID uuid.UUID, name string) *entity.Service {
	t.Helper()

	svc := &entity.Service{
		ID:            uuid.New(),
		ServiceTypeID: serviceTypeID,
		Name:          name,
	}
	if err := db.Create(svc).Error; err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}
	return svc
}

func seedVariant(t *testing.T, db *gorm.DB, serviceID uuid.UUID, content string) *entity.ServiceVariant {
	t.Helper()

	variant := &entity.ServiceVariant{
		ID:        uuid.New(),
		ServiceID: serviceID,
		Content:   content,
		Price:     decimal.NewFromInt(75000),
	}
	if err := db.Create(variant).Error; err != nil {
		t.Fatalf("failed to seed service variant: %v", err)
	}
	return variant
}

func TestCreateService_InvalidServiceType(t *testing.T) {
	uc, _ := newServiceUsecaseForTest(t)

	_, err := uc.CreateService(context.Background(), &dto.CreateServiceRequest{
		ServiceTypeID: uuid.New(),
		Name:          "Grooming",
	})
	if err != ErrServiceTypeNotValid {
		t.Fatalf("expected ErrServiceTypeNotValid, got %v", err)
	}
}

func TestCreateService_DuplicateNameCaseInsensitive(t *testing.T) {
	uc, db := newServiceUsecaseForTest(t)
	ctx := context.Background()

	serviceType := seedServiceType(t, db, "Care")
	seedService(t, db, serviceType.ID, "Grooming")

	_, err := uc.CreateService(ctx, &dto.CreateServiceRequest{
		ServiceTypeID: serviceType.ID,
		Name:          "grooming",
	})
	if err != ErrServiceNameExists {
		t.Fatalf("expected ErrServiceNameExists, got %v", err)
	}
}

func TestDeleteService_SoftCascadesVariants(t *testing.T) {
	uc, db := newServiceUsecaseForTest(t)
	ctx := context.Background()

	serviceType := seedServiceType(t, db, "Care")
	svc := seedService(t, db, serviceType.ID, "Grooming")
	variant := seedVariant(t, db, svc.ID, "Small dog")

	phase, err := uc.DeleteService(ctx, svc.ID)
	if err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}
	if phase != DeletePhaseSoft {
		t.Fatalf("expected soft phase, got %q", phase)
	}

	var cascaded entity.ServiceVariant
	if err := db.Where("id = ?", variant.ID).First(&cascaded).Error; err != nil {
		t.Fatalf("failed to reload variant: %v", err)
	}
	if !cascaded.IsDeleted {
		t.Fatal("expected variant to be soft-deleted with its service")
	}
}

func TestDeleteService_HardBlockedByVariants(t *testing.T) {
	uc, db := newServiceUsecaseForTest(t)
	ctx := context.Background()

	serviceType := seedServiceType(t, db, "Care")
	svc := seedService(t, db, serviceType.ID, "Grooming")
	variant := seedVariant(t, db, svc.ID, "Small dog")

	if _, err := uc.DeleteService(ctx, svc.ID); err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}

	// Soft-deleted variant rows still block permanent removal.
	if _, err := uc.DeleteService(ctx, svc.ID); err != ErrServiceHasVariants {
		t.Fatalf("expected ErrServiceHasVariants, got %v", err)
	}

	if err := db.Delete(&entity.ServiceVariant{}, "id = ?", variant.ID).Error; err != nil {
		t.Fatalf("failed to remove variant: %v", err)
	}

	phase, err := uc.DeleteService(ctx, svc.ID)
	if err != nil {
		t.Fatalf("hard delete failed: %v", err)
	}
	if phase != DeletePhaseHard {
		t.Fatalf("expected hard phase, got %q", phase)
	}
}

func TestDeleteServiceType_BlockedByActiveServices(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger()
	uc := NewServiceTypeUsecase(db, log, repository.NewServiceTypeRepository(), newTestAuditService(log))
	ctx := context.Background()

	serviceType := seedServiceType(t, db, "Care")
	svc := seedService(t, db, serviceType.ID, "Grooming")

	if _, err := uc.DeleteServiceType(ctx, serviceType.ID); err != ErrServiceTypeHasServices {
		t.Fatalf("expected ErrServiceTypeHasServices, got %v", err)
	}

	// Soft-deleting the service releases the guard.
	if err := db.Model(&entity.Service{}).Where("id = ?", svc.ID).Update("is_deleted", true).Error; err != nil {
		t.Fatalf("failed to soft delete service: %v", err)
	}

	phase, err := uc.DeleteServiceType(ctx, serviceType.ID)
	if err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}
	if phase != DeletePhaseSoft {
		t.Fatalf("expected soft phase, got %q", phase)
	}
}
