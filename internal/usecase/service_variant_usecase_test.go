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

func newServiceVariantUsecaseForTest(t *testing.T) (ServiceVariantUsecase, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()
	return NewServiceVariantUsecase(
		db,
		log,
		repository.NewServiceVariantRepository(),
		repository.NewServiceRepository(),
		repository.NewBookingServiceItemRepository(),
		newTestAuditService(log),
	), db
}

func TestCreateVariant_InvalidService(t *testing.T) {
	uc, _ := newServiceVariantUsecaseForTest(t)

	_, err := uc.CreateVariant(context.Background(), &dto.CreateServiceVariantRequest{
		ServiceID: uuid.New(),
		Content:   "Small dog",
		Price:     decimal.NewFromInt(50000),
	})
	if err != ErrServiceNotValid {
		t.Fatalf("expected ErrServiceNotValid, got %v", err)
	}
}

func TestDeleteVariant_HardBlockedByBookings(t *testing.T) {
	uc, db := newServiceVariantUsecaseForTest(t)
	ctx := context.Background()

	serviceType := seedServiceType(t, db, "Care")
	svc := seedService(t, db, serviceType.ID, "Grooming")
	variant := seedVariant(t, db, svc.ID, "Small dog")
	item := seedBookingItem(t, db, variant.ID)

	phase, err := uc.DeleteVariant(ctx, variant.ID)
	if err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}
	if phase != DeletePhaseSoft {
		t.Fatalf("expected soft phase, got %q", phase)
	}

	// Permanent removal would orphan the booking row.
	if _, err := uc.DeleteVariant(ctx, variant.ID); err != ErrVariantHasBooking {
		t.Fatalf("expected ErrVariantHasBooking, got %v", err)
	}

	if err := db.Delete(&entity.BookingServiceItem{}, "id = ?", item.ID).Error; err != nil {
		t.Fatalf("failed to remove booking item: %v", err)
	}

	phase, err = uc.DeleteVariant(ctx, variant.ID)
	if err != nil {
		t.Fatalf("hard delete failed: %v", err)
	}
	if phase != DeletePhaseHard {
		t.Fatalf("expected hard phase, got %q", phase)
	}
}

func TestGetVariantsByService(t *testing.T) {
	uc, db := newServiceVariantUsecaseForTest(t)
	ctx := context.Background()

	serviceType := seedServiceType(t, db, "Care")
	svc := seedService(t, db, serviceType.ID, "Grooming")
	other := seedService(t, db, serviceType.ID, "Bathing")
	seedVariant(t, db, svc.ID, "Small dog")
	seedVariant(t, db, svc.ID, "Large dog")
	seedVariant(t, db, other.ID, "Cat")

	list, err := uc.GetVariantsByService(ctx, svc.ID)
	if err != nil {
		t.Fatalf("GetVariantsByService failed: %v", err)
	}
	if list.Total != 2 {
		t.Fatalf("expected 2 variants, got %d", list.Total)
	}
	for _, v := range list.Variants {
		if v.ServiceID != svc.ID {
			t.Fatalf("unexpected variant for service %s", v.ServiceID)
		}
	}
}
