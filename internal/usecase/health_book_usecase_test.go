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

func newHealthBookUsecaseForTest(t *testing.T) (PetHealthBookUsecase, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()
	return NewPetHealthBookUsecase(
		db,
		log,
		repository.NewPetHealthBookRepository(),
		repository.NewBookingServiceItemRepository(),
		repository.NewMedicineRepository(),
		newTestAuditService(log),
	), db
}

func TestCreateHealthBook(t *testing.T) {
	uc, db := newHealthBookUsecaseForTest(t)
	ctx := context.Background()

	item := seedBookingItem(t, db, uuid.New())
	medicine := seedMedicine(t, db, "Amoxicillin")

	resp, err := uc.CreateHealthBook(ctx, &dto.CreatePetHealthBookRequest{
		BookingServiceItemID: item.ID,
		MedicineIDs:          []uuid.UUID{medicine.ID},
		VisitDate:            time.Now(),
		PerformBy:            "drh. Sari",
	})
	if err != nil {
		t.Fatalf("CreateHealthBook failed: %v", err)
	}
	if len(resp.MedicineIDs) != 1 || resp.MedicineIDs[0] != medicine.ID {
		t.Fatalf("expected medicine ids to round-trip, got %v", resp.MedicineIDs)
	}
}

func TestCreateHealthBook_UnknownBookingItem(t *testing.T) {
	uc, db := newHealthBookUsecaseForTest(t)

	medicine := seedMedicine(t, db, "Amoxicillin")

	_, err := uc.CreateHealthBook(context.Background(), &dto.CreatePetHealthBookRequest{
		BookingServiceItemID: uuid.New(),
		MedicineIDs:          []uuid.UUID{medicine.ID},
		VisitDate:            time.Now(),
		PerformBy:            "drh. Sari",
	})
	if err != ErrBookingItemNotFound {
		t.Fatalf("expected ErrBookingItemNotFound, got %v", err)
	}
}

func TestCreateHealthBook_InvalidMedicine(t *testing.T) {
	uc, db := newHealthBookUsecaseForTest(t)
	ctx := context.Background()

	item := seedBookingItem(t, db, uuid.New())

	_, err := uc.CreateHealthBook(ctx, &dto.CreatePetHealthBookRequest{
		BookingServiceItemID: item.ID,
		MedicineIDs:          []uuid.UUID{uuid.New()},
		VisitDate:            time.Now(),
		PerformBy:            "drh. Sari",
	})
	if err != ErrMedicineNotValid {
		t.Fatalf("expected ErrMedicineNotValid, got %v", err)
	}

	// A soft-deleted medicine is not administrable either.
	medicine := seedMedicine(t, db, "Expired")
	if err := db.Model(&entity.Medicine{}).Where("id = ?", medicine.ID).Update("is_deleted", true).Error; err != nil {
		t.Fatalf("failed to soft delete medicine: %v", err)
	}

	_, err = uc.CreateHealthBook(ctx, &dto.CreatePetHealthBookRequest{
		BookingServiceItemID: item.ID,
		MedicineIDs:          []uuid.UUID{medicine.ID},
		VisitDate:            time.Now(),
		PerformBy:            "drh. Sari",
	})
	if err != ErrMedicineNotValid {
		t.Fatalf("expected ErrMedicineNotValid, got %v", err)
	}
}

func TestDeleteMedicine_HardBlockedByHealthBook(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger()
	medicineUC := NewMedicineUsecase(db, log, repository.NewMedicineRepository(), newTestAuditService(log))
	healthBookUC := NewPetHealthBookUsecase(
		db,
		log,
		repository.NewPetHealthBookRepository(),
		repository.NewBookingServiceItemRepository(),
		repository.NewMedicineRepository(),
		newTestAuditService(log),
	)
	ctx := context.Background()

	item := seedBookingItem(t, db, uuid.New())
	medicine := seedMedicine(t, db, "Amoxicillin")

	book, err := healthBookUC.CreateHealthBook(ctx, &dto.CreatePetHealthBookRequest{
		BookingServiceItemID: item.ID,
		MedicineIDs:          []uuid.UUID{medicine.ID},
		VisitDate:            time.Now(),
		PerformBy:            "drh. Sari",
	})
	if err != nil {
		t.Fatalf("CreateHealthBook failed: %v", err)
	}

	phase, err := medicineUC.DeleteMedicine(ctx, medicine.ID)
	if err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}
	if phase != DeletePhaseSoft {
		t.Fatalf("expected soft phase, got %q", phase)
	}

	// The health book still references the medicine.
	if _, err := medicineUC.DeleteMedicine(ctx, medicine.ID); err != ErrMedicineReferenced {
		t.Fatalf("expected ErrMedicineReferenced, got %v", err)
	}

	if err := db.Delete(&entity.PetHealthBook{}, "id = ?", book.ID).Error; err != nil {
		t.Fatalf("failed to remove health book: %v", err)
	}

	phase, err = medicineUC.DeleteMedicine(ctx, medicine.ID)
	if err != nil {
		t.Fatalf("hard delete failed: %v", err)
	}
	if phase != DeletePhaseHard {
		t.Fatalf("expected hard phase, got %q", phase)
	}
}
