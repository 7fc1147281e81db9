package usecase

import (
	"context"
	"errors"

	"petcare-facility-api/internal/converter"
	"petcare-facility-api/internal/delivery/dto"
	"petcare-facility-api/internal/delivery/http/middleware"
	"petcare-facility-api/internal/domain/entity"
	"petcare-facility-api/internal/domain/repository"
	"petcare-facility-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrHealthBookNotFound = errors.New("pet health book entry not found")
	ErrHealthBookIDExists = errors.New("pet health book id already exists")
	ErrMedicineNotValid   = errors.New("medicine does not exist or is deleted")
)

type PetHealthBookUsecase interface {
	CreateHealthBook(ctx context.Context, req *dto.CreatePetHealthBookRequest) (*dto.PetHealthBookResponse, error)
	GetHealthBook(ctx context.Context, id uuid.UUID) (*dto.PetHealthBookResponse, error)
	GetAllHealthBooks(ctx context.Context) (*dto.PetHealthBookListResponse, error)
	GetHealthBooksByBookingItem(ctx context.Context, itemID uuid.UUID) (*dto.PetHealthBookListResponse, error)
	UpdateHealthBook(ctx context.Context, id uuid.UUID, req *dto.UpdatePetHealthBookRequest) (*dto.PetHealthBookResponse, error)
	DeleteHealthBook(ctx context.Context, id uuid.UUID) (DeletePhase, error)
}

type petHealthBookUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	healthBookRepo  repository.PetHealthBookRepository
	bookingItemRepo repository.BookingServiceItemRepository
	medicineRepo    repository.MedicineRepository
	auditService    service.AuditService
}

func NewPetHealthBookUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	healthBookRepo repository.PetHealthBookRepository,
	bookingItemRepo repository.BookingServiceItemRepository,
	medicineRepo repository.MedicineRepository,
	auditService service.AuditService,
) PetHealthBookUsecase {
	return &petHealthBookUsecase{
		db:              db,
		log:             log,
		healthBookRepo:  healthBookRepo,
		bookingItemRepo: bookingItemRepo,
		medicineRepo:    medicineRepo,
		auditService:    auditService,
	}
}

func (u *petHealthBookUsecase) validateMedicines(tx *gorm.DB, ids []uuid.UUID) error {
	for _, medicineID := range ids {
		medicine, err := u.medicineRepo.FindByID(tx, medicineID)
		if err != nil {
			u.log.Warnf("Failed to find medicine: %+v", err)
			return err
		}
		if medicine == nil || medicine.IsDeleted {
			return ErrMedicineNotValid
		}
	}
	return nil
}

func (u *petHealthBookUsecase) CreateHealthBook(ctx context.Context, req *dto.CreatePetHealthBookRequest) (*dto.PetHealthBookResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	id := uuid.New()
	if req.ID != nil {
		id = *req.ID
		existing, err := u.healthBookRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to check health book id: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrHealthBookIDExists
		}
	}

	item, err := u.bookingItemRepo.FindByID(tx, req.BookingServiceItemID)
	if err != nil {
		u.log.Warnf("Failed to find booking service item: %+v", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrBookingItemNotFound
	}

	if err := u.validateMedicines(tx, req.MedicineIDs); err != nil {
		return nil, err
	}

	book := &entity.PetHealthBook{
		ID:                   id,
		BookingServiceItemID: req.BookingServiceItemID,
		MedicineIDs:          entity.UUIDList(req.MedicineIDs),
		VisitDate:            req.VisitDate,
		NextVisitDate:        req.NextVisitDate,
		PerformBy:            req.PerformBy,
		IsDeleted:            false,
	}

	if err := u.healthBookRepo.Create(tx, book); err != nil {
		if isDuplicateKeyError(err, "pet_health_books_pkey") {
			return nil, ErrHealthBookIDExists
		}
		u.log.Warnf("Failed to create health book entry: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionHealthBookCreate, "pet_health_book", book.ID.String(), converter.PetHealthBookToResponse(book)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PetHealthBookToResponse(book), nil
}

func (u *petHealthBookUsecase) GetHealthBook(ctx context.Context, id uuid.UUID) (*dto.PetHealthBookResponse, error) {
	book, err := u.healthBookRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find health book entry: %+v", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrHealthBookNotFound
	}

	return converter.PetHealthBookToResponse(book), nil
}

func (u *petHealthBookUsecase) GetAllHealthBooks(ctx context.Context) (*dto.PetHealthBookListResponse, error) {
	books, err := u.healthBookRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all health book entries: %+v", err)
		return nil, err
	}

	responses := converter.PetHealthBooksToResponses(books)

	return &dto.PetHealthBookListResponse{
		HealthBooks: responses,
		Total:       len(responses),
	}, nil
}

func (u *petHealthBookUsecase) GetHealthBooksByBookingItem(ctx context.Context, itemID uuid.UUID) (*dto.PetHealthBookListResponse, error) {
	books, err := u.healthBookRepo.FindByBookingServiceItemID(u.db.WithContext(ctx), itemID)
	if err != nil {
		u.log.Warnf("Failed to find health book entries of booking item: %+v", err)
		return nil, err
	}

	responses := converter.PetHealthBooksToResponses(books)

	return &dto.PetHealthBookListResponse{
		HealthBooks: responses,
		Total:       len(responses),
	}, nil
}

func (u *petHealthBookUsecase) UpdateHealthBook(ctx context.Context, id uuid.UUID, req *dto.UpdatePetHealthBookRequest) (*dto.PetHealthBookResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	book, err := u.healthBookRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find health book entry: %+v", err)
		return nil, err
	}
	if book == nil || book.IsDeleted {
		return nil, ErrHealthBookNotFound
	}

	oldValue := converter.PetHealthBookToResponse(book)

	if len(req.MedicineIDs) > 0 {
		if err := u.validateMedicines(tx, req.MedicineIDs); err != nil {
			return nil, err
		}
		book.MedicineIDs = entity.UUIDList(req.MedicineIDs)
	}
	if req.VisitDate != nil {
		book.VisitDate = *req.VisitDate
	}
	if req.NextVisitDate != nil {
		book.NextVisitDate = req.NextVisitDate
	}
	if req.PerformBy != "" {
		book.PerformBy = req.PerformBy
	}

	if err := u.healthBookRepo.Update(tx, book); err != nil {
		u.log.Warnf("Failed to update health book entry: %+v", err)
		return nil, err
	}

	newValue := converter.PetHealthBookToResponse(book)
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionHealthBookUpdate, "pet_health_book", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *petHealthBookUsecase) DeleteHealthBook(ctx context.Context, id uuid.UUID) (DeletePhase, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	userID, _ := middleware.GetUserIDFromContext(ctx)

	affected, err := u.healthBookRepo.SoftDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to soft delete health book entry: %+v", err)
		return "", err
	}

	if affected == 1 {
		if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionHealthBookDelete, "pet_health_book", id.String(), entity.JSON{"phase": "soft"}); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		if err := tx.Commit().Error; err != nil {
			u.log.Warnf("Failed commit transaction: %+v", err)
			return "", err
		}
		return DeletePhaseSoft, nil
	}

	book, err := u.healthBookRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find health book entry: %+v", err)
		return "", err
	}
	if book == nil {
		return "", ErrHealthBookNotFound
	}

	affected, err = u.healthBookRepo.HardDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to hard delete health book entry: %+v", err)
		return "", err
	}
	if affected == 0 {
		return "", ErrHealthBookNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionHealthBookDelete, "pet_health_book", id.String(), converter.PetHealthBookToResponse(book)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return "", err
	}

	return DeletePhaseHard, nil
}
