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
	ErrMedicineNotFound   = errors.New("medicine not found")
	ErrMedicineIDExists   = errors.New("medicine id already exists")
	ErrMedicineReferenced = errors.New("medicine is referenced by health book entries")
)

type MedicineUsecase interface {
	CreateMedicine(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
	GetMedicine(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error)
	GetAllMedicines(ctx context.Context) (*dto.MedicineListResponse, error)
	UpdateMedicine(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error)
	DeleteMedicine(ctx context.Context, id uuid.UUID) (DeletePhase, error)
}

type medicineUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	medicineRepo repository.MedicineRepository
	auditService service.AuditService
}

func NewMedicineUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	medicineRepo repository.MedicineRepository,
	auditService service.AuditService,
) MedicineUsecase {
	return &medicineUsecase{
		db:           db,
		log:          log,
		medicineRepo: medicineRepo,
		auditService: auditService,
	}
}

func (u *medicineUsecase) CreateMedicine(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	id := uuid.New()
	if req.ID != nil {
		id = *req.ID
		existing, err := u.medicineRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to check medicine id: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrMedicineIDExists
		}
	}

	medicine := &entity.Medicine{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Dosage:      req.Dosage,
		IsDeleted:   false,
	}

	if err := u.medicineRepo.Create(tx, medicine); err != nil {
		if isDuplicateKeyError(err, "medicines_pkey") {
			return nil, ErrMedicineIDExists
		}
		u.log.Warnf("Failed to create medicine: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionMedicineCreate, "medicine", medicine.ID.String(), converter.MedicineToResponse(medicine)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) GetMedicine(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) GetAllMedicines(ctx context.Context) (*dto.MedicineListResponse, error) {
	medicines, err := u.medicineRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all medicines: %+v", err)
		return nil, err
	}

	responses := converter.MedicinesToResponses(medicines)

	return &dto.MedicineListResponse{
		Medicines: responses,
		Total:     len(responses),
	}, nil
}

func (u *medicineUsecase) UpdateMedicine(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medicine, err := u.medicineRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return nil, err
	}
	if medicine == nil || medicine.IsDeleted {
		return nil, ErrMedicineNotFound
	}

	oldValue := converter.MedicineToResponse(medicine)

	if req.Name != "" {
		medicine.Name = req.Name
	}
	if req.Description != nil {
		medicine.Description = *req.Description
	}
	if req.Dosage != nil {
		medicine.Dosage = *req.Dosage
	}

	if err := u.medicineRepo.Update(tx, medicine); err != nil {
		u.log.Warnf("Failed to update medicine: %+v", err)
		return nil, err
	}

	newValue := converter.MedicineToResponse(medicine)
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionMedicineUpdate, "medicine", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeleteMedicine soft-deletes on the first call. The hard phase is refused
// while any health book entry still lists the medicine.
func (u *medicineUsecase) DeleteMedicine(ctx context.Context, id uuid.UUID) (DeletePhase, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	userID, _ := middleware.GetUserIDFromContext(ctx)

	affected, err := u.medicineRepo.SoftDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to soft delete medicine: %+v", err)
		return "", err
	}

	if affected == 1 {
		if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionMedicineDelete, "medicine", id.String(), entity.JSON{"phase": "soft"}); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		if err := tx.Commit().Error; err != nil {
			u.log.Warnf("Failed commit transaction: %+v", err)
			return "", err
		}
		return DeletePhaseSoft, nil
	}

	medicine, err := u.medicineRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return "", err
	}
	if medicine == nil {
		return "", ErrMedicineNotFound
	}

	referenced, err := u.medicineRepo.IsReferencedByHealthBook(tx, id)
	if err != nil {
		u.log.Warnf("Failed to check medicine references: %+v", err)
		return "", err
	}
	if referenced {
		return "", ErrMedicineReferenced
	}

	affected, err = u.medicineRepo.HardDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to hard delete medicine: %+v", err)
		return "", err
	}
	if affected == 0 {
		return "", ErrMedicineNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionMedicineDelete, "medicine", id.String(), converter.MedicineToResponse(medicine)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return "", err
	}

	return DeletePhaseHard, nil
}
