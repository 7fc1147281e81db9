package handler

import (
	"encoding/json"
	"net/http"

	"petcare-facility-api/internal/delivery/dto"
	"petcare-facility-api/internal/usecase"
	"petcare-facility-api/pkg/response"
	"petcare-facility-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type MedicineHandler struct {
	medicineUsecase usecase.MedicineUsecase
	validator       *validator.CustomValidator
}

func NewMedicineHandler(medicineUsecase usecase.MedicineUsecase, validator *validator.CustomValidator) *MedicineHandler {
	return &MedicineHandler{
		medicineUsecase: medicineUsecase,
		validator:       validator,
	}
}

func (h *MedicineHandler) CreateMedicine(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.medicineUsecase.CreateMedicine(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicineIDExists:
			response.Conflict(w, "Medicine ID already exists")
		default:
			response.InternalServerError(w, "Failed to create medicine")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medicine created successfully", medicine)
}

func (h *MedicineHandler) GetMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medicine ID", nil)
		return
	}

	medicine, err := h.medicineUsecase.GetMedicine(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		default:
			response.InternalServerError(w, "Failed to get medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine retrieved successfully", medicine)
}

func (h *MedicineHandler) GetAllMedicines(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.medicineUsecase.GetAllMedicines(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get medicines")
		return
	}

	if medicines.Total == 0 {
		response.NotFound(w, "No medicines found")
		return
	}

	response.Success(w, http.StatusOK, "Medicines retrieved successfully", medicines)
}

func (h *MedicineHandler) UpdateMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medicine ID", nil)
		return
	}

	var req dto.UpdateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.medicineUsecase.UpdateMedicine(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		default:
			response.InternalServerError(w, "Failed to update medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine updated successfully", medicine)
}

func (h *MedicineHandler) DeleteMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medicine ID", nil)
		return
	}

	phase, err := h.medicineUsecase.DeleteMedicine(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		case usecase.ErrMedicineReferenced:
			response.Conflict(w, "Medicine is referenced by health book entries")
		default:
			response.InternalServerError(w, "Failed to delete medicine")
		}
		return
	}

	message := "Medicine soft deleted"
	if phase == usecase.DeletePhaseHard {
		message = "Medicine deleted permanently"
	}
	response.Success(w, http.StatusOK, message, dto.DeleteResultResponse{Phase: string(phase)})
}
