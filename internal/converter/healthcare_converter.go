package converter

import (
	"petcare-facility-api/internal/delivery/dto"
	"petcare-facility-api/internal/domain/entity"
)

func MedicineToResponse(medicine *entity.Medicine) *dto.MedicineResponse {
	if medicine == nil {
		return nil
	}

	return &dto.MedicineResponse{
		ID:          medicine.ID,
		Name:        medicine.Name,
		Description: medicine.Description,
		Dosage:      medicine.Dosage,
		IsDeleted:   medicine.IsDeleted,
		CreatedAt:   medicine.CreatedAt,
		UpdatedAt:   medicine.UpdatedAt,
	}
}

func MedicinesToResponses(medicines []entity.Medicine) []dto.MedicineResponse {
	responses := make([]dto.MedicineResponse, len(medicines))
	for i := range medicines {
		responses[i] = *MedicineToResponse(&medicines[i])
	}
	return responses
}

func TreatmentToResponse(treatment *entity.Treatment) *dto.TreatmentResponse {
	if treatment == nil {
		return nil
	}

	return &dto.TreatmentResponse{
		ID:          treatment.ID,
		Name:        treatment.Name,
		Description: treatment.Description,
		IsDeleted:   treatment.IsDeleted,
		CreatedAt:   treatment.CreatedAt,
		UpdatedAt:   treatment.UpdatedAt,
	}
}

func TreatmentsToResponses(treatments []entity.Treatment) []dto.TreatmentResponse {
	responses := make([]dto.TreatmentResponse, len(treatments))
	for i := range treatments {
		responses[i] = *TreatmentToResponse(&treatments[i])
	}
	return responses
}

func PetHealthBookToResponse(book *entity.PetHealthBook) *dto.PetHealthBookResponse {
	if book == nil {
		return nil
	}

	return &dto.PetHealthBookResponse{
		ID:                   book.ID,
		BookingServiceItemID: book.BookingServiceItemID,
		MedicineIDs:          book.MedicineIDs,
		VisitDate:            book.VisitDate,
		NextVisitDate:        book.NextVisitDate,
		PerformBy:            book.PerformBy,
		IsDeleted:            book.IsDeleted,
		CreatedAt:            book.CreatedAt,
		UpdatedAt:            book.UpdatedAt,
	}
}

func PetHealthBooksToResponses(books []entity.PetHealthBook) []dto.PetHealthBookResponse {
	responses := make([]dto.PetHealthBookResponse, len(books))
	for i := range books {
		responses[i] = *PetHealthBookToResponse(&books[i])
	}
	return responses
}
