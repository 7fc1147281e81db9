package handler

import (
	"net/http"

	"petcare-facility-api/internal/usecase"
	"petcare-facility-api/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
	}
}

func (h *ReportHandler) GetRoomStatusReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.RoomStatusReport(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build room status report")
		return
	}

	response.Success(w, http.StatusOK, "Room status report retrieved successfully", report)
}

func (h *ReportHandler) GetOccupancyReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.OccupancyReport(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build occupancy report")
		return
	}

	response.Success(w, http.StatusOK, "Occupancy report retrieved successfully", report)
}

func (h *ReportHandler) GetRevenueReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.RevenueReport(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build revenue report")
		return
	}

	response.Success(w, http.StatusOK, "Revenue report retrieved successfully", report)
}
