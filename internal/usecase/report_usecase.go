package usecase

import (
	"context"

	"petcare-facility-api/internal/converter"
	"petcare-facility-api/internal/delivery/dto"
	"petcare-facility-api/internal/domain/entity"
	"petcare-facility-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReportUsecase interface {
	RoomStatusReport(ctx context.Context) (*dto.RoomStatusReportResponse, error)
	OccupancyReport(ctx context.Context) (*dto.OccupancyReportResponse, error)
	RevenueReport(ctx context.Context) (*dto.RevenueReportResponse, error)
}

type reportUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	roomRepo    repository.RoomRepository
	historyRepo repository.RoomHistoryRepository
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roomRepo repository.RoomRepository,
	historyRepo repository.RoomHistoryRepository,
) ReportUsecase {
	return &reportUsecase{
		db:          db,
		log:         log,
		roomRepo:    roomRepo,
		historyRepo: historyRepo,
	}
}

func (u *reportUsecase) RoomStatusReport(ctx context.Context) (*dto.RoomStatusReportResponse, error) {
	counts, err := u.roomRepo.CountByStatus(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to count rooms by status: %+v", err)
		return nil, err
	}

	report := &dto.RoomStatusReportResponse{
		Free:        counts[entity.RoomStatusFree],
		InUse:       counts[entity.RoomStatusInUse],
		Maintenance: counts[entity.RoomStatusMaintenance],
	}
	report.Total = report.Free + report.InUse + report.Maintenance

	return report, nil
}

func (u *reportUsecase) OccupancyReport(ctx context.Context) (*dto.OccupancyReportResponse, error) {
	histories, err := u.historyRepo.FindOpen(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find open occupancies: %+v", err)
		return nil, err
	}

	responses := converter.RoomHistoriesToResponses(histories)

	return &dto.OccupancyReportResponse{
		Occupancies: responses,
		Total:       len(responses),
	}, nil
}

func (u *reportUsecase) RevenueReport(ctx context.Context) (*dto.RevenueReportResponse, error) {
	rows, err := u.historyRepo.RevenueByRoomType(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to aggregate revenue by room type: %+v", err)
		return nil, err
	}

	report := &dto.RevenueReportResponse{
		RoomTypes: make([]dto.RoomTypeRevenueResponse, 0, len(rows)),
	}
	for _, row := range rows {
		report.RoomTypes = append(report.RoomTypes, dto.RoomTypeRevenueResponse{
			RoomTypeID:  row.RoomTypeID,
			Name:        row.Name,
			Occupancies: row.Occupancies,
			Revenue:     row.Revenue,
		})
		report.Total = report.Total.Add(row.Revenue)
	}

	return report, nil
}
