package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response DTOs

type RoomStatusReportResponse struct {
	Free        int64 `json:"free"`
	InUse       int64 `json:"in_use"`
	Maintenance int64 `json:"maintenance"`
	Total       int64 `json:"total"`
}

type OccupancyReportResponse struct {
	Occupancies []RoomHistoryResponse `json:"occupancies"`
	Total       int                   `json:"total"`
}

type RoomTypeRevenueResponse struct {
	RoomTypeID  uuid.UUID       `json:"room_type_id"`
	Name        string          `json:"name"`
	Occupancies int64           `json:"occupancies"`
	Revenue     decimal.Decimal `json:"revenue"`
}

type RevenueReportResponse struct {
	RoomTypes []RoomTypeRevenueResponse `json:"room_types"`
	Total     decimal.Decimal           `json:"total"`
}

// DeleteResultResponse tells the caller which phase a delete landed on.
type DeleteResultResponse struct {
	Phase string `json:"phase"` // "soft" or "hard"
}
