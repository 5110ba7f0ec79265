package dto

import (
	"time"

	"github.com/guttosm/bikepulse/internal/domain/models"
)

// SummaryResponse represents the JSON structure returned by the
// GET /api/v1/summary endpoint.
//
// Fields match the API contract and may differ from internal domain models.
// An empty range is still a 200: Empty is true, Message explains it and the
// metric/series fields are omitted.
type SummaryResponse struct {
	Start    string                `json:"start" example:"2011-01-01"`
	End      string                `json:"end" example:"2012-12-31"`
	Empty    bool                  `json:"empty"`
	Message  string                `json:"message,omitempty" example:"no data in selected date range"`
	Days     int                   `json:"days" example:"731"`
	Summary  *models.Summary       `json:"summary,omitempty"`
	Monthly  []models.MonthTotal   `json:"monthly,omitempty"`
	Seasonal []models.SeasonTotal  `json:"seasonal,omitempty"`
	Weekday  []models.WeekdayTotal `json:"weekday,omitempty"`
}

// NoDataMessage is shown to users when the selected range matches nothing.
const NoDataMessage = "no data in selected date range"

// NewSummaryResponse maps an aggregation result onto the API contract.
func NewSummaryResponse(res *models.AggregateResult) SummaryResponse {
	resp := SummaryResponse{
		Start: res.Range.Start.Format(time.DateOnly),
		End:   res.Range.End.Format(time.DateOnly),
		Empty: res.Empty,
	}
	if res.Empty {
		resp.Message = NoDataMessage
		return resp
	}
	resp.Days = len(res.Records)
	resp.Summary = res.Summary
	resp.Monthly = res.Monthly
	resp.Seasonal = res.Seasonal
	resp.Weekday = res.Weekday
	return resp
}
