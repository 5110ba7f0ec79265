package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bikepulse/internal/domain/dto"
	"github.com/guttosm/bikepulse/internal/domain/models"
	"github.com/guttosm/bikepulse/internal/middleware"
	"github.com/guttosm/bikepulse/internal/service"
)

// Handler provides HTTP handlers for rental summary endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Call the rental service
//   - Translate results and domain errors into response DTOs
type Handler struct {
	svc service.RentalService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.RentalService) *Handler {
	return &Handler{svc: svc}
}

// summaryQuery holds the optional inclusive date bounds.
type summaryQuery struct {
	Start string `form:"start" binding:"omitempty,datetime=2006-01-02"`
	End   string `form:"end" binding:"omitempty,datetime=2006-01-02"`
}

// GetSummary godoc
// @Summary      Rental summary for a date range
// @Description  Returns sum/mean/max of daily rentals plus monthly, seasonal and weekday totals for the inclusive range. Missing bounds default to the dataset span. A range without data returns 200 with empty=true.
// @Tags         summary
// @Produce      json
// @Param        start  query     string  false  "Start date in YYYY-MM-DD" example(2011-01-01)
// @Param        end    query     string  false  "End date in YYYY-MM-DD"   example(2012-12-31)
// @Success      200    {object}  dto.SummaryResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse    "Bad Request"
// @Failure      503    {object}  dto.ErrorResponse    "Dataset unavailable"
// @Failure      500    {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/v1/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	// ─── Validate query params ────────────────────────────────
	var q summaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD", err)
		return
	}
	start, err := parseOptionalDate(q.Start)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid start, expected YYYY-MM-DD", err)
		return
	}
	end, err := parseOptionalDate(q.End)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid end, expected YYYY-MM-DD", err)
		return
	}

	// ─── Aggregate ─────────────────────────────────────────────
	res, err := h.svc.Summarize(c.Request.Context(), start, end)
	if err != nil {
		status, msg := statusFor(err)
		middleware.AbortWithError(c, status, msg, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSummaryResponse(res))
}

// GetDataset godoc
// @Summary      Dataset information
// @Description  Returns the source, record count and date span of the loaded dataset. Clients use the span to bound date pickers.
// @Tags         dataset
// @Produce      json
// @Success      200  {object}  dto.DatasetResponse  "Success"
// @Failure      503  {object}  dto.ErrorResponse    "Dataset unavailable"
// @Router       /api/v1/dataset [get]
func (h *Handler) GetDataset(c *gin.Context) {
	r, n, err := h.svc.Bounds(c.Request.Context())
	if err != nil {
		status, msg := statusFor(err)
		middleware.AbortWithError(c, status, msg, err)
		return
	}
	c.JSON(http.StatusOK, dto.DatasetResponse{
		Source:  h.svc.SourceName(),
		Records: n,
		Start:   r.Start.Format(time.DateOnly),
		End:     r.End.Format(time.DateOnly),
	})
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrInvalidRange):
		return http.StatusBadRequest, "invalid date range"
	case errors.Is(err, models.ErrDataUnavailable):
		return http.StatusServiceUnavailable, "rental data unavailable"
	default:
		return http.StatusInternalServerError, "failed to compute summary"
	}
}
