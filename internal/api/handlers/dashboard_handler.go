package handlers

import (
	"context"
	"time"

	"mybalance/internal/dto"
	"mybalance/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SummaryService interface {
	Default(ctx context.Context, userID int64) (models.FinancialSummary, error)
	Summary(ctx context.Context, userID int64, start, end time.Time) (models.FinancialSummary, error)
}

type DashboardHandler struct {
	summaryService SummaryService
	errors         errorWriter
	logger         *zap.Logger
}

func NewDashboardHandler(summaryService SummaryService, exposeDetails bool, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		summaryService: summaryService,
		errors:         errorWriter{logger: logger, exposeDetails: exposeDetails},
		logger:         logger,
	}
}

// Summary godoc
// @Summary Financial summary
// @Description Totals from the first day of the previous month to the end of the current month
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.FinancialSummaryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	summary, err := h.summaryService.Default(c.UserContext(), userID)
	if err != nil {
		return h.errors.write(c, err, "Failed to build financial summary")
	}
	return c.JSON(dto.NewFinancialSummaryResponse(summary))
}

// SummaryByDateRange godoc
// @Summary Financial summary for a date range
// @Description Totals for records dated in [startDate, endDate)
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date, exclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.FinancialSummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/dashboard/summary/date-range [get]
func (h *DashboardHandler) SummaryByDateRange(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	w, _, err := parseWindow(c, true)
	if err != nil {
		return badRequest(c, err.Error())
	}

	summary, err := h.summaryService.Summary(c.UserContext(), userID, w.Start, w.End)
	if err != nil {
		return h.errors.write(c, err, "Failed to build financial summary")
	}
	return c.JSON(dto.NewFinancialSummaryResponse(summary))
}
