package handlers

import (
	"mybalance/internal/dto"
	"mybalance/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type IncomeHandler struct {
	*LedgerHandler[*models.Income, dto.IncomeRequest, dto.IncomeResponse]
}

func NewIncomeHandler(svc LedgerService[*models.Income], exposeDetails bool, logger *zap.Logger) *IncomeHandler {
	return &IncomeHandler{newLedgerHandler(svc, dto.IncomeRequest.ToModel, dto.NewIncomeResponse, "income", exposeDetails, logger)}
}

// Register mounts the income routes on r.
func (h *IncomeHandler) Register(r fiber.Router) {
	r.Get("", h.ListIncome)
	r.Post("", h.CreateIncome)
	r.Get("/date-range", h.ListIncomeByDateRange)
	r.Get("/:id", h.GetIncome)
	r.Put("/:id", h.UpdateIncome)
	r.Delete("/:id", h.DeleteIncome)
}

// ListIncome godoc
// @Summary List income records
// @Description Newest first. Optional startDate/endDate restrict the list to [startDate, endDate)
// @Tags income
// @Produce json
// @Security Bearer
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date, exclusive (YYYY-MM-DD)"
// @Success 200 {array} dto.IncomeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/income [get]
func (h *IncomeHandler) ListIncome(c *fiber.Ctx) error {
	return h.List(c)
}

// ListIncomeByDateRange godoc
// @Summary List income records in a date range
// @Tags income
// @Produce json
// @Security Bearer
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date, exclusive (YYYY-MM-DD)"
// @Success 200 {array} dto.IncomeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/income/date-range [get]
func (h *IncomeHandler) ListIncomeByDateRange(c *fiber.Ctx) error {
	return h.ListByDateRange(c)
}

// GetIncome godoc
// @Summary Get income record
// @Tags income
// @Produce json
// @Security Bearer
// @Param id path int true "Record id"
// @Success 200 {object} dto.IncomeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/income/{id} [get]
func (h *IncomeHandler) GetIncome(c *fiber.Ctx) error {
	return h.Get(c)
}

// CreateIncome godoc
// @Summary Create income record
// @Tags income
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.IncomeRequest true "Record"
// @Success 201 {object} dto.IncomeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/income [post]
func (h *IncomeHandler) CreateIncome(c *fiber.Ctx) error {
	return h.Create(c)
}

// UpdateIncome godoc
// @Summary Replace income record
// @Tags income
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Record id"
// @Param request body dto.IncomeRequest true "Record"
// @Success 200 {object} dto.IncomeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/income/{id} [put]
func (h *IncomeHandler) UpdateIncome(c *fiber.Ctx) error {
	return h.Update(c)
}

// DeleteIncome godoc
// @Summary Delete income record
// @Tags income
// @Security Bearer
// @Param id path int true "Record id"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/income/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c *fiber.Ctx) error {
	return h.Delete(c)
}
