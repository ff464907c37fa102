package handlers

import (
	"mybalance/internal/dto"
	"mybalance/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SavingsHandler struct {
	*LedgerHandler[*models.Savings, dto.SavingsRequest, dto.SavingsResponse]
}

func NewSavingsHandler(svc LedgerService[*models.Savings], exposeDetails bool, logger *zap.Logger) *SavingsHandler {
	return &SavingsHandler{newLedgerHandler(svc, dto.SavingsRequest.ToModel, dto.NewSavingsResponse, "savings", exposeDetails, logger)}
}

// Register mounts the savings routes on r.
func (h *SavingsHandler) Register(r fiber.Router) {
	r.Get("", h.ListSavings)
	r.Post("", h.CreateSavings)
	r.Get("/date-range", h.ListSavingsByDateRange)
	r.Get("/:id", h.GetSavings)
	r.Put("/:id", h.UpdateSavings)
	r.Delete("/:id", h.DeleteSavings)
}

// ListSavings godoc
// @Summary List savings deposits
// @Description Newest first. Optional startDate/endDate restrict the list to [startDate, endDate)
// @Tags savings
// @Produce json
// @Security Bearer
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date, exclusive (YYYY-MM-DD)"
// @Success 200 {array} dto.SavingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/savings [get]
func (h *SavingsHandler) ListSavings(c *fiber.Ctx) error {
	return h.List(c)
}

// ListSavingsByDateRange godoc
// @Summary List savings deposits in a date range
// @Tags savings
// @Produce json
// @Security Bearer
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date, exclusive (YYYY-MM-DD)"
// @Success 200 {array} dto.SavingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/savings/date-range [get]
func (h *SavingsHandler) ListSavingsByDateRange(c *fiber.Ctx) error {
	return h.ListByDateRange(c)
}

// GetSavings godoc
// @Summary Get savings deposit
// @Tags savings
// @Produce json
// @Security Bearer
// @Param id path int true "Record id"
// @Success 200 {object} dto.SavingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/savings/{id} [get]
func (h *SavingsHandler) GetSavings(c *fiber.Ctx) error {
	return h.Get(c)
}

// CreateSavings godoc
// @Summary Create savings deposit
// @Tags savings
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.SavingsRequest true "Record"
// @Success 201 {object} dto.SavingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/savings [post]
func (h *SavingsHandler) CreateSavings(c *fiber.Ctx) error {
	return h.Create(c)
}

// UpdateSavings godoc
// @Summary Replace savings deposit
// @Tags savings
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Record id"
// @Param request body dto.SavingsRequest true "Record"
// @Success 200 {object} dto.SavingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/savings/{id} [put]
func (h *SavingsHandler) UpdateSavings(c *fiber.Ctx) error {
	return h.Update(c)
}

// DeleteSavings godoc
// @Summary Delete savings deposit
// @Tags savings
// @Security Bearer
// @Param id path int true "Record id"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/savings/{id} [delete]
func (h *SavingsHandler) DeleteSavings(c *fiber.Ctx) error {
	return h.Delete(c)
}
