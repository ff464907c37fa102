package handlers

import (
	"mybalance/internal/dto"
	"mybalance/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ExpenseHandler struct {
	*LedgerHandler[*models.Expense, dto.ExpenseRequest, dto.ExpenseResponse]
}

func NewExpenseHandler(svc LedgerService[*models.Expense], exposeDetails bool, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{newLedgerHandler(svc, dto.ExpenseRequest.ToModel, dto.NewExpenseResponse, "expense", exposeDetails, logger)}
}

// Register mounts the expense routes on r.
func (h *ExpenseHandler) Register(r fiber.Router) {
	r.Get("", h.ListExpenses)
	r.Post("", h.CreateExpense)
	r.Get("/date-range", h.ListExpensesByDateRange)
	r.Get("/:id", h.GetExpense)
	r.Put("/:id", h.UpdateExpense)
	r.Delete("/:id", h.DeleteExpense)
}

// ListExpenses godoc
// @Summary List expenses
// @Description Newest first. Optional startDate/endDate restrict the list to [startDate, endDate)
// @Tags expenses
// @Produce json
// @Security Bearer
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date, exclusive (YYYY-MM-DD)"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/expenses [get]
func (h *ExpenseHandler) ListExpenses(c *fiber.Ctx) error {
	return h.List(c)
}

// ListExpensesByDateRange godoc
// @Summary List expenses in a date range
// @Tags expenses
// @Produce json
// @Security Bearer
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date, exclusive (YYYY-MM-DD)"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/expenses/date-range [get]
func (h *ExpenseHandler) ListExpensesByDateRange(c *fiber.Ctx) error {
	return h.ListByDateRange(c)
}

// GetExpense godoc
// @Summary Get expense
// @Tags expenses
// @Produce json
// @Security Bearer
// @Param id path int true "Record id"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *fiber.Ctx) error {
	return h.Get(c)
}

// CreateExpense godoc
// @Summary Create expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.ExpenseRequest true "Record"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/expenses [post]
func (h *ExpenseHandler) CreateExpense(c *fiber.Ctx) error {
	return h.Create(c)
}

// UpdateExpense godoc
// @Summary Replace expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Record id"
// @Param request body dto.ExpenseRequest true "Record"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *fiber.Ctx) error {
	return h.Update(c)
}

// DeleteExpense godoc
// @Summary Delete expense
// @Tags expenses
// @Security Bearer
// @Param id path int true "Record id"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *fiber.Ctx) error {
	return h.Delete(c)
}
