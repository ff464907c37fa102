package handlers

import (
	"context"

	"mybalance/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type LedgerService[T models.Record] interface {
	List(ctx context.Context, userID int64) ([]T, error)
	ListRange(ctx context.Context, userID int64, w models.Window) ([]T, error)
	Get(ctx context.Context, userID, id int64) (T, error)
	Create(ctx context.Context, userID int64, rec T) (T, error)
	Update(ctx context.Context, userID, id int64, rec T) (T, error)
	Delete(ctx context.Context, userID, id int64) error
}

// LedgerHandler implements the CRUD endpoints shared by every transaction kind. Req is
// the JSON request body and Resp the JSON rendering of a stored record. The per-kind
// handlers embed it and carry the route annotations.
type LedgerHandler[T models.Record, Req any, Resp any] struct {
	service    LedgerService[T]
	toModel    func(Req) (T, error)
	toResponse func(T) Resp
	kind       string
	errors     errorWriter
	logger     *zap.Logger
}

func newLedgerHandler[T models.Record, Req any, Resp any](
	svc LedgerService[T],
	toModel func(Req) (T, error),
	toResponse func(T) Resp,
	kind string,
	exposeDetails bool,
	logger *zap.Logger,
) *LedgerHandler[T, Req, Resp] {
	return &LedgerHandler[T, Req, Resp]{
		service:    svc,
		toModel:    toModel,
		toResponse: toResponse,
		kind:       kind,
		errors:     errorWriter{logger: logger, exposeDetails: exposeDetails},
		logger:     logger,
	}
}

// List returns every record of the caller, newest first. Optional startDate/endDate
// query parameters restrict it to [startDate, endDate).
func (h *LedgerHandler[T, Req, Resp]) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	w, filtered, err := parseWindow(c, false)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var records []T
	if filtered {
		records, err = h.service.ListRange(c.UserContext(), userID, w)
	} else {
		records, err = h.service.List(c.UserContext(), userID)
	}
	if err != nil {
		return h.errors.write(c, err, "Failed to list "+h.kind)
	}
	return c.JSON(h.render(records))
}

func (h *LedgerHandler[T, Req, Resp]) ListByDateRange(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	w, _, err := parseWindow(c, true)
	if err != nil {
		return badRequest(c, err.Error())
	}

	records, err := h.service.ListRange(c.UserContext(), userID, w)
	if err != nil {
		return h.errors.write(c, err, "Failed to list "+h.kind)
	}
	return c.JSON(h.render(records))
}

func (h *LedgerHandler[T, Req, Resp]) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	rec, err := h.service.Get(c.UserContext(), userID, id)
	if err != nil {
		return h.errors.write(c, err, "Failed to get "+h.kind)
	}
	return c.JSON(h.toResponse(rec))
}

func (h *LedgerHandler[T, Req, Resp]) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	rec, err := h.parseBody(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.service.Create(c.UserContext(), userID, rec)
	if err != nil {
		return h.errors.write(c, err, "Failed to create "+h.kind)
	}
	return c.Status(fiber.StatusCreated).JSON(h.toResponse(created))
}

func (h *LedgerHandler[T, Req, Resp]) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	rec, err := h.parseBody(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	updated, err := h.service.Update(c.UserContext(), userID, id, rec)
	if err != nil {
		return h.errors.write(c, err, "Failed to update "+h.kind)
	}
	return c.JSON(h.toResponse(updated))
}

func (h *LedgerHandler[T, Req, Resp]) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.service.Delete(c.UserContext(), userID, id); err != nil {
		return h.errors.write(c, err, "Failed to delete "+h.kind)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *LedgerHandler[T, Req, Resp]) parseBody(c *fiber.Ctx) (T, error) {
	var req Req
	if err := c.BodyParser(&req); err != nil {
		var zero T
		return zero, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return h.toModel(req)
}

func (h *LedgerHandler[T, Req, Resp]) render(records []T) []Resp {
	out := make([]Resp, 0, len(records))
	for _, r := range records {
		out = append(out, h.toResponse(r))
	}
	return out
}
