package handlers

import (
	"errors"
	"strconv"

	"mybalance/internal/dto"
	"mybalance/internal/models"
	"mybalance/internal/service"
	"mybalance/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var errStartAfterEnd = errors.New("Start date cannot be greater than end date")

func getUserID(c *fiber.Ctx) (int64, error) {
	userID, ok := c.Locals(middleware.LocalUserID).(int64)
	if !ok || userID <= 0 {
		return 0, fiber.ErrUnauthorized
	}
	return userID, nil
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("Invalid id")
	}
	return id, nil
}

// parseWindow reads startDate/endDate query parameters. With required=false and neither
// parameter present it returns ok=false.
func parseWindow(c *fiber.Ctx, required bool) (w models.Window, ok bool, err error) {
	rawStart, rawEnd := c.Query("startDate"), c.Query("endDate")
	if rawStart == "" && rawEnd == "" && !required {
		return models.Window{}, false, nil
	}
	if rawStart == "" || rawEnd == "" {
		return models.Window{}, false, errors.New("startDate and endDate are required")
	}

	start, err := dto.ParseDate(rawStart)
	if err != nil {
		return models.Window{}, false, err
	}
	end, err := dto.ParseDate(rawEnd)
	if err != nil {
		return models.Window{}, false, err
	}
	if start.After(end) {
		return models.Window{}, false, errStartAfterEnd
	}
	return models.Window{Start: start, End: end}, true, nil
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: message})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Invalid token"})
}

// errorWriter maps service errors onto HTTP responses.
type errorWriter struct {
	logger        *zap.Logger
	exposeDetails bool
}

func (w errorWriter) write(c *fiber.Ctx, err error, internalMessage string) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return badRequest(c, verr.Error())
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Resource not found"})
	case errors.Is(err, service.ErrUserExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "User with this email already exists"})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Invalid email or password"})
	case errors.Is(err, service.ErrAccountDisabled):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Account is disabled"})
	}

	w.logger.Error(internalMessage,
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	resp := dto.ErrorResponse{Message: internalMessage}
	if w.exposeDetails {
		resp.Details = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(resp)
}
