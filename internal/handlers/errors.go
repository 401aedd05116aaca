package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/idcaller/internal/dto"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/identity"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

// respondError maps service errors to status codes. Anything unrecognised
// is logged with its cause and reported with fallback only.
func respondError(c *fiber.Ctx, err error, action string, callerID uuid.UUID, fallback string) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return errorJSON(c, fiber.StatusBadRequest, verr.Reason)
	case errors.Is(err, services.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, "No records found for this number.")
	case errors.Is(err, identity.ErrUnauthorized):
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	attrs := []any{"action", action, "error", err.Error(), "request_id", requestID(c)}
	if callerID != uuid.Nil {
		attrs = append(attrs, "caller_id", callerID.String())
	}
	slog.Error("request failed", attrs...)
	return errorJSON(c, fiber.StatusInternalServerError, fallback)
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
