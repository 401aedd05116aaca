package handlers

import (
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/dto"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/identity"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SpamHandler struct {
	spamService *services.SpamService
}

func NewSpamHandler(spamService *services.SpamService) *SpamHandler {
	return &SpamHandler{spamService: spamService}
}

func (h *SpamHandler) MarkSpam(c *fiber.Ctx) error {
	callerID, err := identity.CallerID(c)
	if err != nil {
		return respondError(c, err, "caller_identity", uuid.Nil, "Unauthorized")
	}

	var req dto.ReportSpamRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	report, err := h.spamService.ReportSpam(c.UserContext(), callerID, req.Number)
	if err != nil {
		return respondError(c, err, "mark_spam", callerID, "Server error while marking spam.")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SpamReportResponse{
		Message: "Number marked as spam successfully!",
		Report:  report,
	})
}
