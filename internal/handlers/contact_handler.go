package handlers

import (
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/dto"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/identity"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) AddContact(c *fiber.Ctx) error {
	callerID, err := identity.CallerID(c)
	if err != nil {
		return respondError(c, err, "caller_identity", uuid.Nil, "Unauthorized")
	}

	var req dto.AddContactRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	contact, err := h.contactService.AddContact(c.UserContext(), callerID, &req)
	if err != nil {
		return respondError(c, err, "add_contact", callerID, "Server error while adding contact.")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ContactResponse{
		Message: "Contact added successfully!",
		Contact: contact,
	})
}
