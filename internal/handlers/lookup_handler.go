package handlers

import (
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/identity"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LookupHandler struct {
	lookupService *services.LookupService
}

func NewLookupHandler(lookupService *services.LookupService) *LookupHandler {
	return &LookupHandler{lookupService: lookupService}
}

// SearchByName handles GET /search/name?q=
func (h *LookupHandler) SearchByName(c *fiber.Ctx) error {
	callerID, err := identity.CallerID(c)
	if err != nil {
		return respondError(c, err, "caller_identity", uuid.Nil, "Unauthorized")
	}

	results, err := h.lookupService.ResolveByName(c.UserContext(), c.Query("q"), callerID)
	if err != nil {
		return respondError(c, err, "search_by_name", callerID, "Server error during name search.")
	}
	return c.JSON(results)
}

// SearchByNumber handles GET /search/number?num=
func (h *LookupHandler) SearchByNumber(c *fiber.Ctx) error {
	callerID, err := identity.CallerID(c)
	if err != nil {
		return respondError(c, err, "caller_identity", uuid.Nil, "Unauthorized")
	}

	results, err := h.lookupService.ResolveByNumber(c.UserContext(), c.Query("num"), callerID)
	if err != nil {
		return respondError(c, err, "search_by_number", callerID, "Server error during number search.")
	}
	return c.JSON(results)
}
