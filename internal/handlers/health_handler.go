package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/idcaller/internal/dto"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/store"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	store store.Store
}

func NewHealthHandler(st store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	status := fiber.StatusOK
	if err := h.store.Ping(c.UserContext()); err != nil {
		dbStatus = "unhealthy"
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}

func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.SendString("IDCaller API is running!")
}
