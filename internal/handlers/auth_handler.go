package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/idcaller/internal/dto"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.authService.Register(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNumberTaken) {
			return errorJSON(c, fiber.StatusConflict, "User with this number already exists.")
		}
		return respondError(c, err, "register", uuid.Nil, "Server error during registration.")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return errorJSON(c, fiber.StatusUnauthorized, "Invalid credentials.")
		}
		return respondError(c, err, "login", uuid.Nil, "Server error during login.")
	}

	return c.JSON(resp)
}
