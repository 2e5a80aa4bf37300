package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/akax-pajomel/ventas-api/internal/application/auth"
	"github.com/akax-pajomel/ventas-api/internal/application/dto"
)

// AuthHandler maneja el login del administrador.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errBody("INVALID_BODY", "cuerpo inválido"))
	}
	resp, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
