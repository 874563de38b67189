package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/auth"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/dto"
)

// AuthHandler maneja la autenticación.
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
		return badBody(c)
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "autenticado", resp)
}
