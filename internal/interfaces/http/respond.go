package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/dto"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain"
)

// respond envía la envoltura uniforme de éxito.
func respond(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.NewEnvelope(true, message, data, status))
}

// respondError envía la envoltura uniforme de error con el status dado.
func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.NewEnvelope(false, message, nil, status))
}

// fail mapea los errores sentinela del dominio a códigos HTTP.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return respondError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrBusinessRule),
		errors.Is(err, domain.ErrDuplicate):
		return respondError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return respondError(c, fiber.StatusUnauthorized, err.Error())
	default:
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// badBody respuesta estándar para un body que no parsea.
func badBody(c *fiber.Ctx) error {
	return respondError(c, fiber.StatusBadRequest, "cuerpo de la petición inválido")
}
