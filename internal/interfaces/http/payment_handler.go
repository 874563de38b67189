package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/dto"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/payments"
)

// PaymentHandler maneja las peticiones HTTP del libro de pagos.
type PaymentHandler struct {
	uc *payments.UseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *payments.UseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create POST /api/pagos
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusCreated, "pago registrado", resp)
}

// ListByProject GET /api/pagos?negocioId=
func (h *PaymentHandler) ListByProject(c *fiber.Ctx) error {
	projectID := c.Query("negocioId")
	if projectID == "" {
		return respondError(c, fiber.StatusBadRequest, "negocioId requerido")
	}
	list, err := h.uc.ListByProject(projectID)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "pagos del negocio", list)
}

// Delete DELETE /api/pagos/:id
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "pago eliminado", nil)
}
