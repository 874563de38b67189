package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/dto"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/quotations"
)

// QuotationHandler maneja las peticiones HTTP de cotizaciones.
type QuotationHandler struct {
	uc *quotations.UseCase
}

// NewQuotationHandler construye el handler.
func NewQuotationHandler(uc *quotations.UseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc}
}

// Create POST /api/cotizaciones
func (h *QuotationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusCreated, "cotización creada", resp)
}

// GetByID GET /api/cotizaciones/:id
func (h *QuotationHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "cotización", resp)
}

// List GET /api/cotizaciones?limit=20&offset=0
func (h *QuotationHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "cotizaciones", list)
}

// ChangeState PATCH /api/cotizaciones/:id/estado
func (h *QuotationHandler) ChangeState(c *fiber.Ctx) error {
	var in dto.ChangeStateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.ChangeState(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "estado actualizado", resp)
}

// Update PUT /api/cotizaciones/:id
func (h *QuotationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "cotización actualizada", resp)
}

// Delete DELETE /api/cotizaciones/:id
func (h *QuotationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "cotización eliminada", nil)
}
