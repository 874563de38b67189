package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/dto"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/invoices"
)

// InvoiceHandler maneja las peticiones HTTP de facturas.
type InvoiceHandler struct {
	uc *invoices.UseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *invoices.UseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Create POST /api/facturas
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusCreated, "factura creada", resp)
}

// GetByID GET /api/facturas/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "factura", resp)
}

// List GET /api/facturas?limit=20&offset=0
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "facturas", list)
}

// ChangeState PATCH /api/facturas/:id/estado
func (h *InvoiceHandler) ChangeState(c *fiber.Ctx) error {
	var in dto.ChangeStateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.ChangeState(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "estado actualizado", resp)
}
