package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/dto"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/workorders"
)

// WorkOrderHandler maneja las peticiones HTTP de órdenes de trabajo.
type WorkOrderHandler struct {
	uc *workorders.UseCase
}

// NewWorkOrderHandler construye el handler.
func NewWorkOrderHandler(uc *workorders.UseCase) *WorkOrderHandler {
	return &WorkOrderHandler{uc: uc}
}

// Create POST /api/ordenes-trabajo
func (h *WorkOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusCreated, "orden creada", resp)
}

// GetByID GET /api/ordenes-trabajo/:id
func (h *WorkOrderHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "orden", resp)
}

// List GET /api/ordenes-trabajo?negocioId=&limit=20&offset=0
func (h *WorkOrderHandler) List(c *fiber.Ctx) error {
	if projectID := c.Query("negocioId"); projectID != "" {
		list, err := h.uc.ListByProject(projectID)
		if err != nil {
			return fail(c, err)
		}
		return respond(c, fiber.StatusOK, "órdenes del negocio", list)
	}
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "órdenes", list)
}

// ChangeState PATCH /api/ordenes-trabajo/:id/estado
func (h *WorkOrderHandler) ChangeState(c *fiber.Ctx) error {
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

// Update PUT /api/ordenes-trabajo/:id
func (h *WorkOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "orden actualizada", resp)
}

// Delete DELETE /api/ordenes-trabajo/:id
func (h *WorkOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "orden eliminada", nil)
}
