package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/clients"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/dto"
)

// ClientHandler maneja las peticiones HTTP de clientes.
type ClientHandler struct {
	uc *clients.UseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *clients.UseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create POST /api/clientes
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusCreated, "cliente creado", resp)
}

// GetByID GET /api/clientes/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "cliente", resp)
}

// List GET /api/clientes?soloActivos=true&limit=20&offset=0
func (h *ClientHandler) List(c *fiber.Ctx) error {
	onlyActive := c.Query("soloActivos", "true") != "false"
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(onlyActive, limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "clientes", list)
}

// Update PUT /api/clientes/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "cliente actualizado", resp)
}

// Delete DELETE /api/clientes/:id (baja lógica)
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "cliente desactivado", nil)
}
