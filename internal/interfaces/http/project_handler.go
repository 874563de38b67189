package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/dto"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/projects"
)

// ProjectHandler maneja las peticiones HTTP de negocios.
type ProjectHandler struct {
	uc *projects.UseCase
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *projects.UseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// Create POST /api/negocios (conversión de cotización APPROVED)
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.CreateFromApproved(in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusCreated, "negocio creado", resp)
}

// GetByID GET /api/negocios/:id
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "negocio", resp)
}

// List GET /api/negocios?limit=20&offset=0
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "negocios", list)
}

// ChangeState PATCH /api/negocios/:id/estado
func (h *ProjectHandler) ChangeState(c *fiber.Ctx) error {
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

// Update PUT /api/negocios/:id
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "negocio actualizado", resp)
}
