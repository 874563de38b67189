package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/admin"
)

// AdminHandler operaciones administrativas de demo/reset.
type AdminHandler struct {
	uc *admin.UseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *admin.UseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// CleanData POST /api/admin/clean-data
func (h *AdminHandler) CleanData(c *fiber.Ctx) error {
	if err := h.uc.CleanData(); err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "datos de negocio eliminados", nil)
}

// Stats GET /api/admin/stats
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	resp, err := h.uc.Stats()
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "conteos por entidad", resp)
}
