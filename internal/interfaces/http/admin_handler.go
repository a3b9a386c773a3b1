package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-tienda/internal/application/inventory"
)

// AdminHandler operaciones de mantenimiento de la tienda (protegidas).
type AdminHandler struct {
	store *inventory.Store
}

// NewAdminHandler construye el handler.
func NewAdminHandler(store *inventory.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// Reset godoc
// @Summary      Reinicio global: regresa lo vendido a existencia y vacía el journal
// @Tags         admin
// @Security     Bearer
// @Success      204
// @Router       /api/admin/reset [post]
func (h *AdminHandler) Reset(c *fiber.Ctx) error {
	err := h.store.ResetAll(c.UserContext())
	return respondMutation(c, fiber.StatusNoContent, nil, err)
}

// Flush godoc
// @Summary      Reintentar el guardado del estado actual
// @Tags         admin
// @Security     Bearer
// @Success      204
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/admin/flush [post]
func (h *AdminHandler) Flush(c *fiber.Ctx) error {
	if err := h.store.Flush(c.UserContext()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
