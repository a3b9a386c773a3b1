package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-tienda/internal/application/dto"
	"github.com/tu-usuario/inventario-tienda/internal/application/inventory"
	"github.com/tu-usuario/inventario-tienda/internal/domain"
)

// CategoryHandler maneja el catálogo de categorías.
type CategoryHandler struct {
	store *inventory.Store
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(store *inventory.Store) *CategoryHandler {
	return &CategoryHandler{store: store}
}

// List godoc
// @Summary      Listar categorías (base + personalizadas, ordenadas)
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.ListCategories())
}

// Add godoc
// @Summary      Agregar categoría personalizada
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCategoryRequest  true  "name"
// @Success      201   {object}  dto.CategoryListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Add(c *fiber.Ctx) error {
	var in dto.AddCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.store.AddCategory(c.UserContext(), in.Name)
	return respondMutation(c, fiber.StatusCreated, h.store.ListCategories(), err)
}

// Remove godoc
// @Summary      Quitar categoría personalizada (las base son inmutables)
// @Tags         categories
// @Security     Bearer
// @Param        name  path  string  true  "nombre de la categoría"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories/{name} [delete]
func (h *CategoryHandler) Remove(c *fiber.Ctx) error {
	name, err := nameParam(c)
	if err != nil {
		return respondError(c, err)
	}
	err = h.store.RemoveCategory(c.UserContext(), name)
	return respondMutation(c, fiber.StatusNoContent, nil, err)
}

// Sizes godoc
// @Summary      Tallas sugeridas para una categoría
// @Tags         categories
// @Produce      json
// @Param        name  path  string  true  "nombre de la categoría"
// @Success      200   {object}  dto.SizeOptionsResponse
// @Router       /api/categories/{name}/sizes [get]
func (h *CategoryHandler) Sizes(c *fiber.Ctx) error {
	name, err := nameParam(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inventory.SizeOptions(name))
}

// nameParam decodifica el :name de la ruta (puede llevar espacios o acentos).
func nameParam(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || strings.TrimSpace(name) == "" {
		return "", domain.ErrValidation
	}
	return name, nil
}
