package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-tienda/internal/application/dto"
	"github.com/tu-usuario/inventario-tienda/internal/application/inventory"
)

// ProductHandler maneja las peticiones HTTP para el libro mayor de productos.
type ProductHandler struct {
	store *inventory.Store
}

// NewProductHandler construye el handler.
func NewProductHandler(store *inventory.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// Create godoc
// @Summary      Cargar mercancía nueva
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.store.CreateProduct(c.UserContext(), in)
	return respondMutation(c, fiber.StatusCreated, out, err)
}

// List godoc
// @Summary      Listar productos (con buscador por nombre)
// @Tags         products
// @Produce      json
// @Param        q   query  string  false  "subcadena del nombre"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.ListProducts(c.Query("q")))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out := h.store.GetProduct(c.Params("id"))
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar producto (campos de texto y total de entrada)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a editar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.store.EditProduct(c.UserContext(), c.Params("id"), in)
	return respondMutation(c, fiber.StatusOK, out, err)
}

// Delete godoc
// @Summary      Eliminar producto (el journal de ventas no se toca)
// @Tags         products
// @Security     Bearer
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	err := h.store.DeleteProduct(c.UserContext(), c.Params("id"))
	return respondMutation(c, fiber.StatusNoContent, nil, err)
}

// AdjustStock godoc
// @Summary      Ajustar el total de entrada de un producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.AdjustStockRequest  true  "entry_total nuevo"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [put]
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.store.AdjustStock(c.UserContext(), c.Params("id"), in.EntryTotal)
	return respondMutation(c, fiber.StatusOK, out, err)
}

// UpdatePrice godoc
// @Summary      Cambiar precio sugerido o de venta
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdatePriceRequest  true  "which: sugerido|venta"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/price [put]
func (h *ProductHandler) UpdatePrice(c *fiber.Ctx) error {
	var in dto.UpdatePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.store.UpdatePrice(c.UserContext(), c.Params("id"), in)
	return respondMutation(c, fiber.StatusOK, out, err)
}

// Sell godoc
// @Summary      Vender una unidad (descuenta solo de la ubicación principal)
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.SellRequest  false  "price opcional (precio realizado)"
// @Success      201   {object}  dto.SaleEventResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/sell [post]
func (h *ProductHandler) Sell(c *fiber.Ctx) error {
	var in dto.SellRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	out, err := h.store.Sell(c.UserContext(), c.Params("id"), in.Price)
	return respondMutation(c, fiber.StatusCreated, out, err)
}

// Move godoc
// @Summary      Trasladar unidades entre bodega y piso
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.MoveStockRequest  true  "quantity, from, to"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/move [post]
func (h *ProductHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.store.MoveStock(c.UserContext(), c.Params("id"), in)
	return respondMutation(c, fiber.StatusOK, out, err)
}
