package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-tienda/internal/application/dto"
	"github.com/tu-usuario/inventario-tienda/internal/domain"
)

// mapping error de dominio → código HTTP + código de API.
var errorMap = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrValidation, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrOutOfStock, fiber.StatusConflict, "OUT_OF_STOCK"},
	{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrCategoryInUse, fiber.StatusConflict, "CATEGORY_IN_USE"},
	{domain.ErrImmutableCategory, fiber.StatusConflict, "IMMUTABLE_CATEGORY"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrPersistence, fiber.StatusBadGateway, "PERSISTENCE"},
}

// respondError traduce un error de dominio a la respuesta estándar.
func respondError(c *fiber.Ctx, err error) error {
	for _, m := range errorMap {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// PersistWarningHeader aviso de que la mutación quedó aplicada en memoria
// pero el guardado falló (el caller puede reintentar con /api/admin/flush).
const PersistWarningHeader = "X-Persist-Warning"

// respondMutation responde una mutación del libro mayor. Un fallo de
// persistencia no revierte la mutación: se responde el resultado con el
// aviso en el header en lugar de un error duro.
func respondMutation(c *fiber.Ctx, status int, out interface{}, err error) error {
	if err != nil {
		if !errors.Is(err, domain.ErrPersistence) {
			return respondError(c, err)
		}
		c.Set(PersistWarningHeader, "guardado fallido; cambios aplicados en memoria")
	}
	if out == nil {
		return c.SendStatus(status)
	}
	return c.Status(status).JSON(out)
}
