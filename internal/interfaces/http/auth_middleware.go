package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-tienda/internal/application/auth"
	"github.com/tu-usuario/inventario-tienda/internal/application/dto"
	"github.com/tu-usuario/inventario-tienda/pkg/jwt"
)

// Locals keys para StoreRef y Role en Fiber.
const (
	LocalStoreRef = "store_ref"
	LocalRole     = "role"
)

// AdminMiddleware valida el Bearer Token JWT y exige el rol admin. Las
// mutaciones del catálogo y del libro mayor pasan por aquí; vender y
// consultar reportes quedan fuera.
func AdminMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		storeRef, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if role != auth.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere rol admin"})
		}
		c.Locals(LocalStoreRef, storeRef)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// GetStoreRef devuelve el StoreRef del contexto (después del middleware).
func GetStoreRef(c *fiber.Ctx) string {
	v := c.Locals(LocalStoreRef)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
