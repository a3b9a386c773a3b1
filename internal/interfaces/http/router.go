package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-tienda/internal/application/auth"
	"github.com/tu-usuario/inventario-tienda/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store     *inventory.Store
	AuthUC    *auth.AuthUseCase
	PDF       inventory.ReportPDFGenerator
	JWTSecret string
}

// Router registra las rutas de la API. Vender y consultar son públicos (el
// mostrador de la tienda); las mutaciones del catálogo y del libro mayor
// exigen la sesión de administrador.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	productHandler := NewProductHandler(deps.Store)
	categoryHandler := NewCategoryHandler(deps.Store)
	reportHandler := NewReportHandler(deps.Store, deps.PDF)
	adminHandler := NewAdminHandler(deps.Store)

	// Mostrador (público): consultar, vender, reportes y exportación.
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)
	api.Post("/products/:id/sell", productHandler.Sell)

	api.Get("/categories", categoryHandler.List)
	api.Get("/categories/:name/sizes", categoryHandler.Sizes)

	api.Get("/reports/summary", reportHandler.Summary)
	api.Get("/reports/sales-by-category", reportHandler.SalesByCategory)
	api.Get("/reports/stock-by-category", reportHandler.StockByCategory)
	api.Get("/reports/cash-by-category", reportHandler.CashByCategory)
	api.Get("/sales", reportHandler.Sales)
	api.Get("/export/csv", reportHandler.ExportCSV)
	api.Get("/export/pdf", reportHandler.ExportPDF)

	// Administración (requiere Bearer Token con rol admin).
	admin := api.Group("/", AdminMiddleware(deps.JWTSecret))
	admin.Post("/products", productHandler.Create)
	admin.Put("/products/:id", productHandler.Update)
	admin.Delete("/products/:id", productHandler.Delete)
	admin.Put("/products/:id/stock", productHandler.AdjustStock)
	admin.Put("/products/:id/price", productHandler.UpdatePrice)
	admin.Post("/products/:id/move", productHandler.Move)

	admin.Post("/categories", categoryHandler.Add)
	admin.Delete("/categories/:name", categoryHandler.Remove)

	admin.Post("/admin/reset", adminHandler.Reset)
	admin.Post("/admin/flush", adminHandler.Flush)
}
