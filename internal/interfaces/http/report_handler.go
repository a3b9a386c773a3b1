package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-tienda/internal/application/dto"
	"github.com/tu-usuario/inventario-tienda/internal/application/inventory"
)

// ReportHandler consultas de solo lectura: reporte, caja y exportación.
type ReportHandler struct {
	store *inventory.Store
	pdf   inventory.ReportPDFGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(store *inventory.Store, pdf inventory.ReportPDFGenerator) *ReportHandler {
	return &ReportHandler{store: store, pdf: pdf}
}

// Summary godoc
// @Summary      Métricas principales: caja, stock, ventas, productos únicos
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.store.Summary())
}

// SalesByCategory godoc
// @Summary      Unidades vendidas por categoría
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.CategoryMetric
// @Router       /api/reports/sales-by-category [get]
func (h *ReportHandler) SalesByCategory(c *fiber.Ctx) error {
	return c.JSON(h.store.SalesByCategory())
}

// StockByCategory godoc
// @Summary      Unidades en existencia por categoría
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.CategoryMetric
// @Router       /api/reports/stock-by-category [get]
func (h *ReportHandler) StockByCategory(c *fiber.Ctx) error {
	return c.JSON(h.store.StockByCategory())
}

// CashByCategory godoc
// @Summary      Caja por categoría (derivada del journal)
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.CategoryCashMetric
// @Router       /api/reports/cash-by-category [get]
func (h *ReportHandler) CashByCategory(c *fiber.Ctx) error {
	return c.JSON(h.store.CashByCategory())
}

// Sales godoc
// @Summary      Journal de ventas completo, en orden de anexado
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.SalesListResponse
// @Router       /api/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	return c.JSON(h.store.ListSales())
}

// ExportCSV godoc
// @Summary      Exportar el inventario como CSV (valores numéricos crudos)
// @Tags         export
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/export/csv [get]
func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	data, err := h.store.ExportCSV()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+inventory.ExportFilename("csv")+`"`)
	return c.Send(data)
}

// ExportPDF godoc
// @Summary      Exportar el reporte de inventario y caja como PDF
// @Tags         export
// @Produce      application/pdf
// @Success      200  {string}  string
// @Router       /api/export/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	data, err := h.pdf.GenerateReportPDF(c.UserContext(), h.store.Summary(), h.store.ListProducts("").Items)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+inventory.ExportFilename("pdf")+`"`)
	return c.Send(data)
}
