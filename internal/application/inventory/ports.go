package inventory

import (
	"context"

	"github.com/tu-usuario/inventario-tienda/internal/application/dto"
)

// ReportPDFGenerator genera la representación en PDF del reporte de
// inventario y caja. Implementado en infrastructure/pdf con Maroto.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, summary dto.SummaryResponse, products []dto.ProductResponse) ([]byte, error)
}
