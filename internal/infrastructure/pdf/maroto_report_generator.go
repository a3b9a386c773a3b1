// Package pdf genera la representación imprimible del reporte de inventario
// y caja.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda + fecha del reporte            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MÉTRICAS: Caja | Stock total | Ventas | Productos únicos   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Producto | Talla | Bodega | Piso |      │
//	│         Ventas | Precio                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/inventario-tienda/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa inventory.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	storeName string
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(storeName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{storeName: storeName}
}

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(
	_ context.Context,
	summary dto.SummaryResponse,
	products []dto.ProductResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metricsRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF del reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoReportGenerator) headerRow() core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New(g.storeName, props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
			text.New("Reporte de inventario y caja", props.Text{
				Top: 6, Size: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("2006-01-02 15:04"), props.Text{
				Size: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func metricsRow(s dto.SummaryResponse) core.Row {
	metric := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray}),
			text.New(value, props.Text{Top: 3.5, Size: 11, Style: fontstyle.Bold}),
		)
	}
	return row.New(12).Add(
		metric("DINERO EN CAJA", s.CashDisplay),
		metric("STOCK TOTAL", fmt.Sprintf("%d unidades", s.TotalStock)),
		metric("VENTAS", fmt.Sprintf("%d", s.TotalUnitsSold)),
		metric("PRODUCTOS ÚNICOS", fmt.Sprintf("%d", s.DistinctProducts)),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Size: 8, Style: fontstyle.Bold, Color: colorPrimary,
		}))
	}
	return row.New(6).Add(
		header(2, "Categoría"),
		header(3, "Producto"),
		header(1, "Talla"),
		header(1, "Bodega"),
		header(1, "Piso"),
		header(1, "Ventas"),
		header(3, "Precio venta"),
	)
}

func productRow(p dto.ProductResponse) core.Row {
	cell := func(size int, value string) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8}))
	}
	return row.New(5).Add(
		cell(2, p.Category),
		cell(3, fmt.Sprintf("%s (%s)", p.Name, p.Color)),
		cell(1, p.Size),
		cell(1, fmt.Sprintf("%d", p.QuantityWarehouse)),
		cell(1, fmt.Sprintf("%d", p.QuantityFloor)),
		cell(1, fmt.Sprintf("%d", p.UnitsSold)),
		cell(3, "$"+p.SalePrice.StringFixed(2)),
	)
}
