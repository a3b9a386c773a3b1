package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SummaryResponse métricas principales de la pestaña de reporte y caja.
// Cash excluye ventas de productos ya eliminados; GrossCash es la suma
// completa del journal (la historia nunca se muta).
type SummaryResponse struct {
	Cash             decimal.Decimal `json:"cash"`
	CashDisplay      string          `json:"cash_display"`
	GrossCash        decimal.Decimal `json:"gross_cash"`
	TotalUnitsSold   int64           `json:"total_units_sold"`
	TotalStock       int64           `json:"total_stock"`
	DistinctProducts int             `json:"distinct_products"`
}

// CategoryMetric agregado por categoría (datos para las gráficas).
type CategoryMetric struct {
	Category string `json:"category"`
	Value    int64  `json:"value"`
}

// CategoryCashMetric caja por categoría.
type CategoryCashMetric struct {
	Category string          `json:"category"`
	Cash     decimal.Decimal `json:"cash"`
}

// SaleEventResponse un evento del journal hacia afuera.
type SaleEventResponse struct {
	ID          string          `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Size        string          `json:"size"`
	Category    string          `json:"category"`
	Location    string          `json:"location"`
	Price       decimal.Decimal `json:"price"`
}

// SalesListResponse listado del journal.
type SalesListResponse struct {
	Items []SaleEventResponse `json:"items"`
	Total int                 `json:"total"`
}
