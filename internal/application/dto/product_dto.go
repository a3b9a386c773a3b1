package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de mercancía (pestaña de administración).
// SalePrice es opcional: si falta, arranca igual al precio sugerido.
type CreateProductRequest struct {
	Category        string           `json:"category"`
	Name            string           `json:"name"`
	Size            string           `json:"size"`
	Color           string           `json:"color"`
	InitialQuantity int64            `json:"initial_quantity"`
	SuggestedPrice  decimal.Decimal  `json:"suggested_price"`
	SalePrice       *decimal.Decimal `json:"sale_price,omitempty"`
	InitialLocation string           `json:"initial_location"` // bodega | piso (por defecto piso)
}

// UpdateProductRequest edición de un producto. Los campos nil no se tocan.
// EntryTotal es el total histórico (vendido + en existencia); no puede bajar
// de lo ya vendido.
type UpdateProductRequest struct {
	Category   *string `json:"category,omitempty"`
	Name       *string `json:"name,omitempty"`
	Size       *string `json:"size,omitempty"`
	Color      *string `json:"color,omitempty"`
	EntryTotal *int64  `json:"entry_total,omitempty"`
}

// AdjustStockRequest ajuste de cantidades únicamente.
type AdjustStockRequest struct {
	EntryTotal int64 `json:"entry_total"`
}

// UpdatePriceRequest cambio de uno de los dos precios.
type UpdatePriceRequest struct {
	Which string          `json:"which"` // sugerido | venta
	Price decimal.Decimal `json:"price"`
}

// SellRequest venta de una unidad. Price opcional: si falta se usa el precio
// de venta guardado del producto.
type SellRequest struct {
	Price *decimal.Decimal `json:"price,omitempty"`
}

// MoveStockRequest traslado de unidades entre bodega y piso.
type MoveStockRequest struct {
	Quantity int64  `json:"quantity"`
	From     string `json:"from"`
	To       string `json:"to"`
}

// ProductResponse representación de un producto hacia afuera.
type ProductResponse struct {
	ID                string          `json:"id"`
	Category          string          `json:"category"`
	Name              string          `json:"name"`
	Size              string          `json:"size"`
	Color             string          `json:"color"`
	PrimaryLocation   string          `json:"primary_location"`
	QuantityWarehouse int64           `json:"quantity_warehouse"`
	QuantityFloor     int64           `json:"quantity_floor"`
	TotalQuantity     int64           `json:"total_quantity"`
	EntryTotal        int64           `json:"entry_total"`
	UnitsSold         int64           `json:"units_sold"`
	SuggestedPrice    decimal.Decimal `json:"suggested_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
