package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Location ubicación física del stock de un producto.
type Location string

const (
	LocationWarehouse Location = "bodega" // stock en bodega
	LocationFloor     Location = "piso"   // stock en piso de venta
)

// Valid reporta si la ubicación es una de las dos conocidas.
func (l Location) Valid() bool {
	return l == LocationWarehouse || l == LocationFloor
}

// Product representa una prenda del inventario de la tienda.
// El stock se divide entre bodega y piso; TotalQuantity siempre es la suma de ambos.
// SalePrice es el precio realizado en caja y puede diferir de SuggestedPrice.
type Product struct {
	ID                string
	Category          string
	Name              string
	Size              string
	Color             string
	PrimaryLocation   Location // de dónde descuenta una venta
	QuantityWarehouse int64
	QuantityFloor     int64
	TotalQuantity     int64
	UnitsSold         int64
	SuggestedPrice    decimal.Decimal
	SalePrice         decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// QuantityAt devuelve la cantidad en la ubicación indicada.
func (p *Product) QuantityAt(loc Location) int64 {
	if loc == LocationWarehouse {
		return p.QuantityWarehouse
	}
	return p.QuantityFloor
}

// SetQuantityAt fija la cantidad en la ubicación indicada y recalcula el total.
func (p *Product) SetQuantityAt(loc Location, qty int64) {
	if loc == LocationWarehouse {
		p.QuantityWarehouse = qty
	} else {
		p.QuantityFloor = qty
	}
	p.TotalQuantity = p.QuantityWarehouse + p.QuantityFloor
}

// EntryTotal cantidad total ingresada históricamente: lo vendido más lo en existencia.
func (p *Product) EntryTotal() int64 {
	return p.UnitsSold + p.TotalQuantity
}
