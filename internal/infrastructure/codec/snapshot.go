// Package codec define el formato de alambre JSON del snapshot de la tienda
// y su migración desde esquemas anteriores. Los dos drivers de persistencia
// (archivo local y PostgreSQL) serializan a través de este paquete para que
// el contrato de migración sea el mismo en ambos.
package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-tienda/internal/domain/entity"
)

// jsonProduct registro de producto en el alambre.
//
// El esquema original de la hoja de cálculo no separaba bodega y piso: traía
// un solo "stock" (y a veces solo "entrada" y "ventas") y un solo "precio".
// Los campos viejos se conservan como punteros para detectar su ausencia y
// migrar sin perder cantidades ni ventas.
type jsonProduct struct {
	ID        string `json:"id"`
	Categoria string `json:"categoria"`
	Producto  string `json:"producto"`
	Talla     string `json:"talla"`
	Color     string `json:"color"`

	// Esquema actual
	Ubicacion      string           `json:"ubicacion,omitempty"`
	StockBodega    *int64           `json:"stock_bodega,omitempty"`
	StockPiso      *int64           `json:"stock_piso,omitempty"`
	Ventas         int64            `json:"ventas"`
	PrecioSugerido *decimal.Decimal `json:"precio_sugerido,omitempty"`
	PrecioVenta    *decimal.Decimal `json:"precio_venta,omitempty"`

	// Esquema legado (hoja original: Entrada / Ventas / Stock / Precio)
	Entrada *int64           `json:"entrada,omitempty"`
	Stock   *int64           `json:"stock,omitempty"`
	Precio  *decimal.Decimal `json:"precio,omitempty"`

	Creado      time.Time `json:"creado,omitempty"`
	Actualizado time.Time `json:"actualizado,omitempty"`
}

type jsonSaleEvent struct {
	ID        string          `json:"id"`
	Fecha     time.Time       `json:"fecha"`
	ProductID string          `json:"producto_id"`
	Producto  string          `json:"producto"`
	Talla     string          `json:"talla"`
	Categoria string          `json:"categoria"`
	Ubicacion string          `json:"ubicacion"`
	Precio    decimal.Decimal `json:"precio"`
}

type jsonSnapshot struct {
	Products         []jsonProduct   `json:"products"`
	SalesJournal     []jsonSaleEvent `json:"sales_journal"`
	Cash             decimal.Decimal `json:"cash"`
	LastUpdated      time.Time       `json:"last_updated"`
	CustomCategories []string        `json:"custom_categories"`
}

// Encode serializa el snapshot al esquema actual.
func Encode(snap *entity.Snapshot) ([]byte, error) {
	out := jsonSnapshot{
		Products:         make([]jsonProduct, 0, len(snap.Products)),
		SalesJournal:     make([]jsonSaleEvent, 0, len(snap.SalesJournal)),
		Cash:             snap.Cash,
		LastUpdated:      snap.LastUpdated,
		CustomCategories: append([]string{}, snap.CustomCategories...),
	}
	for _, p := range snap.Products {
		bodega, piso := p.QuantityWarehouse, p.QuantityFloor
		sugerido, venta := p.SuggestedPrice, p.SalePrice
		out.Products = append(out.Products, jsonProduct{
			ID:             p.ID,
			Categoria:      p.Category,
			Producto:       p.Name,
			Talla:          p.Size,
			Color:          p.Color,
			Ubicacion:      string(p.PrimaryLocation),
			StockBodega:    &bodega,
			StockPiso:      &piso,
			Ventas:         p.UnitsSold,
			PrecioSugerido: &sugerido,
			PrecioVenta:    &venta,
			Creado:         p.CreatedAt,
			Actualizado:    p.UpdatedAt,
		})
	}
	for _, ev := range snap.SalesJournal {
		out.SalesJournal = append(out.SalesJournal, jsonSaleEvent{
			ID:        ev.ID,
			Fecha:     ev.Timestamp,
			ProductID: ev.ProductID,
			Producto:  ev.ProductName,
			Talla:     ev.Size,
			Categoria: ev.Category,
			Ubicacion: string(ev.Location),
			Precio:    ev.Price,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}

// Decode deserializa un snapshot migrando en memoria los registros legados
// al esquema actual. Nunca pierde cantidades ni ventas.
func Decode(data []byte) (*entity.Snapshot, error) {
	var in jsonSnapshot
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decodificar snapshot: %w", err)
	}
	snap := entity.EmptySnapshot()
	snap.Cash = in.Cash
	snap.LastUpdated = in.LastUpdated
	snap.CustomCategories = append(snap.CustomCategories, in.CustomCategories...)

	for _, jp := range in.Products {
		snap.Products = append(snap.Products, migrateProduct(jp))
	}
	for _, je := range in.SalesJournal {
		snap.SalesJournal = append(snap.SalesJournal, entity.SaleEvent{
			ID:          je.ID,
			Timestamp:   je.Fecha,
			ProductID:   je.ProductID,
			ProductName: je.Producto,
			Size:        je.Talla,
			Category:    je.Categoria,
			Location:    entity.Location(je.Ubicacion),
			Price:       je.Precio,
		})
	}
	return snap, nil
}

// migrateProduct convierte un registro de alambre a entidad, aplicando el
// mapeo por defecto del esquema legado: todo el stock viejo va al piso,
// bodega queda en 0 y ambos precios toman el precio único de la hoja.
func migrateProduct(jp jsonProduct) *entity.Product {
	p := &entity.Product{
		ID:        jp.ID,
		Category:  jp.Categoria,
		Name:      jp.Producto,
		Size:      jp.Talla,
		Color:     jp.Color,
		UnitsSold: jp.Ventas,
		CreatedAt: jp.Creado,
		UpdatedAt: jp.Actualizado,
	}

	loc := entity.Location(jp.Ubicacion)
	if !loc.Valid() {
		loc = entity.LocationFloor // las hojas viejas solo tenían piso de venta
	}
	p.PrimaryLocation = loc

	if jp.StockBodega != nil || jp.StockPiso != nil {
		// Esquema actual
		if jp.StockBodega != nil {
			p.QuantityWarehouse = *jp.StockBodega
		}
		if jp.StockPiso != nil {
			p.QuantityFloor = *jp.StockPiso
		}
	} else {
		// Esquema legado: un solo stock; si ni siquiera eso, derivarlo de
		// entrada - ventas para no perder cantidad.
		var stock int64
		switch {
		case jp.Stock != nil:
			stock = *jp.Stock
		case jp.Entrada != nil:
			stock = *jp.Entrada - jp.Ventas
		}
		if stock < 0 {
			stock = 0
		}
		p.QuantityFloor = stock
		p.PrimaryLocation = entity.LocationFloor
	}
	p.TotalQuantity = p.QuantityWarehouse + p.QuantityFloor

	switch {
	case jp.PrecioSugerido != nil:
		p.SuggestedPrice = *jp.PrecioSugerido
	case jp.Precio != nil:
		p.SuggestedPrice = *jp.Precio
	default:
		p.SuggestedPrice = decimal.Zero
	}
	switch {
	case jp.PrecioVenta != nil:
		p.SalePrice = *jp.PrecioVenta
	default:
		p.SalePrice = p.SuggestedPrice
	}
	return p
}
