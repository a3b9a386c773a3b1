package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot estado completo serializable de la tienda: productos, journal de
// ventas, categorías personalizadas y la caja derivada. Es la unidad atómica
// que el puerto de persistencia carga y guarda.
type Snapshot struct {
	Products         []*Product
	SalesJournal     []SaleEvent
	CustomCategories []string
	Cash             decimal.Decimal
	LastUpdated      time.Time
}

// EmptySnapshot snapshot por defecto para una tienda sin estado previo.
// Cargar una tienda nueva y una tienda explícitamente vacía es lo mismo.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Products:         []*Product{},
		SalesJournal:     []SaleEvent{},
		CustomCategories: []string{},
		Cash:             decimal.Zero,
	}
}
