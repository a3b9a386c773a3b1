package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleEvent registra una venta individual. Es inmutable una vez anexado al
// journal; el dinero en caja siempre se deriva sumando estos eventos, nunca
// de un contador aparte.
type SaleEvent struct {
	ID          string
	Timestamp   time.Time
	ProductID   string
	ProductName string
	Size        string
	Category    string
	Location    Location        // ubicación desde la que se descontó
	Price       decimal.Decimal // precio realizado al momento de la venta
}
