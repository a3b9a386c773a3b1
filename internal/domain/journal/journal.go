// Package journal implementa el registro de ventas append-only. La caja es
// siempre una suma derivada de estos eventos; nunca un contador paralelo.
package journal

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-tienda/internal/domain"
	"github.com/tu-usuario/inventario-tienda/internal/domain/entity"
)

// Journal lista de eventos de venta. Solo admite anexar y vaciar (reset).
type Journal struct {
	events []entity.SaleEvent
}

// New crea un journal a partir de eventos previos (vacío si events es nil).
func New(events []entity.SaleEvent) *Journal {
	j := &Journal{events: make([]entity.SaleEvent, 0, len(events))}
	j.events = append(j.events, events...)
	return j
}

// Append anexa un evento. Solo valida que el precio no sea negativo.
func (j *Journal) Append(ev entity.SaleEvent) error {
	if ev.Price.IsNegative() {
		return domain.ErrValidation
	}
	j.events = append(j.events, ev)
	return nil
}

// Sum suma el precio realizado de los eventos que cumplen el predicado.
// Con predicado nil suma todos (caja bruta).
func (j *Journal) Sum(pred func(entity.SaleEvent) bool) decimal.Decimal {
	total := decimal.Zero
	for _, ev := range j.events {
		if pred == nil || pred(ev) {
			total = total.Add(ev.Price)
		}
	}
	return total
}

// Len número de eventos registrados.
func (j *Journal) Len() int { return len(j.events) }

// Events devuelve una copia de los eventos, en orden de anexado.
func (j *Journal) Events() []entity.SaleEvent {
	out := make([]entity.SaleEvent, len(j.events))
	copy(out, j.events)
	return out
}

// Clear vacía el journal. Irreversible; lo usa el reset general de la tienda.
func (j *Journal) Clear() {
	j.events = j.events[:0]
}
