package journal_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventario-tienda/internal/domain"
	"github.com/tu-usuario/inventario-tienda/internal/domain/entity"
	"github.com/tu-usuario/inventario-tienda/internal/domain/journal"
)

func evento(producto string, precio float64) entity.SaleEvent {
	return entity.SaleEvent{
		ProductID:   producto,
		ProductName: producto,
		Category:    "Camisas",
		Price:       decimal.NewFromFloat(precio),
	}
}

func TestAppend_RechazaPrecioNegativo(t *testing.T) {
	j := journal.New(nil)
	err := j.Append(entity.SaleEvent{Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, j.Len(), "un append rechazado no debe anexar nada")
}

func TestSum_SinPredicadoSumaTodo(t *testing.T) {
	j := journal.New(nil)
	require.NoError(t, j.Append(evento("p1", 150)))
	require.NoError(t, j.Append(evento("p2", 249.50)))
	require.NoError(t, j.Append(evento("p1", 150)))

	assert.True(t, j.Sum(nil).Equal(decimal.NewFromFloat(549.50)),
		"la caja bruta debe ser la suma de todos los eventos")
}

func TestSum_ConPredicadoFiltra(t *testing.T) {
	j := journal.New(nil)
	require.NoError(t, j.Append(evento("p1", 100)))
	require.NoError(t, j.Append(evento("p2", 200)))

	soloP1 := j.Sum(func(ev entity.SaleEvent) bool { return ev.ProductID == "p1" })
	assert.True(t, soloP1.Equal(decimal.NewFromInt(100)))
}

func TestClear_VaciaElJournal(t *testing.T) {
	j := journal.New([]entity.SaleEvent{evento("p1", 100)})
	require.Equal(t, 1, j.Len())

	j.Clear()

	assert.Zero(t, j.Len())
	assert.True(t, j.Sum(nil).IsZero(), "tras el reset la caja derivada es 0")
}

func TestEvents_DevuelveCopia(t *testing.T) {
	j := journal.New([]entity.SaleEvent{evento("p1", 100)})
	evs := j.Events()
	evs[0].Price = decimal.NewFromInt(999)

	assert.True(t, j.Sum(nil).Equal(decimal.NewFromInt(100)),
		"mutar la copia no debe afectar el journal")
}
