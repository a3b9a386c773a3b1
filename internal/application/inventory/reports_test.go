package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventario-tienda/internal/application/dto"
)

func TestSummary_CajaDerivadaDelJournal(t *testing.T) {
	s, _ := abrirTienda(t)
	ctx := context.Background()
	p1 := cargarProducto(t, s, "Camisa Oxford", "Camisas", 5, 350, "piso")
	p2 := cargarProducto(t, s, "Playera Polo", "Playeras", 4, 199, "piso")

	_, err := s.Sell(ctx, p1.ID, nil)
	require.NoError(t, err)
	rebaja := decimal.NewFromFloat(150)
	_, err = s.Sell(ctx, p2.ID, &rebaja)
	require.NoError(t, err)

	resumen := s.Summary()
	assert.True(t, resumen.Cash.Equal(decimal.NewFromInt(500)),
		"caja = 350 + 150, suma de precios realizados")
	assert.Equal(t, int64(2), resumen.TotalUnitsSold)
	assert.Equal(t, int64(7), resumen.TotalStock, "4 + 3 en existencia")
	assert.Equal(t, 2, resumen.DistinctProducts)
	assert.Contains(t, resumen.CashDisplay, "$", "la moneda solo se formatea para pantalla")
}

func TestSalesByCategory_Agrupa(t *testing.T) {
	s, _ := abrirTienda(t)
	ctx := context.Background()
	p1 := cargarProducto(t, s, "Camisa Oxford", "Camisas", 5, 350, "piso")
	p2 := cargarProducto(t, s, "Camisa Lino", "Camisas", 5, 450, "piso")
	cargarProducto(t, s, "Playera Polo", "Playeras", 4, 199, "piso")

	for _, id := range []string{p1.ID, p2.ID, p1.ID} {
		_, err := s.Sell(ctx, id, nil)
		require.NoError(t, err)
	}

	got := s.SalesByCategory()
	require.Len(t, got, 2)
	assert.Equal(t, dto.CategoryMetric{Category: "Camisas", Value: 3}, got[0])
	assert.Equal(t, dto.CategoryMetric{Category: "Playeras", Value: 0}, got[1])
}

func TestCashByCategory_ExcluyeProductosEliminados(t *testing.T) {
	s, _ := abrirTienda(t)
	ctx := context.Background()
	p1 := cargarProducto(t, s, "Camisa Oxford", "Camisas", 5, 350, "piso")
	p2 := cargarProducto(t, s, "Playera Polo", "Playeras", 4, 199, "piso")

	for _, id := range []string{p1.ID, p2.ID} {
		_, err := s.Sell(ctx, id, nil)
		require.NoError(t, err)
	}
	require.NoError(t, s.DeleteProduct(ctx, p2.ID))

	got := s.CashByCategory()
	require.Len(t, got, 1, "la caja de un producto eliminado no aparece")
	assert.Equal(t, "Camisas", got[0].Category)
	assert.True(t, got[0].Cash.Equal(decimal.NewFromInt(350)))
}

func TestStockByCategory_Agrupa(t *testing.T) {
	s, _ := abrirTienda(t)
	cargarProducto(t, s, "Short Cargo", "Shorts", 6, 299, "bodega")
	cargarProducto(t, s, "Short Playa", "Shorts", 2, 250, "piso")

	got := s.StockByCategory()
	require.Len(t, got, 1)
	assert.Equal(t, dto.CategoryMetric{Category: "Shorts", Value: 8}, got[0])
}

func TestListProducts_BuscadorPorNombre(t *testing.T) {
	s, _ := abrirTienda(t)
	cargarProducto(t, s, "Camisa Oxford Azul", "Camisas", 3, 350, "piso")
	cargarProducto(t, s, "Camisa Lino", "Camisas", 3, 450, "piso")
	cargarProducto(t, s, "Playera Polo", "Playeras", 3, 199, "piso")

	assert.Equal(t, 3, s.ListProducts("").Total, "query vacío devuelve todo")
	assert.Equal(t, 2, s.ListProducts("camisa").Total, "insensible a mayúsculas")
	assert.Equal(t, 1, s.ListProducts("OXFORD").Total)
	assert.Zero(t, s.ListProducts("corbata").Total)
}
