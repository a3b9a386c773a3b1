package codec_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventario-tienda/internal/domain/entity"
	"github.com/tu-usuario/inventario-tienda/internal/infrastructure/codec"
)

func snapshotDePrueba() *entity.Snapshot {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	snap := entity.EmptySnapshot()
	snap.LastUpdated = now
	snap.Cash = decimal.NewFromFloat(450.50)
	snap.CustomCategories = []string{"Sudaderas"}
	snap.Products = append(snap.Products, &entity.Product{
		ID:                "PROD_20260314_120000_ab12",
		Category:          "Camisas",
		Name:              "Camisa Oxford",
		Size:              "M",
		Color:             "Azul",
		PrimaryLocation:   entity.LocationWarehouse,
		QuantityWarehouse: 6,
		QuantityFloor:     4,
		TotalQuantity:     10,
		UnitsSold:         2,
		SuggestedPrice:    decimal.NewFromFloat(350),
		SalePrice:         decimal.NewFromFloat(299.90),
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	snap.SalesJournal = append(snap.SalesJournal, entity.SaleEvent{
		ID:          "ev-1",
		Timestamp:   now,
		ProductID:   "PROD_20260314_120000_ab12",
		ProductName: "Camisa Oxford",
		Size:        "M",
		Category:    "Camisas",
		Location:    entity.LocationFloor,
		Price:       decimal.NewFromFloat(299.90),
	})
	return snap
}

// ──────────────────────────────────────────────────────────────────────────────
// Round-trip: Encode(Decode(Encode(x))) debe ser idéntico (idempotencia).
// ──────────────────────────────────────────────────────────────────────────────

func TestRoundTrip_Idempotente(t *testing.T) {
	snap := snapshotDePrueba()

	data1, err := codec.Encode(snap)
	require.NoError(t, err)

	decoded, err := codec.Decode(data1)
	require.NoError(t, err)

	data2, err := codec.Encode(decoded)
	require.NoError(t, err)

	assert.Equal(t, string(data1), string(data2),
		"dos round-trips deben producir bytes idénticos")
}

func TestRoundTrip_ConservaCampos(t *testing.T) {
	snap := snapshotDePrueba()
	data, err := codec.Encode(snap)
	require.NoError(t, err)

	got, err := codec.Decode(data)
	require.NoError(t, err)

	require.Len(t, got.Products, 1)
	p := got.Products[0]
	assert.Equal(t, int64(6), p.QuantityWarehouse)
	assert.Equal(t, int64(4), p.QuantityFloor)
	assert.Equal(t, int64(10), p.TotalQuantity)
	assert.Equal(t, int64(2), p.UnitsSold)
	assert.Equal(t, entity.LocationWarehouse, p.PrimaryLocation)
	assert.True(t, p.SalePrice.Equal(decimal.NewFromFloat(299.90)))
	require.Len(t, got.SalesJournal, 1)
	assert.Equal(t, []string{"Sudaderas"}, got.CustomCategories)
}

// ──────────────────────────────────────────────────────────────────────────────
// Migración del esquema legado (hoja original: entrada/ventas/stock/precio).
// ──────────────────────────────────────────────────────────────────────────────

func TestDecode_MigraEsquemaLegado(t *testing.T) {
	legacy := []byte(`{
		"products": [
			{"id": "PROD_1", "categoria": "Playeras", "producto": "Playera Polo",
			 "talla": "G", "color": "Negro",
			 "entrada": 12, "ventas": 3, "stock": 9, "precio": "199.00"}
		]
	}`)

	snap, err := codec.Decode(legacy)
	require.NoError(t, err)
	require.Len(t, snap.Products, 1)

	p := snap.Products[0]
	assert.Equal(t, int64(9), p.QuantityFloor, "todo el stock legado va al piso")
	assert.Zero(t, p.QuantityWarehouse)
	assert.Equal(t, int64(9), p.TotalQuantity, "la cantidad total se conserva")
	assert.Equal(t, int64(3), p.UnitsSold, "las ventas se conservan")
	assert.Equal(t, entity.LocationFloor, p.PrimaryLocation)
	assert.True(t, p.SuggestedPrice.Equal(decimal.NewFromFloat(199)))
	assert.True(t, p.SalePrice.Equal(decimal.NewFromFloat(199)),
		"el precio de venta por defecto es el precio único legado")
}

func TestDecode_LegadoSinStockDerivaDeEntrada(t *testing.T) {
	legacy := []byte(`{
		"products": [
			{"id": "PROD_2", "categoria": "Shorts", "producto": "Short Cargo",
			 "talla": "32", "color": "Beige", "entrada": 5, "ventas": 2}
		]
	}`)

	snap, err := codec.Decode(legacy)
	require.NoError(t, err)
	p := snap.Products[0]
	assert.Equal(t, int64(3), p.QuantityFloor, "stock = entrada - ventas")
	assert.Equal(t, int64(3), p.TotalQuantity)
}

func TestDecode_SnapshotVacio(t *testing.T) {
	snap, err := codec.Decode([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, snap.Products)
	assert.Empty(t, snap.SalesJournal)
	assert.True(t, snap.Cash.IsZero())
}
