package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/inventario-tienda/internal/domain/entity"
	"github.com/tu-usuario/inventario-tienda/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// RecomputePrimary: gana la ubicación con más stock; en empate no cambia.
// ──────────────────────────────────────────────────────────────────────────────

func TestRecomputePrimary_GanaBodega(t *testing.T) {
	got := inventory.RecomputePrimary(entity.LocationFloor, 7, 3)
	assert.Equal(t, entity.LocationWarehouse, got,
		"con más stock en bodega la ubicación principal debe ser bodega")
}

func TestRecomputePrimary_GanaPiso(t *testing.T) {
	got := inventory.RecomputePrimary(entity.LocationWarehouse, 0, 5)
	assert.Equal(t, entity.LocationFloor, got)
}

func TestRecomputePrimary_EmpateConservaActual(t *testing.T) {
	assert.Equal(t, entity.LocationWarehouse,
		inventory.RecomputePrimary(entity.LocationWarehouse, 4, 4))
	assert.Equal(t, entity.LocationFloor,
		inventory.RecomputePrimary(entity.LocationFloor, 4, 4))
}

// ──────────────────────────────────────────────────────────────────────────────
// Redistribute: proporción actual con piso entero para bodega, resto al piso.
// ──────────────────────────────────────────────────────────────────────────────

func TestRedistribute_ProporcionExacta(t *testing.T) {
	// 6 bodega / 4 piso, nuevo total 5 → bodega 3 (floor de 5*6/10), piso 2
	w, f := inventory.Redistribute(6, 4, 5, entity.LocationFloor)
	assert.Equal(t, int64(3), w)
	assert.Equal(t, int64(2), f)
}

func TestRedistribute_RestoAlPiso(t *testing.T) {
	// 1 bodega / 2 piso, nuevo total 10 → bodega 3 (trunc 10/3), piso 7
	w, f := inventory.Redistribute(1, 2, 10, entity.LocationWarehouse)
	assert.Equal(t, int64(3), w)
	assert.Equal(t, int64(7), f)
	assert.Equal(t, int64(10), w+f, "el total debe conservarse siempre")
}

func TestRedistribute_TotalActualCeroTodoALaPrincipal(t *testing.T) {
	w, f := inventory.Redistribute(0, 0, 8, entity.LocationWarehouse)
	assert.Equal(t, int64(8), w)
	assert.Zero(t, f)

	w, f = inventory.Redistribute(0, 0, 8, entity.LocationFloor)
	assert.Zero(t, w)
	assert.Equal(t, int64(8), f)
}

func TestRedistribute_NuevoTotalCero(t *testing.T) {
	w, f := inventory.Redistribute(6, 4, 0, entity.LocationFloor)
	assert.Zero(t, w)
	assert.Zero(t, f)
}
