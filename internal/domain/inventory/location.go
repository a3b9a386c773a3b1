// Package inventory contiene las reglas puras del reparto de stock entre
// bodega y piso (servicios de dominio, sin estado).
package inventory

import "github.com/tu-usuario/inventario-tienda/internal/domain/entity"

// RecomputePrimary decide la ubicación principal tras un cambio de reparto:
// gana la ubicación con mayor cantidad; en empate se conserva la actual.
func RecomputePrimary(current entity.Location, warehouse, floor int64) entity.Location {
	switch {
	case warehouse > floor:
		return entity.LocationWarehouse
	case floor > warehouse:
		return entity.LocationFloor
	default:
		return current
	}
}

// Redistribute reparte una nueva cantidad total conservando la proporción
// actual bodega/piso: la parte de bodega se trunca (piso entero) y el resto
// va al piso. Si el total actual es 0 no hay proporción que conservar y todo
// va a la ubicación principal.
func Redistribute(warehouse, floor, newTotal int64, primary entity.Location) (newWarehouse, newFloor int64) {
	if newTotal <= 0 {
		return 0, 0
	}
	currentTotal := warehouse + floor
	if currentTotal == 0 {
		if primary == entity.LocationWarehouse {
			return newTotal, 0
		}
		return 0, newTotal
	}
	newWarehouse = newTotal * warehouse / currentTotal
	newFloor = newTotal - newWarehouse
	return newWarehouse, newFloor
}
