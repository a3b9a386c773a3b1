package repository

import (
	"context"

	"github.com/tu-usuario/inventario-tienda/internal/domain/entity"
)

// SnapshotRepository puerto de persistencia de la tienda: carga y guarda el
// estado completo (productos + journal + categorías) como una unidad atómica,
// identificado por una referencia de tienda (ruta de archivo o clave remota).
//
// Load debe devolver un snapshot vacío —no un error— cuando no existe estado
// previo, y debe migrar en memoria snapshots escritos con esquemas anteriores.
// Save sobrescribe todo el estado previo; los fallos se reportan siempre.
type SnapshotRepository interface {
	Load(ctx context.Context, storeRef string) (*entity.Snapshot, error)
	Save(ctx context.Context, storeRef string, snap *entity.Snapshot) error
}
