package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/inventario-tienda/internal/domain/entity"
	"github.com/tu-usuario/inventario-tienda/internal/infrastructure/codec"
)

// SnapshotRepository snapshot completo en una fila por tienda. El upsert
// hace la escritura atómica desde el punto de vista del caller; la columna
// cash se materializa aparte para consultas SQL rápidas, pero la fuente de
// verdad sigue siendo el blob.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository construye el repositorio.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// EnsureSchema crea la tabla si no existe (se invoca al arrancar).
func (r *SnapshotRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS store_snapshots (
			store_ref  TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			cash       NUMERIC NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("crear tabla store_snapshots: %w", err)
	}
	return nil
}

// Load lee y migra el snapshot de la tienda. Fila inexistente devuelve el
// snapshot vacío por defecto, no un error.
func (r *SnapshotRepository) Load(ctx context.Context, storeRef string) (*entity.Snapshot, error) {
	var data []byte
	err := r.pool.QueryRow(ctx,
		`SELECT data FROM store_snapshots WHERE store_ref = $1`, storeRef,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.EmptySnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer snapshot %q: %w", storeRef, err)
	}
	return codec.Decode(data)
}

// Save sobrescribe el estado previo completo (upsert por tienda).
func (r *SnapshotRepository) Save(ctx context.Context, storeRef string, snap *entity.Snapshot) error {
	data, err := codec.Encode(snap)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO store_snapshots (store_ref, data, cash, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (store_ref)
		DO UPDATE SET data = EXCLUDED.data, cash = EXCLUDED.cash, updated_at = now()`,
		storeRef, data, snap.Cash,
	)
	if err != nil {
		return fmt.Errorf("guardar snapshot %q: %w", storeRef, err)
	}
	return nil
}
