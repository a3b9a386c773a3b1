// Package jsonfile implementa el puerto de persistencia sobre un archivo
// JSON local (el modo sin conexión de la tienda).
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tu-usuario/inventario-tienda/internal/domain/entity"
	"github.com/tu-usuario/inventario-tienda/internal/infrastructure/codec"
)

// SnapshotRepository guarda el snapshot completo en un solo archivo. La
// escritura es a archivo temporal + rename para que el lector nunca vea un
// estado a medio escribir.
type SnapshotRepository struct{}

// NewSnapshotRepository construye el driver.
func NewSnapshotRepository() *SnapshotRepository { return &SnapshotRepository{} }

// Load lee y migra el snapshot. Archivo inexistente no es error: una tienda
// nueva y una tienda vacía son indistinguibles.
func (r *SnapshotRepository) Load(_ context.Context, storeRef string) (*entity.Snapshot, error) {
	data, err := os.ReadFile(storeRef)
	if errors.Is(err, fs.ErrNotExist) {
		return entity.EmptySnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", storeRef, err)
	}
	return codec.Decode(data)
}

// Save sobrescribe el estado previo completo de forma atómica.
func (r *SnapshotRepository) Save(_ context.Context, storeRef string, snap *entity.Snapshot) error {
	data, err := codec.Encode(snap)
	if err != nil {
		return err
	}
	dir := filepath.Dir(storeRef)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(storeRef)+".tmp-*")
	if err != nil {
		return fmt.Errorf("archivo temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), storeRef); err != nil {
		return fmt.Errorf("reemplazar %s: %w", storeRef, err)
	}
	return nil
}
